package fixreg

// ServiceMap is a map backed Container.
// It is handy for suites that don't have an application container at hand.
type ServiceMap map[string]interface{}

func (m ServiceMap) Get(serviceID string) (interface{}, error) {
	srv, ok := m[serviceID]
	if !ok {
		return nil, ErrServiceNotFound.F("%s", serviceID)
	}
	return srv, nil
}
