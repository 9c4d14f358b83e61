package fixreg

import (
	"errors"
	"fmt"
)

// Error is a string based type that allows you to declare ErrConstantValues for your packages.
//
//	const ErrSomething fixreg.Error = "something is an error"
type Error string

// Error implement the error interface, so the Error string type can be used as an error object
func (err Error) Error() string { return string(err) }

// Wrap bundles another error value with this Error.
// The returned error matches both of them with errors.Is.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Owner: err, Wrapped: oth}
}

// F formats a detail message and wraps it with this Error.
func (err Error) F(format string, a ...interface{}) error { return err.Wrap(fmt.Errorf(format, a...)) }

type wrapper struct {
	Owner   Error
	Wrapped error
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Wrapped.Error())
}

func (w wrapper) Unwrap() error { return w.Wrapped }

func (w wrapper) As(target interface{}) bool {
	return errors.As(w.Owner, target) || errors.As(w.Wrapped, target)
}

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Wrapped, target)
}

const (
	// ErrUnknownEntityType is returned when no factory is registered for the requested type.
	ErrUnknownEntityType Error = "ErrUnknownEntityType"
	// ErrDuplicateBinding is returned when two factories declare the same target type.
	ErrDuplicateBinding Error = "ErrDuplicateBinding"
	// ErrIntrospection is returned when a factory's declared target type can't be queried.
	ErrIntrospection Error = "ErrIntrospection"
	// ErrResolution wraps any failure that happened during factory resolution.
	ErrResolution Error = "ErrResolution"
	// ErrFactoryInvocation wraps any failure raised while building or persisting an entity.
	ErrFactoryInvocation Error = "ErrFactoryInvocation"
	// ErrInvalidCount is returned for a negative batch size.
	ErrInvalidCount Error = "ErrInvalidCount"
	// ErrUnexpectedType is returned when a materialized entity is not of the requested Go type.
	ErrUnexpectedType Error = "ErrUnexpectedType"
	// ErrMissingFactories is returned when a registry is configured without factories.
	ErrMissingFactories Error = "ErrMissingFactories"
	// ErrServiceNotFound is returned by a Container when the service id is unknown.
	ErrServiceNotFound Error = "ErrServiceNotFound"
	// ErrNoStorage is returned when a persisted entity is requested from a factory without Storage.
	ErrNoStorage Error = "ErrNoStorage"
	// ErrUnknownAttribute is returned when an override doesn't match any field of the entity.
	ErrUnknownAttribute Error = "ErrUnknownAttribute"
	// ErrAttributeType is returned when an override value can't be assigned to its field.
	ErrAttributeType Error = "ErrAttributeType"
)

const ErrIDRequired Error = `
Can't find the ID in the current structure
if there is no ID in the subject structure
the entity must have a string field named ID or tagged with ext:"ID"
`
