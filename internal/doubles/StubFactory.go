package doubles

import (
	"context"

	"github.com/adamluzsi/fixreg"
)

// StubFactory is a fixreg.Factory test double.
// Without stubs, it returns the received overrides as the entity.
type StubFactory struct {
	Type           fixreg.EntityType
	StubTargetType func() fixreg.EntityType
	StubCreate     func(ctx context.Context, overrides fixreg.Overrides) (fixreg.Handle, error)

	Container fixreg.Container
}

func (s *StubFactory) TargetType() fixreg.EntityType {
	if s.StubTargetType != nil {
		return s.StubTargetType()
	}
	return s.Type
}

func (s *StubFactory) New(fixreg.Overrides) fixreg.Factory { return s }

func (s *StubFactory) WithoutPersisting() fixreg.Factory { return s }

func (s *StubFactory) Create(ctx context.Context, overrides fixreg.Overrides) (fixreg.Handle, error) {
	if s.StubCreate != nil {
		return s.StubCreate(ctx, overrides)
	}
	return StubHandle{Value: overrides}, nil
}

func (s *StubFactory) CreateMany(ctx context.Context, count int, overrides fixreg.Overrides) ([]fixreg.Handle, error) {
	var hs []fixreg.Handle
	for i := 0; i < count; i++ {
		h, err := s.Create(ctx, overrides)
		if err != nil {
			return nil, err
		}
		hs = append(hs, h)
	}
	return hs, nil
}

func (s *StubFactory) SetContainer(c fixreg.Container) { s.Container = c }

type StubHandle struct{ Value fixreg.Entity }

func (h StubHandle) Unwrap() fixreg.Entity { return h.Value }
