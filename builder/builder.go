// Package builder materializes entities through the factories of a catalog.
//
// Every operation resolves the factory for the requested entity type,
// invokes it in the requested mode (persisted or transient, single or batch),
// and returns the plain entities behind the handles that the factory produced.
// There is no partial result: if any element of a batch fails, the whole call fails.
package builder

import (
	"context"
	"fmt"

	"github.com/adamluzsi/fixreg"
	"github.com/adamluzsi/fixreg/internal/sandbox"
)

// Resolver looks up the factory of an entity type.
// *catalog.Catalog implements it.
type Resolver interface {
	Resolve(t fixreg.EntityType) (fixreg.Factory, error)
}

func New(r Resolver) *Builder {
	return &Builder{Resolver: r}
}

type Builder struct {
	Resolver Resolver
}

// Create instantiates a single persisted entity with the given overrides.
func (b *Builder) Create(ctx context.Context, t fixreg.EntityType, overrides fixreg.Overrides) (fixreg.Entity, error) {
	f, err := b.resolve(t)
	if err != nil {
		return nil, err
	}
	return createOne(ctx, f, overrides, false)
}

// CreateMany instantiates count persisted entities, each with the same overrides.
func (b *Builder) CreateMany(ctx context.Context, t fixreg.EntityType, count int, overrides fixreg.Overrides) ([]fixreg.Entity, error) {
	f, err := b.resolve(t)
	if err != nil {
		return nil, err
	}
	return createMany(ctx, f, count, overrides, false)
}

// Make is the transient variant of Create, the entity is not written to the backing store.
func (b *Builder) Make(ctx context.Context, t fixreg.EntityType, overrides fixreg.Overrides) (fixreg.Entity, error) {
	f, err := b.resolve(t)
	if err != nil {
		return nil, err
	}
	return createOne(ctx, f, overrides, true)
}

// MakeMany is the transient variant of CreateMany.
func (b *Builder) MakeMany(ctx context.Context, t fixreg.EntityType, count int, overrides fixreg.Overrides) ([]fixreg.Entity, error) {
	f, err := b.resolve(t)
	if err != nil {
		return nil, err
	}
	return createMany(ctx, f, count, overrides, true)
}

func (b *Builder) resolve(t fixreg.EntityType) (fixreg.Factory, error) {
	f, err := b.Resolver.Resolve(t)
	if err != nil {
		return nil, fixreg.ErrResolution.Wrap(err)
	}
	return f, nil
}

func createOne(ctx context.Context, f fixreg.Factory, overrides fixreg.Overrides, transient bool) (fixreg.Entity, error) {
	var h fixreg.Handle
	if err := invoke(f, func() (err error) {
		if transient {
			f = f.WithoutPersisting()
		}
		h, err = f.Create(ctx, overrides)
		return err
	}); err != nil {
		return nil, err
	}
	return unwrap(f, h)
}

func createMany(ctx context.Context, f fixreg.Factory, count int, overrides fixreg.Overrides, transient bool) ([]fixreg.Entity, error) {
	if count < 0 {
		return nil, fixreg.ErrInvalidCount.F("count must be a non-negative integer, got %d", count)
	}
	if count == 0 {
		return []fixreg.Entity{}, nil
	}
	var hs []fixreg.Handle
	if err := invoke(f, func() (err error) {
		if transient {
			f = f.WithoutPersisting()
		}
		hs, err = f.CreateMany(ctx, count, overrides)
		return err
	}); err != nil {
		return nil, err
	}
	if len(hs) != count {
		return nil, fixreg.ErrFactoryInvocation.F("%T returned %d entities instead of %d", f, len(hs), count)
	}
	out := make([]fixreg.Entity, 0, count)
	for _, h := range hs {
		ent, err := unwrap(f, h)
		if err != nil {
			return nil, err
		}
		out = append(out, ent)
	}
	return out, nil
}

func unwrap(f fixreg.Factory, h fixreg.Handle) (fixreg.Entity, error) {
	if h == nil {
		return nil, fixreg.ErrFactoryInvocation.F("%T returned a nil handle", f)
	}
	ent := h.Unwrap()
	if ent == nil {
		return nil, fixreg.ErrFactoryInvocation.F("%T returned a handle without an entity", f)
	}
	return ent, nil
}

// invoke calls the factory on a sandboxed goroutine,
// so a panic or a runtime.Goexit inside the factory fails only the current call.
func invoke(f fixreg.Factory, fn func() error) error {
	out := sandbox.Run(fn)
	switch {
	case out.Goexit:
		return fixreg.ErrFactoryInvocation.F("%T exited its goroutine", f)
	case out.Panic:
		return fixreg.ErrFactoryInvocation.Wrap(fmt.Errorf("%T panicked: %v", f, out.PanicValue))
	case out.Err != nil:
		return fixreg.ErrFactoryInvocation.Wrap(out.Err)
	default:
		return nil
	}
}
