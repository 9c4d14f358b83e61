// Package factory implements fixreg.Factory for plain Go structs.
//
// An entity built by factory.Of goes through the following steps:
// every exported field except the identity gets a random value,
// then the Defaults, the factory level overrides and the call level overrides are applied in that order,
// then Validate runs, and finally the entity is saved into the Storage unless the factory is transient.
package factory

import (
	"context"
	"reflect"

	"github.com/adamluzsi/fixreg"
)

type Of[T any] struct {
	// Type [optional] is the entity type the factory is bound to.
	//
	// default: fixreg.TypeOf(T)
	//
	// Set it when another entity with the same type name lives in a different package,
	// since the default doesn't include the package.
	// The typed builder helpers derive the default, so such entities are resolved by name.
	Type fixreg.EntityType
	// Storage [optional] is where Create persists the entities.
	// Without Storage, only the transient variant of the factory can be used.
	Storage fixreg.Storage
	// Defaults [optional] returns the default attributes of the entity.
	// The suite's container is passed along when the factory is bound to one.
	Defaults func(ctx context.Context, c fixreg.Container) (fixreg.Overrides, error)
	// Validate [optional] is called with the entity before it is persisted.
	Validate func(ptr *T) error

	overrides fixreg.Overrides
	transient bool
	container fixreg.Container
}

func (f *Of[T]) TargetType() fixreg.EntityType {
	if f.Type != "" {
		return f.Type
	}
	return fixreg.TypeOf((*T)(nil))
}

func (f *Of[T]) New(overrides fixreg.Overrides) fixreg.Factory {
	cp := *f
	cp.overrides = f.overrides.Merge(overrides)
	return &cp
}

func (f *Of[T]) WithoutPersisting() fixreg.Factory {
	cp := *f
	cp.transient = true
	return &cp
}

func (f *Of[T]) SetContainer(c fixreg.Container) { f.container = c }

func (f *Of[T]) Container() fixreg.Container { return f.container }

func (f *Of[T]) Create(ctx context.Context, overrides fixreg.Overrides) (fixreg.Handle, error) {
	return f.create(ctx, overrides)
}

func (f *Of[T]) CreateMany(ctx context.Context, count int, overrides fixreg.Overrides) ([]fixreg.Handle, error) {
	if count < 0 {
		return nil, fixreg.ErrInvalidCount.F("count must be a non-negative integer, got %d", count)
	}
	hs := make([]fixreg.Handle, 0, count)
	for i := 0; i < count; i++ {
		p, err := f.create(ctx, overrides)
		if err != nil {
			return nil, err
		}
		hs = append(hs, p)
	}
	return hs, nil
}

func (f *Of[T]) create(ctx context.Context, overrides fixreg.Overrides) (*Proxy[T], error) {
	if !f.transient && f.Storage == nil {
		return nil, fixreg.ErrNoStorage.F("%s factory can only make transient entities", f.TargetType())
	}
	ptr, err := f.build(ctx, overrides)
	if err != nil {
		return nil, err
	}
	if f.Validate != nil {
		if err := f.Validate(ptr); err != nil {
			return nil, err
		}
	}
	if f.transient {
		return &Proxy[T]{object: ptr}, nil
	}
	if err := f.Storage.Save(ctx, f.TargetType(), ptr); err != nil {
		return nil, err
	}
	return &Proxy[T]{object: ptr, persisted: true}, nil
}

func (f *Of[T]) build(ctx context.Context, overrides fixreg.Overrides) (*T, error) {
	ptr := new(T)
	rv := reflect.ValueOf(ptr)
	if rv.Elem().Kind() != reflect.Struct {
		return nil, fixreg.ErrAttributeType.F("%T is not a struct type", *ptr)
	}
	randomize(rv)
	if f.Defaults != nil {
		defaults, err := f.Defaults(ctx, f.container)
		if err != nil {
			return nil, err
		}
		if err := applyOverrides(rv, defaults); err != nil {
			return nil, err
		}
	}
	if err := applyOverrides(rv, f.overrides.Merge(overrides)); err != nil {
		return nil, err
	}
	return ptr, nil
}
