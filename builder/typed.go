package builder

import (
	"context"

	"github.com/adamluzsi/fixreg"
)

// Create is the typed variant of Builder.Create.
// The entity type is derived from T, so Create[*User] resolves the factory of User.
func Create[T any](ctx context.Context, b *Builder, overrides fixreg.Overrides) (T, error) {
	ent, err := b.Create(ctx, typeOf[T](), overrides)
	if err != nil {
		return *new(T), err
	}
	return as[T](ent)
}

func CreateMany[T any](ctx context.Context, b *Builder, count int, overrides fixreg.Overrides) ([]T, error) {
	ents, err := b.CreateMany(ctx, typeOf[T](), count, overrides)
	if err != nil {
		return nil, err
	}
	return asSlice[T](ents)
}

func Make[T any](ctx context.Context, b *Builder, overrides fixreg.Overrides) (T, error) {
	ent, err := b.Make(ctx, typeOf[T](), overrides)
	if err != nil {
		return *new(T), err
	}
	return as[T](ent)
}

func MakeMany[T any](ctx context.Context, b *Builder, count int, overrides fixreg.Overrides) ([]T, error) {
	ents, err := b.MakeMany(ctx, typeOf[T](), count, overrides)
	if err != nil {
		return nil, err
	}
	return asSlice[T](ents)
}

func typeOf[T any]() fixreg.EntityType {
	return fixreg.TypeOf((*T)(nil))
}

func as[T any](ent fixreg.Entity) (T, error) {
	v, ok := ent.(T)
	if !ok {
		return *new(T), fixreg.ErrUnexpectedType.F("expected %T, got %T", *new(T), ent)
	}
	return v, nil
}

func asSlice[T any](ents []fixreg.Entity) ([]T, error) {
	out := make([]T, 0, len(ents))
	for _, ent := range ents {
		v, err := as[T](ent)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
