// Package catalog holds the mapping from entity type to the factory that produces it.
package catalog

import (
	"fmt"
	"sort"

	"github.com/adamluzsi/fixreg"
)

// New builds a Catalog from the given factories.
// Every factory is asked for its declared target type, in the given order.
// Two factories declaring the same target type is a configuration error,
// and New fails with fixreg.ErrDuplicateBinding.
func New(factories ...fixreg.Factory) (*Catalog, error) {
	c := &Catalog{
		bindings: make(map[fixreg.EntityType]fixreg.Factory, len(factories)),
	}
	for i, f := range factories {
		t, err := targetTypeOf(f)
		if err != nil {
			return nil, fmt.Errorf("factory #%d: %w", i, err)
		}
		if prev, ok := c.bindings[t]; ok {
			return nil, fixreg.ErrDuplicateBinding.F("%s is declared by both %T and %T", t, prev, f)
		}
		c.bindings[t] = f
		c.order = append(c.order, f)
	}
	return c, nil
}

// Catalog is immutable after construction.
type Catalog struct {
	bindings map[fixreg.EntityType]fixreg.Factory
	order    []fixreg.Factory
}

func (c *Catalog) Resolve(t fixreg.EntityType) (fixreg.Factory, error) {
	f, ok := c.bindings[t]
	if !ok {
		return nil, fixreg.ErrUnknownEntityType.F("no factory is registered for %s", t)
	}
	return f, nil
}

// Types returns the bound entity types in lexical order.
func (c *Catalog) Types() []fixreg.EntityType {
	types := make([]fixreg.EntityType, 0, len(c.bindings))
	for t := range c.bindings {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func (c *Catalog) Len() int { return len(c.bindings) }

// BindContainer hands the container to every factory that is fixreg.ContainerAware.
func (c *Catalog) BindContainer(container fixreg.Container) {
	for _, f := range c.order {
		if ca, ok := f.(fixreg.ContainerAware); ok {
			ca.SetContainer(container)
		}
	}
}

func targetTypeOf(f fixreg.Factory) (t fixreg.EntityType, err error) {
	if f == nil {
		return "", fixreg.ErrIntrospection.F("nil factory")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fixreg.ErrIntrospection.F("%T.TargetType panicked: %v", f, r)
		}
	}()
	t = f.TargetType()
	if t == "" {
		return "", fixreg.ErrIntrospection.F("%T declared an empty target type", f)
	}
	return t, nil
}
