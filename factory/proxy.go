package factory

import "github.com/adamluzsi/fixreg"

// Proxy is the fixreg.Handle that factory.Of returns for every instantiated entity.
type Proxy[T any] struct {
	object    *T
	persisted bool
}

// Unwrap returns the entity as a *T.
func (p *Proxy[T]) Unwrap() fixreg.Entity { return p.object }

func (p *Proxy[T]) Object() *T { return p.object }

// IsPersisted reports whether the entity was saved into the factory's Storage.
func (p *Proxy[T]) IsPersisted() bool { return p.persisted }
