// Package fixreg is a fixture factory registry for Go test suites.
//
// A suite declares one Factory per entity type, the catalog package resolves them by EntityType,
// the builder package materializes instances (single or batch, persisted or transient),
// and the lifecycle package brackets the suite with setup and teardown hooks
// that can reset the schema of the backing store.
//
// The registry package composes all of them into a single object
// that is constructed once per suite and handed to the test code.
package fixreg

import (
	"context"

	"github.com/adamluzsi/fixreg/internal/reflects"
)

//go:generate mockgen -destination internal/mocks/mocks.go -package mocks github.com/adamluzsi/fixreg Factory,Handle,PersistenceLayer,Container

// Entity is a plain business object that a Factory materializes.
// By convention factories return a pointer to the entity struct.
type Entity = interface{}

// EntityType identifies the type of Entity that a Factory is bound to.
type EntityType string

func (t EntityType) String() string { return string(t) }

// TypeOf returns the EntityType for a given entity value.
// Pointers are dereferenced, so TypeOf(User{}) and TypeOf(&User{}) are equal.
//
// The EntityType is the bare type name without its package,
// so two User types from different packages share the same EntityType.
// Registering factories for both fails with ErrDuplicateBinding,
// unless at least one of them declares an explicit, package qualified type.
func TypeOf(e Entity) EntityType {
	return EntityType(reflects.Name(e))
}

// Overrides is an unordered mapping from field name to value.
// Overrides are applied on top of a factory's defaults,
// and their shape is the factory's responsibility to validate.
type Overrides map[string]interface{}

// Merge returns a new Overrides where the values of oth take precedence.
func (o Overrides) Merge(oth Overrides) Overrides {
	out := make(Overrides, len(o)+len(oth))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range oth {
		out[k] = v
	}
	return out
}

// Factory knows how to construct, and optionally persist, instances of a single entity type.
type Factory interface {
	// TargetType declares the entity type this Factory produces.
	TargetType() EntityType
	// New returns a variant of the Factory that applies the given overrides on every instantiation.
	New(overrides Overrides) Factory
	// Create instantiates a single entity with the overrides and persists it,
	// unless the Factory is a transient variant.
	Create(ctx context.Context, overrides Overrides) (Handle, error)
	// CreateMany is the batch variant of Create, applying the same overrides to every instance.
	CreateMany(ctx context.Context, count int, overrides Overrides) ([]Handle, error)
	// WithoutPersisting returns the transient-mode variant of the Factory.
	WithoutPersisting() Factory
}

// Handle wraps a constructed instance.
type Handle interface {
	// Unwrap returns the plain entity behind the Handle.
	Unwrap() Entity
}

// Storage is the backing store that factories write persisted entities into.
type Storage interface {
	// Save persists the entity under the given type.
	// When the entity's ID field is empty, Save assigns a new ID to it.
	Save(ctx context.Context, t EntityType, ptr Entity) error
	// FindByID looks up an entity by its identity and decodes it into ptr.
	FindByID(ctx context.Context, t EntityType, id string, ptr Entity) (found bool, err error)
}

// PersistenceLayer is the collaborator that owns the schema of the backing store.
type PersistenceLayer interface {
	// Config returns the persistence layer's own configuration value for a given key.
	Config(key string) (interface{}, bool)
	// ResetSchema drops and recreates the schema of the backing store.
	ResetSchema(ctx context.Context, c Container) error
}

// CleanupConfigKey is the PersistenceLayer configuration key of its cleanup flag.
const CleanupConfigKey = "cleanup"

// Container is a dependency container from which services can be looked up.
type Container interface {
	Get(serviceID string) (interface{}, error)
}

// ContainerAware is implemented by factories that need access to the suite's Container.
type ContainerAware interface {
	SetContainer(c Container)
}
