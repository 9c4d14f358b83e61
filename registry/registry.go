// Package registry composes the catalog, the builder and the lifecycle hooks
// into a single object that a test suite constructs once and hands to its tests.
package registry

import (
	"context"
	"testing"

	"github.com/adamluzsi/fixreg"
	"github.com/adamluzsi/fixreg/builder"
	"github.com/adamluzsi/fixreg/catalog"
	"github.com/adamluzsi/fixreg/config"
	"github.com/adamluzsi/fixreg/lifecycle"
	"github.com/adamluzsi/fixreg/pkg/logger"
)

type Config struct {
	// Cleanup allows the schema reset at the end of the suite,
	// as long as the Persistence layer allows it too.
	Cleanup bool
	// Factories are bound to their target types. At least one is required.
	Factories []fixreg.Factory
	// Persistence [optional] is the collaborator that resets the schema.
	Persistence fixreg.PersistenceLayer
	// Logger [optional]
	//
	// default: logger.Default
	Logger *logger.Logger
}

type Registry struct {
	*builder.Builder
	*lifecycle.Hooks
	Catalog *catalog.Catalog
}

func New(cfg Config) (*Registry, error) {
	if len(cfg.Factories) == 0 {
		return nil, fixreg.ErrMissingFactories
	}
	c, err := catalog.New(cfg.Factories...)
	if err != nil {
		return nil, err
	}
	return &Registry{
		Builder: builder.New(c),
		Hooks: &lifecycle.Hooks{
			Settings:    lifecycle.Settings{Cleanup: cfg.Cleanup},
			Persistence: cfg.Persistence,
			Binder:      c,
			Logger:      cfg.Logger,
		},
		Catalog: c,
	}, nil
}

// FromSettings builds a registry Config from a settings file.
// Only the known factories whose target type is listed in the settings are used.
func FromSettings(s config.Config, p fixreg.PersistenceLayer, known ...fixreg.Factory) (Config, error) {
	if err := s.Validate(); err != nil {
		return Config{}, err
	}
	kc, err := catalog.New(known...)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Cleanup: s.Cleanup, Persistence: p}
	for _, name := range s.Factories {
		f, err := kc.Resolve(fixreg.EntityType(name))
		if err != nil {
			return Config{}, err
		}
		cfg.Factories = append(cfg.Factories, f)
	}
	return cfg, nil
}

// Setup constructs the registry for the test and starts the suite with the given container.
// The suite end hook is registered with tb.Cleanup.
func Setup(tb testing.TB, cfg Config, c fixreg.Container) *Registry {
	tb.Helper()
	r, err := New(cfg)
	if err != nil {
		tb.Fatal(err)
	}
	ctx := logger.ContextWith(context.Background(), logger.Field("test", tb.Name()))
	if err := r.OnSuiteStart(ctx, c); err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() {
		if err := r.OnSuiteEnd(ctx); err != nil {
			tb.Error(err)
		}
	})
	return r
}
