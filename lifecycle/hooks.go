// Package lifecycle brackets a test suite with setup and teardown hooks.
//
// OnSuiteStart binds the suite's dependency container to the factories,
// and OnSuiteEnd resets the schema of the persistence layer,
// but only when both the suite settings and the persistence layer itself allow cleanup.
package lifecycle

import (
	"context"
	"strconv"

	"github.com/adamluzsi/fixreg"
	"github.com/adamluzsi/fixreg/pkg/logger"
)

type Settings struct {
	// Cleanup is the suite side flag that allows schema reset at the end of a suite.
	Cleanup bool
}

// Binder passes the suite container to the registered factories.
// *catalog.Catalog implements it.
type Binder interface {
	BindContainer(c fixreg.Container)
}

type Hooks struct {
	Settings Settings
	// Persistence [optional] is the collaborator that owns the schema.
	// Without it, OnSuiteEnd is a no-op.
	Persistence fixreg.PersistenceLayer
	// Binder [optional]
	Binder Binder
	// Logger [optional]
	//
	// default: logger.Default
	Logger *logger.Logger

	container fixreg.Container
}

func (h *Hooks) OnSuiteStart(ctx context.Context, c fixreg.Container) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.container = c
	if h.Binder != nil {
		h.Binder.BindContainer(c)
	}
	h.logger().Debug(ctx, "fixture registry suite started",
		logger.Field("container", c != nil))
	return nil
}

func (h *Hooks) OnSuiteEnd(ctx context.Context) error {
	return h.cleanup(ctx)
}

// OnReconfigure applies the new settings mid-run.
// It runs the cleanup with the new settings, then binds the current container again.
func (h *Hooks) OnReconfigure(ctx context.Context, s Settings) error {
	h.Settings = s
	h.logger().Debug(ctx, "fixture registry reconfigured",
		logger.Field("cleanup", s.Cleanup))
	if err := h.cleanup(ctx); err != nil {
		return err
	}
	return h.OnSuiteStart(ctx, h.container)
}

func (h *Hooks) Container() fixreg.Container {
	return h.container
}

func (h *Hooks) cleanup(ctx context.Context) error {
	if !h.isCleanupEnabled() {
		h.logger().Debug(ctx, "schema reset skipped",
			logger.Field("suite_cleanup", h.Settings.Cleanup))
		return nil
	}
	h.logger().Debug(ctx, "resetting schema")
	if err := h.Persistence.ResetSchema(ctx, h.container); err != nil {
		h.logger().Error(ctx, "schema reset failed", logger.ErrField(err))
		return err
	}
	return nil
}

func (h *Hooks) isCleanupEnabled() bool {
	if !h.Settings.Cleanup || h.Persistence == nil {
		return false
	}
	v, ok := h.Persistence.Config(fixreg.CleanupConfigKey)
	if !ok {
		return false
	}
	switch v := v.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	default:
		return false
	}
}

func (h *Hooks) logger() *logger.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logger.Default
}
