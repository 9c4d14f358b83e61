// Package memorystorage is an in-process fixreg.Storage and fixreg.PersistenceLayer.
package memorystorage

import (
	"context"
	"fmt"
	"reflect"

	uuid "github.com/satori/go.uuid"

	"github.com/adamluzsi/fixreg"
	"github.com/adamluzsi/fixreg/internal/reflects"
)

func NewMemory() *Memory {
	return &Memory{db: make(map[fixreg.EntityType]memoryTable)}
}

type Memory struct {
	// Cleanup is the storage side flag that allows schema reset at the end of a suite.
	Cleanup bool

	db map[fixreg.EntityType]memoryTable
}

type memoryTable map[string]interface{}

func (storage *Memory) Close() error {
	return nil
}

func (storage *Memory) Save(ctx context.Context, t fixreg.EntityType, ptr fixreg.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, ok := reflects.LookupID(ptr)

	if !ok {
		return fixreg.ErrIDRequired
	}

	if id == "" {
		id = uuid.NewV4().String()

		if err := reflects.SetID(ptr, id); err != nil {
			return err
		}
	}

	storage.tableFor(t)[id] = reflects.BaseValueOf(ptr).Interface()
	return nil
}

func (storage *Memory) FindByID(ctx context.Context, t fixreg.EntityType, id string, ptr fixreg.Entity) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	entity, found := storage.tableFor(t)[id]

	if !found {
		return false, nil
	}

	if err := reflects.Link(entity, ptr); err != nil {
		return false, fmt.Errorf("%s can't be loaded into %s: %w", t, reflect.TypeOf(ptr), err)
	}

	return true, nil
}

func (storage *Memory) Config(key string) (interface{}, bool) {
	switch key {
	case fixreg.CleanupConfigKey:
		return storage.Cleanup, true
	case "driver":
		return "memory", true
	default:
		return nil, false
	}
}

// ResetSchema drops every table of the storage.
func (storage *Memory) ResetSchema(ctx context.Context, _ fixreg.Container) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	storage.db = make(map[fixreg.EntityType]memoryTable)
	return nil
}

func (storage *Memory) tableFor(t fixreg.EntityType) memoryTable {
	if storage.db == nil {
		storage.db = make(map[fixreg.EntityType]memoryTable)
	}

	if _, ok := storage.db[t]; !ok {
		storage.db[t] = make(memoryTable)
	}

	return storage.db[t]
}
