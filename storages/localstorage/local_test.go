package localstorage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fixreg/contracts"
	"github.com/adamluzsi/fixreg/storages/localstorage"
)

func NewLocal(tb testing.TB) *localstorage.Local {
	dbPath := filepath.Join(os.TempDir(), uuid.NewV4().String())
	storage, err := localstorage.NewLocal(dbPath)
	if err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() {
		assert.Nil(tb, storage.Close())
		assert.Nil(tb, os.Remove(dbPath))
	})
	return storage
}

func TestLocal(t *testing.T) {
	contracts.Storage{
		Subject: func(tb testing.TB) contracts.StorageSubject {
			return NewLocal(tb)
		},
	}.Test(t)
}

func TestLocal_Config(t *testing.T) {
	storage := NewLocal(t)

	driver, ok := storage.Config("driver")
	require.True(t, ok)
	require.Equal(t, "bolt", driver)

	path, ok := storage.Config("path")
	require.True(t, ok)
	require.Equal(t, storage.DB.Path(), path)
}

func TestLocal_survivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(os.TempDir(), uuid.NewV4().String())
	defer os.Remove(dbPath)

	storage, err := localstorage.NewLocal(dbPath)
	require.NoError(t, err)
	ent := &contracts.Entity{Name: "Jane", Age: 42}
	require.NoError(t, storage.Save(ctx, contracts.EntityType, ent))
	require.NoError(t, storage.Close())

	storage, err = localstorage.NewLocal(dbPath)
	require.NoError(t, err)
	defer storage.Close()

	var got contracts.Entity
	found, err := storage.FindByID(ctx, contracts.EntityType, ent.ID, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, *ent, got)
}
