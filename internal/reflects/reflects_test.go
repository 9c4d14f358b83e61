package reflects_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fixreg/internal/reflects"
)

type ByName struct {
	ID   string
	Name string
}

type ByTag struct {
	Key  string `ext:"ID"`
	Name string
}

type WithoutID struct {
	Name string
}

func TestName(t *testing.T) {
	require.Equal(t, "ByName", reflects.Name(ByName{}))
	require.Equal(t, "ByName", reflects.Name(&ByName{}))
	require.Equal(t, "ByName", reflects.Name((*ByName)(nil)))
}

func TestLookupID(t *testing.T) {
	id, ok := reflects.LookupID(ByName{ID: "42"})
	require.True(t, ok)
	require.Equal(t, "42", id)

	id, ok = reflects.LookupID(&ByTag{Key: "24"})
	require.True(t, ok)
	require.Equal(t, "24", id)

	_, ok = reflects.LookupID(WithoutID{})
	require.False(t, ok)

	_, ok = reflects.LookupID((*ByName)(nil))
	require.False(t, ok)
}

func TestSetID(t *testing.T) {
	var e ByTag
	require.NoError(t, reflects.SetID(&e, "id"))
	require.Equal(t, "id", e.Key)

	require.Error(t, reflects.SetID(ByName{}, "id"))
	require.Error(t, reflects.SetID(&WithoutID{}, "id"))
}

func TestLink(t *testing.T) {
	var dst ByName
	require.NoError(t, reflects.Link(ByName{ID: "1", Name: "a"}, &dst))
	require.Equal(t, ByName{ID: "1", Name: "a"}, dst)

	require.NoError(t, reflects.Link(&ByName{ID: "2"}, &dst))
	require.Equal(t, "2", dst.ID)

	require.Error(t, reflects.Link(WithoutID{}, &dst))
}
