package contracts

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"

	"github.com/adamluzsi/fixreg"
)

// StorageSubject is what a storage backend must implement to be usable with the registry.
type StorageSubject interface {
	fixreg.Storage
	fixreg.PersistenceLayer
}

type Storage struct {
	Subject func(tb testing.TB) StorageSubject
}

func (c Storage) String() string { return "Storage" }

func (c Storage) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c Storage) Spec(s *testcase.Spec) {
	var (
		ctx = testcase.Let(s, func(t *testcase.T) context.Context {
			return context.Background()
		})
		storage = testcase.Let(s, func(t *testcase.T) StorageSubject {
			return c.Subject(t)
		})
		entity = testcase.Let(s, func(t *testcase.T) *Entity {
			return &Entity{
				Name:   t.Random.String(),
				Age:    t.Random.IntB(1, 99),
				Active: true,
			}
		})
	)

	save := func(t *testcase.T, typ fixreg.EntityType, ptr fixreg.Entity) {
		t.Must.NoError(storage.Get(t).Save(ctx.Get(t), typ, ptr))
	}

	find := func(t *testcase.T, typ fixreg.EntityType, id string, ptr fixreg.Entity) bool {
		found, err := storage.Get(t).FindByID(ctx.Get(t), typ, id, ptr)
		t.Must.NoError(err)
		return found
	}

	s.Describe(".Save", func(s *testcase.Spec) {
		s.Then("an ID is assigned to the entity", func(t *testcase.T) {
			save(t, EntityType, entity.Get(t))
			t.Must.NotEmpty(entity.Get(t).ID)
		})

		s.Then("the entity can be found by its ID", func(t *testcase.T) {
			save(t, EntityType, entity.Get(t))

			var got Entity
			t.Must.True(find(t, EntityType, entity.Get(t).ID, &got))
			t.Must.Equal(*entity.Get(t), got)
		})

		s.Then("the IDs of multiple entities are unique", func(t *testcase.T) {
			ids := map[string]struct{}{}
			for i := 0; i < 3; i++ {
				ent := &Entity{Name: t.Random.String()}
				save(t, EntityType, ent)
				ids[ent.ID] = struct{}{}
			}
			t.Must.Equal(3, len(ids))
		})

		s.When("the entity already has an ID", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				entity.Get(t).ID = "preset-" + strconv.Itoa(t.Random.Int())
			})

			s.Then("the ID is kept", func(t *testcase.T) {
				id := entity.Get(t).ID
				save(t, EntityType, entity.Get(t))
				t.Must.Equal(id, entity.Get(t).ID)
			})

			s.Then("saving it again updates the stored entity", func(t *testcase.T) {
				save(t, EntityType, entity.Get(t))
				entity.Get(t).Name = t.Random.String()
				entity.Get(t).Age++
				save(t, EntityType, entity.Get(t))

				var got Entity
				t.Must.True(find(t, EntityType, entity.Get(t).ID, &got))
				t.Must.Equal(*entity.Get(t), got)
			})
		})

		s.When("the entity has no identity field", func(s *testcase.Spec) {
			s.Then("it fails with ErrIDRequired", func(t *testcase.T) {
				err := storage.Get(t).Save(ctx.Get(t), "contracts.WithoutID", &WithoutID{Name: t.Random.String()})
				require.ErrorIs(t, err, fixreg.ErrIDRequired)
			})
		})
	})

	s.Describe(".FindByID", func(s *testcase.Spec) {
		s.Then("an unknown ID is reported as not found", func(t *testcase.T) {
			save(t, EntityType, entity.Get(t))

			var got Entity
			t.Must.False(find(t, EntityType, entity.Get(t).ID+"-unknown", &got))
		})

		s.Then("an empty ID is reported as not found", func(t *testcase.T) {
			var got Entity
			t.Must.False(find(t, EntityType, "", &got))
		})

		s.Then("entity types don't share their IDs", func(t *testcase.T) {
			save(t, EntityType, entity.Get(t))

			var got OtherEntity
			t.Must.False(find(t, OtherEntityType, entity.Get(t).ID, &got))
		})
	})

	s.Describe(".ResetSchema", func(s *testcase.Spec) {
		s.Then("previously saved entities are gone", func(t *testcase.T) {
			save(t, EntityType, entity.Get(t))
			other := &OtherEntity{Name: t.Random.String()}
			save(t, OtherEntityType, other)

			t.Must.NoError(storage.Get(t).ResetSchema(ctx.Get(t), nil))

			var got Entity
			t.Must.False(find(t, EntityType, entity.Get(t).ID, &got))
			var gotOther OtherEntity
			t.Must.False(find(t, OtherEntityType, other.ID, &gotOther))
		})

		s.Then("the storage is usable after the reset", func(t *testcase.T) {
			t.Must.NoError(storage.Get(t).ResetSchema(ctx.Get(t), nil))
			save(t, EntityType, entity.Get(t))

			var got Entity
			t.Must.True(find(t, EntityType, entity.Get(t).ID, &got))
		})
	})

	s.Describe(".Config", func(s *testcase.Spec) {
		s.Then("the cleanup flag is exposed as a bool", func(t *testcase.T) {
			v, ok := storage.Get(t).Config(fixreg.CleanupConfigKey)
			t.Must.True(ok)
			_, isBool := v.(bool)
			t.Must.True(isBool)
		})

		s.Then("unknown keys are reported as missing", func(t *testcase.T) {
			_, ok := storage.Get(t).Config("unknown-" + t.Random.String())
			t.Must.False(ok)
		})
	})
}
