package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"

	"github.com/adamluzsi/fixreg"
	"github.com/adamluzsi/fixreg/builder"
	"github.com/adamluzsi/fixreg/catalog"
	"github.com/adamluzsi/fixreg/internal/doubles"
	"github.com/adamluzsi/fixreg/internal/mocks"
)

const userType fixreg.EntityType = "User"

type ctxKey struct{}

func TestBuilder(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		ctrl = testcase.Let(s, func(t *testcase.T) *gomock.Controller {
			return gomock.NewController(t)
		})
		factory = testcase.Let(s, func(t *testcase.T) *mocks.MockFactory {
			m := mocks.NewMockFactory(ctrl.Get(t))
			m.EXPECT().TargetType().Return(userType).AnyTimes()
			return m
		})
		subject = testcase.Let(s, func(t *testcase.T) *builder.Builder {
			c, err := catalog.New(factory.Get(t))
			t.Must.NoError(err)
			return builder.New(c)
		})
		ctx = testcase.Let(s, func(t *testcase.T) context.Context {
			return context.WithValue(context.Background(), ctxKey{}, t.Random.String())
		})
		entityType = testcase.LetValue(s, userType)
		overrides  = testcase.Let(s, func(t *testcase.T) fixreg.Overrides {
			return fixreg.Overrides{"active": t.Random.Bool()}
		})
	)

	handleOf := func(t *testcase.T, ent fixreg.Entity) fixreg.Handle {
		h := mocks.NewMockHandle(ctrl.Get(t))
		h.EXPECT().Unwrap().Return(ent).Times(1)
		return h
	}

	thenUnknownTypeFails := func(s *testcase.Spec, act func(t *testcase.T) error) {
		s.When("the entity type has no factory", func(s *testcase.Spec) {
			entityType.LetValue(s, "Unknown")

			s.Then("it fails with a resolution error", func(t *testcase.T) {
				err := act(t)
				require.ErrorIs(t, err, fixreg.ErrResolution)
				require.ErrorIs(t, err, fixreg.ErrUnknownEntityType)
			})
		})
	}

	s.Describe(".Create", func(s *testcase.Spec) {
		act := func(t *testcase.T) (fixreg.Entity, error) {
			return subject.Get(t).Create(ctx.Get(t), entityType.Get(t), overrides.Get(t))
		}

		s.Then("the unwrapped entity of the factory is returned", func(t *testcase.T) {
			expected := &struct{ Name string }{Name: t.Random.String()}
			factory.Get(t).EXPECT().
				Create(ctx.Get(t), overrides.Get(t)).
				Return(handleOf(t, expected), nil).
				Times(1)

			ent, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal(fixreg.Entity(expected), ent)
		})

		s.When("the factory fails", func(s *testcase.Spec) {
			expectedErr := errors.New("constraint violation")

			s.Before(func(t *testcase.T) {
				factory.Get(t).EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, expectedErr)
			})

			s.Then("the failure is wrapped as a factory invocation error", func(t *testcase.T) {
				_, err := act(t)
				require.ErrorIs(t, err, fixreg.ErrFactoryInvocation)
				require.ErrorIs(t, err, expectedErr)
			})
		})

		s.When("the factory panics", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				factory.Get(t).EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(context.Context, fixreg.Overrides) (fixreg.Handle, error) { panic("boom") })
			})

			s.Then("the panic is reported as a factory invocation error", func(t *testcase.T) {
				_, err := act(t)
				require.ErrorIs(t, err, fixreg.ErrFactoryInvocation)
				require.Contains(t, err.Error(), "boom")
			})
		})

		s.When("the factory returns a nil handle", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				factory.Get(t).EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)
			})

			s.Then("it fails as a factory invocation error", func(t *testcase.T) {
				_, err := act(t)
				require.ErrorIs(t, err, fixreg.ErrFactoryInvocation)
			})
		})

		thenUnknownTypeFails(s, func(t *testcase.T) error {
			_, err := act(t)
			return err
		})
	})

	s.Describe(".CreateMany", func(s *testcase.Spec) {
		count := testcase.Let(s, func(t *testcase.T) int { return t.Random.IntB(1, 7) })
		act := func(t *testcase.T) ([]fixreg.Entity, error) {
			return subject.Get(t).CreateMany(ctx.Get(t), entityType.Get(t), count.Get(t), overrides.Get(t))
		}

		s.Then("every handle is unwrapped and returned", func(t *testcase.T) {
			var (
				expected []fixreg.Entity
				handles  []fixreg.Handle
			)
			for i := 0; i < count.Get(t); i++ {
				ent := &struct{ N int }{N: i}
				expected = append(expected, ent)
				handles = append(handles, handleOf(t, ent))
			}
			factory.Get(t).EXPECT().
				CreateMany(ctx.Get(t), count.Get(t), overrides.Get(t)).
				Return(handles, nil).
				Times(1)

			ents, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal(expected, ents)
		})

		s.When("count is zero", func(s *testcase.Spec) {
			count.LetValue(s, 0)

			s.Then("an empty sequence is returned without invoking the factory", func(t *testcase.T) {
				factory.Get(t).EXPECT().CreateMany(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				factory.Get(t).EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

				ents, err := act(t)
				t.Must.NoError(err)
				t.Must.NotNil(ents)
				t.Must.Equal(0, len(ents))
			})
		})

		s.When("count is negative", func(s *testcase.Spec) {
			count.Let(s, func(t *testcase.T) int { return t.Random.IntB(1, 7) * -1 })

			s.Then("it fails with ErrInvalidCount", func(t *testcase.T) {
				_, err := act(t)
				require.ErrorIs(t, err, fixreg.ErrInvalidCount)
			})
		})

		s.When("the factory returns fewer entities than requested", func(s *testcase.Spec) {
			count.LetValue(s, 3)

			s.Before(func(t *testcase.T) {
				factory.Get(t).EXPECT().CreateMany(gomock.Any(), 3, gomock.Any()).
					Return([]fixreg.Handle{doubles.StubHandle{Value: &struct{}{}}}, nil)
			})

			s.Then("the whole call fails", func(t *testcase.T) {
				ents, err := act(t)
				require.ErrorIs(t, err, fixreg.ErrFactoryInvocation)
				t.Must.Nil(ents)
			})
		})

		s.When("one of the handles is nil", func(s *testcase.Spec) {
			count.LetValue(s, 2)

			s.Before(func(t *testcase.T) {
				factory.Get(t).EXPECT().CreateMany(gomock.Any(), 2, gomock.Any()).
					Return([]fixreg.Handle{doubles.StubHandle{Value: &struct{}{}}, nil}, nil)
			})

			s.Then("no partial result is returned", func(t *testcase.T) {
				ents, err := act(t)
				require.ErrorIs(t, err, fixreg.ErrFactoryInvocation)
				t.Must.Nil(ents)
			})
		})

		s.When("the factory fails", func(s *testcase.Spec) {
			expectedErr := errors.New("boom")

			s.Before(func(t *testcase.T) {
				factory.Get(t).EXPECT().CreateMany(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, expectedErr)
			})

			s.Then("the failure is propagated", func(t *testcase.T) {
				_, err := act(t)
				require.ErrorIs(t, err, fixreg.ErrFactoryInvocation)
				require.ErrorIs(t, err, expectedErr)
			})
		})

		thenUnknownTypeFails(s, func(t *testcase.T) error {
			_, err := act(t)
			return err
		})
	})

	s.Describe(".Make", func(s *testcase.Spec) {
		act := func(t *testcase.T) (fixreg.Entity, error) {
			return subject.Get(t).Make(ctx.Get(t), entityType.Get(t), overrides.Get(t))
		}

		s.Then("the transient variant of the factory is used", func(t *testcase.T) {
			expected := &struct{ Name string }{Name: t.Random.String()}
			transient := mocks.NewMockFactory(ctrl.Get(t))
			transient.EXPECT().Create(ctx.Get(t), overrides.Get(t)).Return(handleOf(t, expected), nil).Times(1)
			factory.Get(t).EXPECT().WithoutPersisting().Return(transient).Times(1)
			factory.Get(t).EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			ent, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal(fixreg.Entity(expected), ent)
		})

		thenUnknownTypeFails(s, func(t *testcase.T) error {
			_, err := act(t)
			return err
		})
	})

	s.Describe(".MakeMany", func(s *testcase.Spec) {
		count := testcase.Let(s, func(t *testcase.T) int { return t.Random.IntB(1, 7) })
		act := func(t *testcase.T) ([]fixreg.Entity, error) {
			return subject.Get(t).MakeMany(ctx.Get(t), entityType.Get(t), count.Get(t), overrides.Get(t))
		}

		s.Then("the transient variant of the factory is used for the batch", func(t *testcase.T) {
			var handles []fixreg.Handle
			for i := 0; i < count.Get(t); i++ {
				handles = append(handles, handleOf(t, &struct{ N int }{N: i}))
			}
			transient := mocks.NewMockFactory(ctrl.Get(t))
			transient.EXPECT().CreateMany(ctx.Get(t), count.Get(t), overrides.Get(t)).Return(handles, nil).Times(1)
			factory.Get(t).EXPECT().WithoutPersisting().Return(transient).Times(1)

			ents, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal(count.Get(t), len(ents))
		})

		s.When("count is zero", func(s *testcase.Spec) {
			count.LetValue(s, 0)

			s.Then("the factory is not touched", func(t *testcase.T) {
				factory.Get(t).EXPECT().WithoutPersisting().Times(0)

				ents, err := act(t)
				t.Must.NoError(err)
				t.Must.Equal(0, len(ents))
			})
		})
	})
}
