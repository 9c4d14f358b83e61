package lifecycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"

	"github.com/adamluzsi/fixreg"
	"github.com/adamluzsi/fixreg/internal/mocks"
	"github.com/adamluzsi/fixreg/lifecycle"
	"github.com/adamluzsi/fixreg/pkg/logger"
)

type spyBinder struct {
	calls []fixreg.Container
}

func (b *spyBinder) BindContainer(c fixreg.Container) { b.calls = append(b.calls, c) }

func TestHooks(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		ctrl = testcase.Let(s, func(t *testcase.T) *gomock.Controller {
			return gomock.NewController(t)
		})
		suiteCleanup   = testcase.LetValue(s, false)
		storageCleanup = testcase.Let[interface{}](s, func(t *testcase.T) interface{} {
			return false
		})
		persistence = testcase.Let(s, func(t *testcase.T) *mocks.MockPersistenceLayer {
			m := mocks.NewMockPersistenceLayer(ctrl.Get(t))
			m.EXPECT().Config(fixreg.CleanupConfigKey).Return(storageCleanup.Get(t), true).AnyTimes()
			return m
		})
		binder = testcase.Let(s, func(t *testcase.T) *spyBinder {
			return &spyBinder{}
		})
		container = testcase.Let(s, func(t *testcase.T) fixreg.Container {
			return fixreg.ServiceMap{"id": t.Random.String()}
		})
		ctx = testcase.Let(s, func(t *testcase.T) context.Context {
			return context.Background()
		})
		hooks = testcase.Let(s, func(t *testcase.T) *lifecycle.Hooks {
			return &lifecycle.Hooks{
				Settings:    lifecycle.Settings{Cleanup: suiteCleanup.Get(t)},
				Persistence: persistence.Get(t),
				Binder:      binder.Get(t),
				Logger:      logger.Testing(t),
			}
		})
	)

	s.Describe(".OnSuiteStart", func(s *testcase.Spec) {
		act := func(t *testcase.T) error {
			return hooks.Get(t).OnSuiteStart(ctx.Get(t), container.Get(t))
		}

		s.Then("the container is bound to the factories", func(t *testcase.T) {
			t.Must.NoError(act(t))
			t.Must.Equal([]fixreg.Container{container.Get(t)}, binder.Get(t).calls)
		})

		s.Then("the container is kept by the hooks", func(t *testcase.T) {
			t.Must.NoError(act(t))
			t.Must.Equal(container.Get(t), hooks.Get(t).Container())
		})

		s.When("there is no binder", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				hooks.Get(t).Binder = nil
			})

			s.Then("the container is still kept", func(t *testcase.T) {
				t.Must.NoError(act(t))
				t.Must.Equal(container.Get(t), hooks.Get(t).Container())
			})
		})

		s.When("the context is already done", func(s *testcase.Spec) {
			ctx.Let(s, func(t *testcase.T) context.Context {
				c, cancel := context.WithCancel(context.Background())
				cancel()
				return c
			})

			s.Then("the context error is returned", func(t *testcase.T) {
				require.ErrorIs(t, act(t), context.Canceled)
				t.Must.Empty(binder.Get(t).calls)
			})
		})
	})

	s.Describe(".OnSuiteEnd", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			t.Must.NoError(hooks.Get(t).OnSuiteStart(ctx.Get(t), container.Get(t)))
		})

		act := func(t *testcase.T) error {
			return hooks.Get(t).OnSuiteEnd(ctx.Get(t))
		}

		thenNoReset := func(s *testcase.Spec) {
			s.Then("the schema is left untouched", func(t *testcase.T) {
				persistence.Get(t).EXPECT().ResetSchema(gomock.Any(), gomock.Any()).Times(0)
				t.Must.NoError(act(t))
			})
		}

		s.When("neither side allows cleanup", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, false)
			storageCleanup.LetValue(s, false)

			thenNoReset(s)
		})

		s.When("only the suite allows cleanup", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, true)
			storageCleanup.LetValue(s, false)

			thenNoReset(s)
		})

		s.When("only the persistence layer allows cleanup", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, false)
			storageCleanup.LetValue(s, true)

			thenNoReset(s)
		})

		s.When("both sides allow cleanup", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, true)
			storageCleanup.LetValue(s, true)

			s.Then("the schema is reset with the bound container", func(t *testcase.T) {
				persistence.Get(t).EXPECT().ResetSchema(ctx.Get(t), container.Get(t)).Return(nil).Times(1)
				t.Must.NoError(act(t))
			})

			s.And("the reset fails", func(s *testcase.Spec) {
				expectedErr := errors.New("boom")

				s.Before(func(t *testcase.T) {
					persistence.Get(t).EXPECT().ResetSchema(gomock.Any(), gomock.Any()).Return(expectedErr).Times(1)
				})

				s.Then("the error is returned", func(t *testcase.T) {
					require.ErrorIs(t, act(t), expectedErr)
				})
			})
		})

		s.When("the persistence layer flag is a string", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, true)

			s.And("it reads as true", func(s *testcase.Spec) {
				storageCleanup.LetValue(s, "true")

				s.Then("the schema is reset", func(t *testcase.T) {
					persistence.Get(t).EXPECT().ResetSchema(gomock.Any(), gomock.Any()).Return(nil).Times(1)
					t.Must.NoError(act(t))
				})
			})

			s.And("it can't be parsed", func(s *testcase.Spec) {
				storageCleanup.LetValue(s, "maybe")

				thenNoReset(s)
			})
		})

		s.When("the persistence layer flag has an unexpected type", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, true)
			storageCleanup.LetValue(s, 1)

			thenNoReset(s)
		})

		s.When("the persistence layer doesn't know the cleanup flag", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, true)

			persistence.Let(s, func(t *testcase.T) *mocks.MockPersistenceLayer {
				m := mocks.NewMockPersistenceLayer(ctrl.Get(t))
				m.EXPECT().Config(fixreg.CleanupConfigKey).Return(nil, false).AnyTimes()
				return m
			})

			thenNoReset(s)
		})

		s.When("there is no persistence layer", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, true)

			s.Before(func(t *testcase.T) {
				hooks.Get(t).Persistence = nil
			})

			s.Then("it is a no-op", func(t *testcase.T) {
				t.Must.NoError(act(t))
			})
		})
	})

	s.Describe(".OnReconfigure", func(s *testcase.Spec) {
		settings := testcase.LetValue(s, lifecycle.Settings{})

		s.Before(func(t *testcase.T) {
			t.Must.NoError(hooks.Get(t).OnSuiteStart(ctx.Get(t), container.Get(t)))
		})

		act := func(t *testcase.T) error {
			return hooks.Get(t).OnReconfigure(ctx.Get(t), settings.Get(t))
		}

		s.Then("the new settings are applied", func(t *testcase.T) {
			t.Must.NoError(act(t))
			t.Must.Equal(settings.Get(t), hooks.Get(t).Settings)
		})

		s.Then("the current container is bound again", func(t *testcase.T) {
			t.Must.NoError(act(t))
			t.Must.Equal([]fixreg.Container{container.Get(t), container.Get(t)}, binder.Get(t).calls)
			t.Must.Equal(container.Get(t), hooks.Get(t).Container())
		})

		s.When("the new settings enable cleanup on a persistence layer that allows it", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, false)
			storageCleanup.LetValue(s, true)
			settings.LetValue(s, lifecycle.Settings{Cleanup: true})

			s.Then("the schema is reset before the container is bound again", func(t *testcase.T) {
				persistence.Get(t).EXPECT().ResetSchema(ctx.Get(t), container.Get(t)).Return(nil).Times(1)
				t.Must.NoError(act(t))
				t.Must.Equal(2, len(binder.Get(t).calls))
			})
		})

		s.When("the new settings disable cleanup", func(s *testcase.Spec) {
			suiteCleanup.LetValue(s, true)
			storageCleanup.LetValue(s, true)
			settings.LetValue(s, lifecycle.Settings{Cleanup: false})

			thenNoReset := func(t *testcase.T) {
				persistence.Get(t).EXPECT().ResetSchema(gomock.Any(), gomock.Any()).Times(0)
				t.Must.NoError(act(t))
			}

			s.Then("the schema is left untouched", thenNoReset)
		})

		s.When("the reset fails", func(s *testcase.Spec) {
			storageCleanup.LetValue(s, true)
			settings.LetValue(s, lifecycle.Settings{Cleanup: true})

			s.Then("the error is returned and the container is not bound again", func(t *testcase.T) {
				expectedErr := errors.New("boom")
				persistence.Get(t).EXPECT().ResetSchema(gomock.Any(), gomock.Any()).Return(expectedErr).Times(1)
				require.ErrorIs(t, act(t), expectedErr)
				t.Must.Equal(1, len(binder.Get(t).calls))
			})
		})
	})
}
