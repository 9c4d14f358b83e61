package contracts

import (
	"context"
	"testing"

	"go.llib.dev/testcase"

	"github.com/adamluzsi/fixreg"
)

// Factory checks the behaviour every fixreg.Factory implementation must have.
// The Subject is expected to be able to persist entities with Create.
type Factory struct {
	Subject func(tb testing.TB) fixreg.Factory
}

func (c Factory) String() string { return "Factory" }

func (c Factory) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c Factory) Spec(s *testcase.Spec) {
	var (
		ctx = testcase.Let(s, func(t *testcase.T) context.Context {
			return context.Background()
		})
		factory = testcase.Let(s, func(t *testcase.T) fixreg.Factory {
			return c.Subject(t)
		})
	)

	s.Describe(".TargetType", func(s *testcase.Spec) {
		s.Then("it is declared and stable", func(t *testcase.T) {
			typ := factory.Get(t).TargetType()
			t.Must.NotEmpty(typ)
			t.Must.Equal(typ, factory.Get(t).TargetType())
		})

		s.Then("variants keep the target type", func(t *testcase.T) {
			typ := factory.Get(t).TargetType()
			t.Must.Equal(typ, factory.Get(t).New(fixreg.Overrides{}).TargetType())
			t.Must.Equal(typ, factory.Get(t).WithoutPersisting().TargetType())
		})
	})

	s.Describe(".Create", func(s *testcase.Spec) {
		s.Then("it returns a handle to a non nil entity", func(t *testcase.T) {
			h, err := factory.Get(t).Create(ctx.Get(t), fixreg.Overrides{})
			t.Must.NoError(err)
			t.Must.NotNil(h)
			t.Must.NotNil(h.Unwrap())
		})

		s.Then("the transient variant returns a handle as well", func(t *testcase.T) {
			h, err := factory.Get(t).WithoutPersisting().Create(ctx.Get(t), fixreg.Overrides{})
			t.Must.NoError(err)
			t.Must.NotNil(h)
			t.Must.NotNil(h.Unwrap())
		})
	})

	s.Describe(".CreateMany", func(s *testcase.Spec) {
		count := testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 5)
		})

		s.Then("it returns as many handles as requested", func(t *testcase.T) {
			hs, err := factory.Get(t).CreateMany(ctx.Get(t), count.Get(t), fixreg.Overrides{})
			t.Must.NoError(err)
			t.Must.Equal(count.Get(t), len(hs))
			for _, h := range hs {
				t.Must.NotNil(h.Unwrap())
			}
		})

		s.Then("the transient variant returns as many handles as requested", func(t *testcase.T) {
			hs, err := factory.Get(t).WithoutPersisting().CreateMany(ctx.Get(t), count.Get(t), fixreg.Overrides{})
			t.Must.NoError(err)
			t.Must.Equal(count.Get(t), len(hs))
		})

		s.When("count is zero", func(s *testcase.Spec) {
			count.LetValue(s, 0)

			s.Then("no handle is returned", func(t *testcase.T) {
				hs, err := factory.Get(t).CreateMany(ctx.Get(t), count.Get(t), fixreg.Overrides{})
				t.Must.NoError(err)
				t.Must.Empty(hs)
			})
		})
	})
}
