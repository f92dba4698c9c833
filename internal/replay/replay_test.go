package replay_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.llib.dev/arraylist/internal/replay"
	"go.llib.dev/arraylist/pkg/datastruct"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/pointer"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

const scenario = `
name: shifting
steps:
  - op: add
    value: A
  - op: add
    value: B
  - op: add
    value: C
  - op: insert
    index: 1
    value: X
  - op: remove
    index: 0
  - op: string
  - op: get
    index: 3
  - op: add-all
    values: [B, D, B]
  - op: remove-all
    values: [B]
  - op: index-of
    value: D
  - op: slice
`

func TestParse(t *testing.T) {
	s, err := replay.Parse([]byte(scenario))
	assert.NoError(t, err)
	assert.Equal(t, "shifting", s.Name)
	assert.Nil(t, s.Capacity)
	assert.Equal(t, 11, len(s.Steps))
	assert.Equal(t, replay.Step{Op: "insert", Index: 1, Value: "X"}, s.Steps[3])
	assert.Equal(t, []string{"B", "D", "B"}, s.Steps[7].Values)

	_, err = replay.Parse([]byte("steps: {"))
	assert.ErrorIs(t, err, replay.ErrInvalidScript)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(scenario), 0600))

	s, err := replay.ParseFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "shifting", s.Name)
}

func TestRunner(t *testing.T) {
	s := testcase.NewSpec(t)

	type stubLogger struct {
		Logger *logging.Logger
		Out    logging.StubOutput
	}
	stub := let.Var(s, func(t *testcase.T) stubLogger {
		l, out := logging.Stub(t)
		return stubLogger{Logger: l, Out: out}
	})

	script := let.Var(s, func(t *testcase.T) replay.Script {
		sc, err := replay.Parse([]byte(scenario))
		assert.NoError(t, err)
		return sc
	})
	runner := let.Var(s, func(t *testcase.T) replay.Runner {
		return replay.Runner{Logger: stub.Get(t).Logger, InitialCapacity: -1}
	})
	act := let.Act2(func(t *testcase.T) ([]replay.Result, error) {
		return runner.Get(t).Run(context.Background(), script.Get(t))
	})

	s.Then("every step yields a result", func(t *testcase.T) {
		results, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, len(script.Get(t).Steps), len(results))

		removed := results[4]
		assert.Equal(t, "A", removed.Output)
		assert.NoError(t, removed.Err)
		assert.Equal(t, 3, removed.Len)

		assert.Equal(t, "[X, B, C]", results[5].Output)

		outOfBounds := results[6]
		assert.ErrorIs(t, outOfBounds.Err, datastruct.ErrIndexOutOfBounds)
		assert.Equal(t, 3, outOfBounds.Len)

		assert.Equal(t, "true", results[8].Output)
		assert.Equal(t, "2", results[9].Output)
		assert.Equal(t, "[X C D]", results[10].Output)
	})

	s.Then("the lazily allocated list reports the default capacity", func(t *testcase.T) {
		results, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, datastruct.DefaultCapacity, results[0].Cap)
	})

	s.Then("the run is logged", func(t *testcase.T) {
		_, err := act(t)
		assert.NoError(t, err)
		assert.Contains(t, stub.Get(t).Out.String(), "replay finished")
		assert.Contains(t, stub.Get(t).Out.String(), "replay step")
	})

	s.When("the script sets the capacity", func(s *testcase.Spec) {
		script.Let(s, func(t *testcase.T) replay.Script {
			sc := script.Super(t)
			sc.Capacity = pointer.Of(0)
			return sc
		})

		s.Then("the list starts from that capacity", func(t *testcase.T) {
			results, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, 1, results[0].Cap)
		})
	})

	s.When("the script capacity is negative", func(s *testcase.Spec) {
		script.Let(s, func(t *testcase.T) replay.Script {
			sc := script.Super(t)
			sc.Capacity = pointer.Of(-1 - t.Random.IntN(42))
			return sc
		})

		s.Then("the list is lazily allocated", func(t *testcase.T) {
			results, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, datastruct.DefaultCapacity, results[0].Cap)
		})
	})

	s.When("the script has an unknown operation", func(s *testcase.Spec) {
		script.Let(s, func(t *testcase.T) replay.Script {
			sc := script.Super(t)
			sc.Steps = append(sc.Steps[:2:2], replay.Step{Op: "shuffle"})
			return sc
		})

		s.Then("the run stops with an error after the known steps", func(t *testcase.T) {
			results, err := act(t)
			assert.ErrorIs(t, err, replay.ErrUnknownOp)
			assert.Equal(t, 2, len(results))
			assert.Contains(t, stub.Get(t).Out.String(), "replay step failed")
		})
	})

	s.When("the context is cancelled", func(s *testcase.Spec) {
		s.Then("no step is executed", func(t *testcase.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			results, err := runner.Get(t).Run(ctx, script.Get(t))
			assert.ErrorIs(t, err, context.Canceled)
			assert.Empty(t, results)
		})
	})
}

func TestGrowth(t *testing.T) {
	t.Run("lazy", func(t *testing.T) {
		caps, err := replay.Growth(-1, 16)
		assert.NoError(t, err)
		assert.Equal(t, 16, len(caps))
		assert.Equal(t, 10, caps[0])
		assert.Equal(t, 10, caps[9])
		assert.Equal(t, 15, caps[10])
		assert.Equal(t, 22, caps[15])
	})
	t.Run("explicit zero", func(t *testing.T) {
		caps, err := replay.Growth(0, 5)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 6}, caps)
	})
}
