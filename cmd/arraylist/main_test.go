package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func execute(tb testing.TB, args ...string) (string, error) {
	tb.Helper()
	testcase.UnsetEnv(tb, "ARRAYLIST_LOG_LEVEL")
	testcase.UnsetEnv(tb, "ARRAYLIST_INITIAL_CAPACITY")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(`
name: smoke
steps:
  - op: add
    value: A
  - op: add
    value: B
  - op: remove
    index: 5
  - op: string
`), 0600))

	out, err := execute(t, "run", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "[A, B]")
	assert.Contains(t, out, "ErrIndexOutOfBounds")
}

func TestRun_failingStepIsOneRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(`
steps:
  - op: get
    index: 3
  - op: len
`), 0600))

	out, err := execute(t, "run", path)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Contains(t, lines[1], "get")
	assert.Contains(t, lines[1], "[ErrIndexOutOfBounds] index:3 length:0")
	assert.Contains(t, lines[2], "len")
	assert.False(t, strings.Contains(out, "\t"))
}

func TestErrMessage(t *testing.T) {
	err := errors.New("[ErrIndexOutOfBounds] index:3 length:0\n\npkg.(*ArrayList).rangeCheck\n\tarraylist.go:247")
	assert.Equal(t, "[ErrIndexOutOfBounds] index:3 length:0", errMessage(err))
	assert.Equal(t, "boom", errMessage(errors.New("boom")))
}

func TestRun_unknownOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("steps:\n  - op: sort\n"), 0600))

	_, err := execute(t, "run", path)
	assert.Error(t, err)
}

func TestRun_missingScript(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGrowth(t *testing.T) {
	out, err := execute(t, "growth", "--count", "30")
	assert.NoError(t, err)
	assert.Contains(t, out, "capacity after 30 appends")
}

func TestGrowth_configFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("initial_capacity: 0\n"), 0600))

	out, err := execute(t, "--config", path, "growth", "--count", "5")
	assert.NoError(t, err)
	assert.Contains(t, out, "capacity after 5 appends")
}

func TestGrowth_invalidCount(t *testing.T) {
	_, err := execute(t, "growth", "--count", "0")
	assert.Error(t, err)
}
