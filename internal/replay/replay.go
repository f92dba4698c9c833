// Package replay executes YAML scripts of list operations against an ArrayList.
package replay

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.llib.dev/arraylist/pkg/datastruct"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"gopkg.in/yaml.v3"
)

const (
	ErrUnknownOp     errorkit.Error = "ErrUnknownOp"
	ErrInvalidScript errorkit.Error = "ErrInvalidScript"
)

// Script is a named sequence of operations executed on a single list of strings.
type Script struct {
	Name string `yaml:"name"`
	// Capacity is the initial capacity of the list.
	// When nil, the Runner's InitialCapacity is used.
	Capacity *int   `yaml:"capacity"`
	Steps    []Step `yaml:"steps"`
}

type Step struct {
	Op     string   `yaml:"op"`
	Index  int      `yaml:"index"`
	Value  string   `yaml:"value"`
	Values []string `yaml:"values"`
}

// Result is the observed outcome of a Step.
type Result struct {
	Op     string
	Output string
	// Err is the error returned by the list operation.
	Err error
	Len int
	Cap int
}

// Parse decodes a Script from YAML.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, ErrInvalidScript.F("%w", err)
	}
	return s, nil
}

// ParseFile decodes the Script stored at path.
func ParseFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	return Parse(data)
}

type Runner struct {
	Logger *logging.Logger
	// InitialCapacity is the capacity of the list when the Script doesn't set one.
	// A negative value means lazy allocation.
	InitialCapacity int
}

// Run executes every step of the script in order.
// Errors of the list operations are part of the Results,
// while an unknown operation stops the run with ErrUnknownOp.
func (r Runner) Run(ctx context.Context, s Script) ([]Result, error) {
	list, err := r.makeList(s)
	if err != nil {
		return nil, err
	}
	var results []Result
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		op, ok := operations[step.Op]
		if !ok {
			err := ErrUnknownOp.F("step %d: %q", i, step.Op)
			r.logger().Error(ctx, "replay step failed",
				logging.Field("script", s.Name),
				logging.ErrField(err))
			return results, err
		}
		out, opErr := op(list, step)
		res := Result{
			Op:     step.Op,
			Output: out,
			Err:    opErr,
			Len:    list.Len(),
			Cap:    list.Cap(),
		}
		r.logger().Debug(ctx, "replay step",
			logging.Field("step", i),
			logging.Field("op", res.Op),
			logging.Field("output", res.Output),
			logging.Field("len", res.Len),
			logging.Field("cap", res.Cap))
		results = append(results, res)
	}
	r.logger().Info(ctx, "replay finished",
		logging.Field("script", s.Name),
		logging.Field("steps", len(results)),
		logging.Field("list", list.String()))
	return results, nil
}

func (r Runner) makeList(s Script) (*datastruct.ArrayList[string], error) {
	capacity := r.InitialCapacity
	if s.Capacity != nil {
		capacity = *s.Capacity
	}
	if capacity < 0 {
		return datastruct.NewArrayList[string](), nil
	}
	return datastruct.MakeArrayList[string](capacity)
}

func (r Runner) logger() *logging.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return &logging.Logger{Out: os.Stderr}
}

type operation func(list *datastruct.ArrayList[string], step Step) (string, error)

func boolOp(fn func(*datastruct.ArrayList[string], Step) bool) operation {
	return func(list *datastruct.ArrayList[string], step Step) (string, error) {
		return strconv.FormatBool(fn(list, step)), nil
	}
}

func intOp(fn func(*datastruct.ArrayList[string], Step) int) operation {
	return func(list *datastruct.ArrayList[string], step Step) (string, error) {
		return strconv.Itoa(fn(list, step)), nil
	}
}

var operations = map[string]operation{
	"add": boolOp(func(list *datastruct.ArrayList[string], step Step) bool {
		return list.Add(step.Value)
	}),
	"insert": func(list *datastruct.ArrayList[string], step Step) (string, error) {
		return "", list.Insert(step.Index, step.Value)
	},
	"get": func(list *datastruct.ArrayList[string], step Step) (string, error) {
		return list.Get(step.Index)
	},
	"set": func(list *datastruct.ArrayList[string], step Step) (string, error) {
		return list.Set(step.Index, step.Value)
	},
	"remove": func(list *datastruct.ArrayList[string], step Step) (string, error) {
		return list.Remove(step.Index)
	},
	"remove-value": boolOp(func(list *datastruct.ArrayList[string], step Step) bool {
		return list.RemoveValue(step.Value)
	}),
	"index-of": intOp(func(list *datastruct.ArrayList[string], step Step) int {
		return list.IndexOf(step.Value)
	}),
	"last-index-of": intOp(func(list *datastruct.ArrayList[string], step Step) int {
		return list.LastIndexOf(step.Value)
	}),
	"contains": boolOp(func(list *datastruct.ArrayList[string], step Step) bool {
		return list.Contains(step.Value)
	}),
	"add-all": boolOp(func(list *datastruct.ArrayList[string], step Step) bool {
		return list.AddAll(step.Values...)
	}),
	"insert-all": func(list *datastruct.ArrayList[string], step Step) (string, error) {
		ok, err := list.InsertAll(step.Index, step.Values...)
		return strconv.FormatBool(ok), err
	},
	"remove-all": boolOp(func(list *datastruct.ArrayList[string], step Step) bool {
		return list.RemoveAll(step.Values...)
	}),
	"retain-all": boolOp(func(list *datastruct.ArrayList[string], step Step) bool {
		return list.RetainAll(step.Values...)
	}),
	"contains-all": boolOp(func(list *datastruct.ArrayList[string], step Step) bool {
		return list.ContainsAll(step.Values...)
	}),
	"clear": func(list *datastruct.ArrayList[string], step Step) (string, error) {
		list.Clear()
		return "", nil
	},
	"len": intOp(func(list *datastruct.ArrayList[string], step Step) int {
		return list.Len()
	}),
	"is-empty": boolOp(func(list *datastruct.ArrayList[string], step Step) bool {
		return list.IsEmpty()
	}),
	"slice": func(list *datastruct.ArrayList[string], step Step) (string, error) {
		return fmt.Sprint(list.ToSlice()), nil
	},
	"string": func(list *datastruct.ArrayList[string], step Step) (string, error) {
		return list.String(), nil
	},
}

// Growth returns the capacity of a list after each of n appends.
// A negative capacity starts from a lazily allocated list.
func Growth(capacity, n int) ([]int, error) {
	list, err := Runner{InitialCapacity: capacity}.makeList(Script{})
	if err != nil {
		return nil, err
	}
	caps := make([]int, 0, n)
	for i := 0; i < n; i++ {
		list.Add(strconv.Itoa(i))
		caps = append(caps, list.Cap())
	}
	return caps, nil
}
