// Package script evaluates script configuration files with an embedded
// JavaScript runtime.
package script

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dop251/goja"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTimeout bounds a single evaluation.
const DefaultTimeout = 5 * time.Second

var _ ports.ScriptEvaluator = (*Evaluator)(nil)

// Evaluator runs CommonJS-style configuration scripts in a fresh goja
// runtime and returns the value assigned to module.exports.
//
// The runtime exposes module, exports, __filename, __dirname and
// process.env. There is no require.
type Evaluator struct {
	timeout time.Duration
	environ func() []string
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Evaluator) {
		e.timeout = d
	}
}

// WithEnviron overrides the source of process.env.
func WithEnviron(environ func() []string) Option {
	return func(e *Evaluator) {
		e.environ = environ
	}
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		timeout: DefaultTimeout,
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs src and returns the exported value converted to Go values
// the way JSON.stringify sees it: functions and undefined are dropped from
// objects and become null in arrays. A missing, undefined or null export
// yields nil. A function export is returned as is.
func (e *Evaluator) Evaluate(path string, src []byte) (any, error) {
	vm := goja.New()

	module := vm.NewObject()
	exports := vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, zerr.Wrap(err, "failed to prepare module object")
	}

	globals := map[string]any{
		"module":     module,
		"exports":    exports,
		"__filename": path,
		"__dirname":  filepath.Dir(path),
		"process":    e.process(vm),
	}
	for name, value := range globals {
		if err := vm.Set(name, value); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to set global"), "name", name)
		}
	}

	if e.timeout > 0 {
		timer := time.AfterFunc(e.timeout, func() {
			vm.Interrupt("evaluation timed out")
		})
		defer timer.Stop()
	}

	if _, err := vm.RunScript(path, string(src)); err != nil {
		return nil, zerr.Wrap(err, "script threw")
	}

	value := module.Get("exports")
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil, nil
	}
	if _, ok := goja.AssertFunction(value); ok {
		return value.Export(), nil
	}
	return exportJSON(vm, value)
}

func exportJSON(vm *goja.Runtime, value goja.Value) (any, error) {
	stringify, ok := goja.AssertFunction(vm.Get("JSON").ToObject(vm).Get("stringify"))
	if !ok {
		return nil, zerr.New("JSON.stringify is not available")
	}

	encoded, err := stringify(goja.Undefined(), value)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to serialize exports")
	}
	if goja.IsUndefined(encoded) {
		return nil, nil
	}

	var out any
	if err := json.Unmarshal([]byte(encoded.String()), &out); err != nil {
		return nil, zerr.Wrap(err, "failed to decode exports")
	}
	return out, nil
}

func (e *Evaluator) process(vm *goja.Runtime) *goja.Object {
	env := vm.NewObject()
	for _, kv := range e.environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			_ = env.Set(key, value)
		}
	}

	process := vm.NewObject()
	_ = process.Set("env", env)
	return process
}
