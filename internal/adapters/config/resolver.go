// Package config provides nearest-ancestor transform configuration discovery
// and the loader for nest's own settings.
package config

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigResolver = (*Resolver)(nil)

// Resolver finds the configuration that applies to a file by walking its
// ancestor directories. Every directory visited by a walk is memoized, so a
// later lookup from the same subtree stops at the first cached directory.
//
// A nil map stored in the cache means "no configuration up to the root".
type Resolver struct {
	fs     ports.FileSystem
	script ports.ScriptEvaluator

	mu    sync.Mutex
	cache map[string]domain.Options
}

// NewResolver creates a Resolver with an empty cache.
func NewResolver(fs ports.FileSystem, script ports.ScriptEvaluator) *Resolver {
	return &Resolver{
		fs:     fs,
		script: script,
		cache:  make(map[string]domain.Options),
	}
}

// Resolve returns the configuration of the nearest ancestor directory of
// filename that has one, or an empty map if none does. The result is a copy
// the caller may modify.
func (r *Resolver) Resolve(filename string) (domain.Options, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "filename", filename)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		visited []string
		found   domain.Options
	)

	dir := filepath.Dir(abs)
	for {
		if cached, ok := r.cache[dir]; ok {
			found = cached
			break
		}
		visited = append(visited, dir)

		opts, ok, err := r.lookup(dir)
		if err != nil {
			return nil, err
		}
		if ok {
			found = opts
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	for _, d := range visited {
		r.cache[d] = found
	}

	if found == nil {
		return domain.Options{}, nil
	}
	return found.DeepClone(), nil
}

// lookup checks dir for a configuration source in priority order.
// ok is false when dir defers to its parent.
func (r *Resolver) lookup(dir string) (opts domain.Options, ok bool, err error) {
	if path := filepath.Join(dir, domain.BabelrcFileName); r.fs.Exists(path) {
		opts, err := r.readBabelrc(path)
		return opts, err == nil, err
	}

	if path := filepath.Join(dir, domain.BabelrcJSFileName); r.fs.Exists(path) {
		opts, err := r.evalBabelrcJS(path)
		return opts, err == nil, err
	}

	if path := filepath.Join(dir, domain.PackageJSONFileName); r.fs.Exists(path) {
		return r.readManifest(path)
	}

	return nil, false, nil
}

func (r *Resolver) readBabelrc(path string) (domain.Options, error) {
	data, err := r.read(path)
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	opts, ok := toOptions(value)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "config is not an object"), "path", path)
	}
	return opts, nil
}

func (r *Resolver) evalBabelrcJS(path string) (domain.Options, error) {
	data, err := r.read(path)
	if err != nil {
		return nil, err
	}

	value, err := r.script.Evaluate(path, data)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrScriptEvalFailed, err), "path", path)
	}

	opts, ok := toOptions(value)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrScriptEvalFailed, "export is not an object"), "path", path)
	}
	return opts, nil
}

func (r *Resolver) readManifest(path string) (domain.Options, bool, error) {
	data, err := r.read(path)
	if err != nil {
		return nil, false, err
	}

	var manifest any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, false, zerr.With(errors.Join(domain.ErrManifestParseFailed, err), "path", path)
	}

	fields, isObject := manifest.(map[string]any)
	if !isObject {
		return nil, false, nil
	}

	value := fields[domain.ManifestConfigKey]
	if !truthy(value) {
		return nil, false, nil
	}

	opts, ok := toOptions(value)
	if !ok {
		return nil, false, zerr.With(zerr.Wrap(domain.ErrManifestParseFailed, "babel key is not an object"), "path", path)
	}
	return opts, true, nil
}

func (r *Resolver) read(path string) ([]byte, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}
	return data, nil
}

// toOptions converts a decoded JSON or script value to Options.
// A null value is an empty configuration.
func toOptions(value any) (domain.Options, bool) {
	switch v := value.(type) {
	case nil:
		return domain.Options{}, true
	case domain.Options:
		return v, true
	case map[string]any:
		return domain.Options(v), true
	default:
		return nil, false
	}
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}
