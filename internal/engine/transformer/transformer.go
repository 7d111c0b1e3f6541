// Package transformer derives cache keys for source files and forwards
// transforms to the configured engine with the merged configuration.
package transformer

import (
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"path/filepath"

	"go.trai.ch/nest/internal/build"
	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

// selfSource is hashed into every cache key.
//
//go:embed transformer.go
var selfSource []byte

// Transformer is the entry point used by the host framework.
// Its resolver cache lives as long as the Transformer.
type Transformer struct {
	resolver ports.ConfigResolver
	engine   ports.TransformEngine
	fixed    domain.Options
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithOptions makes the Transformer use opts verbatim instead of resolving
// configuration from the directory tree. A nil map keeps resolution on.
func WithOptions(opts domain.Options) Option {
	return func(t *Transformer) {
		t.fixed = opts
	}
}

// New creates a Transformer.
func New(resolver ports.ConfigResolver, engine ports.TransformEngine, opts ...Option) *Transformer {
	t := &Transformer{
		resolver: resolver,
		engine:   engine,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CanInstrument reports whether Process honors TransformOptions.Instrument.
// It follows the engine when the engine implements ports.Instrumenter.
func (t *Transformer) CanInstrument() bool {
	if i, ok := t.engine.(ports.Instrumenter); ok {
		return i.CanInstrument()
	}
	return true
}

// CanCompile reports whether Process hands filename to the engine.
func (t *Transformer) CanCompile(filename string, cfg domain.FrameworkConfig) bool {
	return t.engine.CanCompile(filename, cfg.AltExtensions())
}

// GetCacheKey returns the hex SHA-256 of, NUL separated and in order:
// the transformer identity, source, filename relative to RootDir,
// configString, the JSON of the options Process would use, and the
// instrument marker.
func (t *Transformer) GetCacheKey(source, filename, configString string, opts domain.CacheKeyOptions) (string, error) {
	resolved, err := t.options(filename)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrCacheKeyFailed, err), "filename", filename)
	}

	encoded, err := json.Marshal(resolved)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrCacheKeyFailed, err), "filename", filename)
	}

	instrument := ""
	if opts.Instrument {
		instrument = domain.InstrumentMarker
	}

	h := sha256.New()
	for _, part := range [][]byte{
		identity(),
		[]byte(source),
		[]byte(relativePath(opts.RootDir, filename)),
		[]byte(configString),
		encoded,
		[]byte(instrument),
	} {
		_, _ = h.Write(part)
		_, _ = h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Process transforms source. Files the engine cannot compile, and files
// the engine skips, are returned unchanged.
func (t *Transformer) Process(
	ctx context.Context,
	source, filename string,
	cfg domain.FrameworkConfig,
	opts domain.TransformOptions,
) (string, error) {
	if !t.CanCompile(filename, cfg) {
		return source, nil
	}

	base, err := t.options(filename)
	if err != nil {
		return "", err
	}

	res, err := t.engine.Transform(ctx, source, mergeOptions(base, filename, cfg, opts))
	if err != nil {
		if !errors.Is(err, domain.ErrTransformFailed) {
			err = errors.Join(domain.ErrTransformFailed, err)
		}
		return "", zerr.With(err, "filename", filename)
	}

	if res == nil {
		return source, nil
	}
	return res.Code, nil
}

// ProcessRequest is Process for a bundled request.
func (t *Transformer) ProcessRequest(ctx context.Context, req domain.TransformRequest) (string, error) {
	return t.Process(ctx, req.Source, req.Filename, req.Config, req.Options)
}

// Options returns the configuration Process would start from for filename.
func (t *Transformer) Options(filename string) (domain.Options, error) {
	opts, err := t.options(filename)
	if err != nil {
		return nil, err
	}
	return opts.Clone(), nil
}

func (t *Transformer) options(filename string) (domain.Options, error) {
	if t.fixed != nil {
		return t.fixed, nil
	}
	return t.resolver.Resolve(filename)
}

// mergeOptions never mutates base.
func mergeOptions(base domain.Options, filename string, cfg domain.FrameworkConfig, opts domain.TransformOptions) domain.Options {
	merged := base.Clone()
	delete(merged, domain.OptCacheDirectory)

	plugins := base.List(domain.OptPlugins)
	if plugins == nil {
		plugins = []any{}
	}
	presets := append(base.List(domain.OptPresets), domain.MandatoryPreset)

	if opts.Instrument {
		merged[domain.OptAuxiliaryCommentBefore] = domain.InstrumentComment
		plugins = append(plugins, []any{
			domain.InstrumentPlugin,
			map[string]any{
				"cwd":     cfg.RootDir,
				"exclude": []any{},
			},
		})
	}

	merged[domain.OptFilename] = filename
	merged[domain.OptCompact] = false
	merged[domain.OptPlugins] = plugins
	merged[domain.OptPresets] = presets
	merged[domain.OptSourceMaps] = domain.SourceMapsBoth

	return merged
}

func identity() []byte {
	id := make([]byte, 0, len(selfSource)+len(build.Version)+1)
	id = append(id, selfSource...)
	id = append(id, 0)
	return append(id, build.Version...)
}

func relativePath(rootDir, filename string) string {
	if rootDir == "" {
		return filepath.ToSlash(filename)
	}
	rel, err := filepath.Rel(rootDir, filename)
	if err != nil {
		return filepath.ToSlash(filename)
	}
	return filepath.ToSlash(rel)
}
