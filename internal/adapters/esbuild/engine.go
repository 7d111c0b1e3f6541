// Package esbuild provides an in-process transform engine backed by esbuild.
package esbuild

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.TransformEngine = (*Engine)(nil)
	_ ports.Instrumenter    = (*Engine)(nil)
)

var targets = map[string]api.Target{
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"esnext": api.ESNext,
}

var formats = map[string]api.Format{
	"cjs":  api.FormatCommonJS,
	"esm":  api.FormatESModule,
	"iife": api.FormatIIFE,
}

// Engine transforms sources with esbuild. It understands filename,
// sourceMaps, compact, ignore and only. Presets and plugins cannot run
// inside esbuild; each distinct one is reported once.
type Engine struct {
	target api.Target
	format api.Format
	logger ports.Logger

	mu     sync.Mutex
	warned map[string]bool
}

// NewEngine creates an Engine for the configured target and module format.
func NewEngine(settings domain.EngineSettings, logger ports.Logger) (*Engine, error) {
	target, ok := targets[strings.ToLower(settings.Target)]
	if !ok {
		return nil, zerr.With(zerr.New("unsupported esbuild target"), "target", settings.Target)
	}
	format, ok := formats[strings.ToLower(settings.Format)]
	if !ok {
		return nil, zerr.With(zerr.New("unsupported esbuild format"), "format", settings.Format)
	}
	return &Engine{
		target: target,
		format: format,
		logger: logger,
		warned: make(map[string]bool),
	}, nil
}

// CanCompile reports whether filename has a compilable extension.
func (e *Engine) CanCompile(filename string, altExts []string) bool {
	return domain.CanCompile(filename, altExts)
}

// Transform compiles source. It returns nil when the ignore or only
// options exclude the file.
func (e *Engine) Transform(ctx context.Context, source string, opts domain.Options) (*domain.TransformResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filename := opts.String(domain.OptFilename)
	if excluded(filename, opts) {
		return nil, nil
	}

	e.reportUnsupported(opts)

	compact, _ := opts.Bool(domain.OptCompact)
	result := api.Transform(source, api.TransformOptions{
		Sourcefile:       filename,
		Loader:           loaderFor(filename),
		Sourcemap:        sourceMapMode(opts[domain.OptSourceMaps]),
		MinifyWhitespace: compact,
		Target:           e.target,
		Format:           e.format,
	})

	if len(result.Errors) > 0 {
		msgs := make([]string, len(result.Errors))
		for i, m := range result.Errors {
			msgs[i] = formatMessage(m)
		}
		err := zerr.Wrap(domain.ErrTransformFailed, strings.Join(msgs, "\n"))
		return nil, zerr.With(err, "filename", filename)
	}

	return &domain.TransformResult{
		Code: string(result.Code),
		Map:  string(result.Map),
	}, nil
}

func (e *Engine) reportUnsupported(opts domain.Options) {
	if e.logger == nil {
		return
	}

	var names []string
	for _, key := range []string{domain.OptPresets, domain.OptPlugins} {
		for _, entry := range opts.List(key) {
			if name := entryName(entry); name != "" && name != domain.MandatoryPreset {
				names = append(names, key+":"+name)
			}
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, name := range names {
		if e.warned[name] {
			continue
		}
		e.warned[name] = true
		kind, n, _ := strings.Cut(name, ":")
		e.logger.Warn(fmt.Sprintf("esbuild engine ignores %s %q", strings.TrimSuffix(kind, "s"), n))
	}
}

// CanInstrument reports false: esbuild cannot run the coverage plugin.
func (e *Engine) CanInstrument() bool {
	return false
}

// entryName returns the name of a preset or plugin given as "name" or ["name", options].
func entryName(entry any) string {
	switch v := entry.(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			name, _ := v[0].(string)
			return name
		}
	}
	return ""
}

func excluded(filename string, opts domain.Options) bool {
	if filename == "" {
		return false
	}
	for _, pattern := range opts.Strings(domain.OptIgnore) {
		if matches(pattern, filename) {
			return true
		}
	}
	only := opts.Strings(domain.OptOnly)
	if len(only) == 0 {
		return false
	}
	for _, pattern := range only {
		if matches(pattern, filename) {
			return false
		}
	}
	return true
}

// matches tests pattern against the full path, the base name and every
// directory component of filename.
func matches(pattern, filename string) bool {
	slashed := filepath.ToSlash(filename)
	if ok, _ := filepath.Match(pattern, slashed); ok {
		return true
	}
	for _, part := range strings.Split(slashed, "/") {
		if ok, _ := filepath.Match(pattern, part); ok {
			return true
		}
	}
	return false
}

func loaderFor(filename string) api.Loader {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ts", ".mts", ".cts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	default:
		return api.LoaderJSX
	}
}

func sourceMapMode(v any) api.SourceMap {
	switch m := v.(type) {
	case bool:
		if m {
			return api.SourceMapExternal
		}
	case string:
		switch m {
		case domain.SourceMapsBoth:
			return api.SourceMapInlineAndExternal
		case "inline":
			return api.SourceMapInline
		case "true":
			return api.SourceMapExternal
		}
	}
	return api.SourceMapNone
}

func formatMessage(m api.Message) string {
	if m.Location == nil {
		return m.Text
	}
	return fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text)
}
