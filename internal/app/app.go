// Package app implements the application layer for nest.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/nest/internal/engine/runner"
	"go.trai.ch/nest/internal/engine/transformer"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic.
type App struct {
	settings  ports.SettingsLoader
	resolver  ports.ConfigResolver
	engines   ports.EngineFactory
	stores    ports.TransformStoreFactory
	collector ports.SourceCollector
	fs        ports.FileSystem
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	settings ports.SettingsLoader,
	resolver ports.ConfigResolver,
	engines ports.EngineFactory,
	stores ports.TransformStoreFactory,
	collector ports.SourceCollector,
	fs ports.FileSystem,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		settings:  settings,
		resolver:  resolver,
		engines:   engines,
		stores:    stores,
		collector: collector,
		fs:        fs,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Close flushes the progress recording.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// Session is a transformer built from one settings file.
type Session struct {
	Settings    domain.Settings
	Transformer *transformer.Transformer
}

// Load reads the settings at configPath and builds the transformer they describe.
func (a *App) Load(configPath string) (*Session, error) {
	settings, err := a.settings.Load(configPath)
	if err != nil {
		return nil, err
	}

	engine, err := a.engines.NewEngine(settings.Engine)
	if err != nil {
		return nil, err
	}

	return &Session{
		Settings:    settings,
		Transformer: transformer.New(a.resolver, engine, transformer.WithOptions(settings.FixedOptions())),
	}, nil
}

// RunOptions configures a batch run.
type RunOptions struct {
	ConfigPath string
	Paths      []string
	OutDir     string
	Force      bool
	Jobs       int
	Instrument bool
}

// Run transforms every source file below opts.Paths. Without an output
// directory, the output of a single file is written to stdout.
func (a *App) Run(ctx context.Context, opts RunOptions, stdout io.Writer) ([]domain.FileResult, error) {
	if len(opts.Paths) == 0 {
		return nil, domain.ErrNoSources
	}

	session, err := a.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	settings := session.Settings
	cfg := settings.FrameworkConfig()

	files, err := a.collect(session, opts.Paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoSources, "nothing to transform"), "paths", fmt.Sprint(opts.Paths))
	}

	store, err := a.stores.Open(absUnder(settings.RootDir, settings.CacheDir))
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs == 0 {
		jobs = settings.Jobs
	}

	outDir := opts.OutDir
	if outDir != "" {
		if outDir, err = filepath.Abs(outDir); err != nil {
			return nil, err
		}
	}

	r := runner.New(session.Transformer, a.fs, store, a.telemetry, a.logger)
	results, runErr := r.Run(ctx, runner.Options{
		Files:        files,
		Config:       cfg,
		ConfigString: settings.ConfigDescriptor,
		Instrument:   opts.Instrument || settings.Instrument,
		OutDir:       outDir,
		Jobs:         jobs,
		Force:        opts.Force,
	})
	a.logger.Info(summarize(results))

	if outDir == "" && len(results) == 1 && results[0].Err == nil {
		if _, err := io.WriteString(stdout, results[0].Code); err != nil {
			return results, errors.Join(runErr, zerr.Wrap(err, "failed to write output"))
		}
	}

	return results, runErr
}

// collect expands paths into source files. Files found by walking a
// directory are kept only when compilable, explicitly named files always are.
func (a *App) collect(session *Session, paths []string) ([]string, error) {
	settings := session.Settings
	cfg := settings.FrameworkConfig()

	explicit := make(map[string]bool)
	abs := make([]string, len(paths))
	for i, p := range paths {
		var err error
		if abs[i], err = filepath.Abs(p); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", p)
		}
		if info, err := os.Stat(abs[i]); err == nil && !info.IsDir() {
			explicit[abs[i]] = true
		}
	}

	found, err := a.collector.Collect(abs, []string{filepath.Base(settings.CacheDir)})
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(found))
	for _, f := range found {
		if explicit[f] || session.Transformer.CanCompile(f, cfg) {
			files = append(files, f)
		}
	}
	return files, nil
}

// Key returns the cache key the transformer derives for filename.
func (a *App) Key(configPath, filename string, instrument bool) (string, error) {
	session, err := a.Load(configPath)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", filename)
	}

	src, err := a.fs.ReadFile(abs)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrSourceReadFailed, err), "filename", abs)
	}

	settings := session.Settings
	return session.Transformer.GetCacheKey(string(src), abs, settings.ConfigDescriptor, domain.CacheKeyOptions{
		Instrument: instrument || settings.Instrument,
		RootDir:    settings.RootDir,
	})
}

// Resolve writes the configuration that applies to filename as YAML.
func (a *App) Resolve(configPath, filename string, w io.Writer) error {
	session, err := a.Load(configPath)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", filename)
	}

	opts, err := session.Transformer.Options(abs)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any(opts)); err != nil {
		return zerr.Wrap(err, "failed to encode options")
	}
	return enc.Close()
}

func summarize(results []domain.FileResult) string {
	counts := make(map[domain.FileStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return fmt.Sprintf("%d files: %d transformed, %d cached, %d passthrough, %d failed",
		len(results),
		counts[domain.FileStatusTransformed],
		counts[domain.FileStatusCached],
		counts[domain.FileStatusPassthrough],
		counts[domain.FileStatusFailed],
	)
}

func absUnder(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
