// Package runner transforms batches of source files through the transform
// cache with bounded parallelism.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Transformer is the part of the transformer the runner drives.
type Transformer interface {
	CanCompile(filename string, cfg domain.FrameworkConfig) bool
	GetCacheKey(source, filename, configString string, opts domain.CacheKeyOptions) (string, error)
	Process(ctx context.Context, source, filename string, cfg domain.FrameworkConfig, opts domain.TransformOptions) (string, error)
}

// Options controls one batch run.
type Options struct {
	// Files are the source files to transform.
	Files []string
	// Config is the framework configuration passed to every transform.
	Config domain.FrameworkConfig
	// ConfigString is the serialized framework configuration used in cache keys.
	ConfigString string
	// Instrument enables coverage instrumentation.
	Instrument bool
	// OutDir receives the output tree, mirrored relative to Config.RootDir.
	// When empty, nothing is written.
	OutDir string
	// Jobs bounds the number of files processed at once. Zero means GOMAXPROCS.
	Jobs int
	// Force bypasses cache reads. Fresh output is still stored.
	Force bool
}

// Runner executes batch transforms.
type Runner struct {
	transformer Transformer
	fs          ports.FileSystem
	store       ports.TransformStore
	telemetry   ports.Telemetry
	logger      ports.Logger

	mu     sync.RWMutex
	status map[string]domain.FileStatus
}

// New creates a new Runner.
func New(
	transformer Transformer,
	fs ports.FileSystem,
	store ports.TransformStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		transformer: transformer,
		fs:          fs,
		store:       store,
		telemetry:   telemetry,
		logger:      logger,
		status:      make(map[string]domain.FileStatus),
	}
}

// Status returns the last known status of filename.
func (r *Runner) Status(filename string) domain.FileStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.status[filename]; ok {
		return st
	}
	return domain.FileStatusPending
}

func (r *Runner) setStatus(filename string, st domain.FileStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[filename] = st
}

// Run transforms every file in opts.Files. Results are returned in input
// order. A failing file does not stop the others; the returned error joins
// ErrRunFailed with every per-file error.
func (r *Runner) Run(ctx context.Context, opts Options) ([]domain.FileResult, error) {
	if len(opts.Files) == 0 {
		return nil, domain.ErrNoSources
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, f := range opts.Files {
		r.setStatus(f, domain.FileStatusPending)
	}

	results := make([]domain.FileResult, len(opts.Files))
	g := new(errgroup.Group)
	g.SetLimit(jobs)

	for i, filename := range opts.Files {
		if ctx.Err() != nil {
			results[i] = domain.FileResult{Filename: filename, Status: domain.FileStatusPending}
			continue
		}
		g.Go(func() error {
			results[i] = r.runFile(ctx, filename, opts)
			r.setStatus(filename, results[i].Status)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return results, errors.Join(append([]error{domain.ErrRunFailed}, errs...)...)
	}
	return results, nil
}

func (r *Runner) runFile(ctx context.Context, filename string, opts Options) (res domain.FileResult) {
	rel := relativeName(opts.Config.RootDir, filename)
	ctx, vertex := r.telemetry.Record(ctx, rel)
	res = domain.FileResult{Filename: filename, Status: domain.FileStatusPending}
	defer func() {
		vertex.Complete(res.Err)
	}()

	fail := func(err error) domain.FileResult {
		res.Status = domain.FileStatusFailed
		res.Err = err
		return res
	}

	src, err := r.fs.ReadFile(filename)
	if err != nil {
		return fail(zerr.With(errors.Join(domain.ErrSourceReadFailed, err), "filename", filename))
	}
	source := string(src)

	var code string
	switch {
	case !r.transformer.CanCompile(filename, opts.Config):
		code = source
		res.Status = domain.FileStatusPassthrough
	default:
		code, res.Status, err = r.transform(ctx, vertex, source, filename, rel, opts)
		if err != nil {
			return fail(err)
		}
	}

	res.Code = code
	if opts.OutDir != "" {
		out, err := writeOutput(opts.OutDir, rel, code)
		if err != nil {
			return fail(zerr.With(errors.Join(domain.ErrOutputWriteFailed, err), "filename", filename))
		}
		res.Output = out
	}
	return res
}

func (r *Runner) transform(
	ctx context.Context,
	vertex ports.Vertex,
	source, filename, rel string,
	opts Options,
) (string, domain.FileStatus, error) {
	key, err := r.transformer.GetCacheKey(source, filename, opts.ConfigString, domain.CacheKeyOptions{
		Instrument: opts.Instrument,
		RootDir:    opts.Config.RootDir,
	})
	if err != nil {
		return "", domain.FileStatusFailed, err
	}

	if !opts.Force {
		rec, err := r.store.Get(key)
		switch {
		case err != nil:
			r.logger.Warn(fmt.Sprintf("ignoring unreadable cache entry for %s: %v", rel, err))
		case rec != nil:
			vertex.Cached()
			return rec.Code, domain.FileStatusCached, nil
		}
	}

	code, err := r.transformer.Process(ctx, source, filename, opts.Config, domain.TransformOptions{
		Instrument: opts.Instrument,
	})
	if err != nil {
		return "", domain.FileStatusFailed, err
	}

	if err := r.store.Put(domain.TransformRecord{
		Key:      key,
		Filename: rel,
		Code:     code,
	}); err != nil {
		r.logger.Warn(fmt.Sprintf("failed to cache %s: %v", rel, err))
	}
	return code, domain.FileStatusTransformed, nil
}

// writeOutput writes code to outDir/rel and returns the written path.
func writeOutput(outDir, rel, code string) (string, error) {
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", zerr.With(zerr.New("source is outside the root directory"), "path", rel)
	}
	dst := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, []byte(code), 0o600); err != nil {
		return "", err
	}
	return dst, nil
}

func relativeName(rootDir, filename string) string {
	if rootDir == "" {
		return filepath.ToSlash(filename)
	}
	rel, err := filepath.Rel(rootDir, filename)
	if err != nil {
		return filepath.ToSlash(filename)
	}
	return filepath.ToSlash(rel)
}
