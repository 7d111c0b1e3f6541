// Package shell provides a transform engine that delegates to an external
// program, for example a Node.js bridge around a JavaScript compiler.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.TransformEngine = (*Engine)(nil)
	_ ports.Instrumenter    = (*Engine)(nil)
)

// waitDelay bounds how long output pipes are drained after the process is killed.
const waitDelay = 2 * time.Second

// request is written as a single JSON document to the program's stdin.
type request struct {
	Source  string         `json:"source"`
	Options domain.Options `json:"options"`
}

// response is read from the program's stdout. A null code means the
// program chose to skip the file.
type response struct {
	Code  *string `json:"code"`
	Map   any     `json:"map,omitempty"`
	Error string  `json:"error,omitempty"`
}

// Engine runs one process per transform.
type Engine struct {
	command []string
	env     map[string]string
	logger  ports.Logger
}

// NewEngine creates an Engine for the configured argv.
func NewEngine(settings domain.EngineSettings, logger ports.Logger) (*Engine, error) {
	if len(settings.Command) == 0 {
		return nil, domain.ErrEngineCommandMissing
	}
	return &Engine{
		command: settings.Command,
		env:     settings.Env,
		logger:  logger,
	}, nil
}

// CanCompile reports whether filename has a compilable extension.
func (e *Engine) CanCompile(filename string, altExts []string) bool {
	return domain.CanCompile(filename, altExts)
}

// CanInstrument reports true: the external engine receives the coverage
// plugin with the rest of the options.
func (e *Engine) CanInstrument() bool {
	return true
}

// Transform sends source and opts to the program and returns its output.
// The program is killed when ctx is cancelled.
func (e *Engine) Transform(ctx context.Context, source string, opts domain.Options) (*domain.TransformResult, error) {
	filename := opts.String(domain.OptFilename)

	payload, err := json.Marshal(request{Source: source, Options: opts})
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrTransformFailed, err), "filename", filename)
	}

	name := e.command[0]
	args := e.command[1:]

	cmdEnv := resolveEnvironment(os.Environ(), e.env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Env = cmdEnv
	cmd.WaitDelay = waitDelay
	cmd.Stdin = bytes.NewReader(payload)

	var stdout bytes.Buffer
	stderr := newLogWriter(ctx, e.logger)
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	stderr.Flush()
	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err := zerr.With(errors.Join(domain.ErrEngineCommandFailed, runErr), "exit_code", exitCode)
		return nil, zerr.With(err, "filename", filename)
	}

	var resp response
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrEngineProtocol, err), "filename", filename)
	}

	if resp.Error != "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrTransformFailed, resp.Error), "filename", filename)
	}

	if resp.Code == nil {
		return nil, nil
	}

	return &domain.TransformResult{Code: *resp.Code, Map: encodeMap(resp.Map)}, nil
}

// encodeMap accepts the source map either as a JSON string or as an object.
func encodeMap(v any) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	default:
		data, err := json.Marshal(m)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// logWriter forwards complete stderr lines to the logger and, when the
// context carries a vertex, to its stderr stream.
type logWriter struct {
	logger ports.Logger
	vertex ports.Vertex
	buf    bytes.Buffer
}

func newLogWriter(ctx context.Context, logger ports.Logger) *logWriter {
	w := &logWriter{logger: logger}
	if v, ok := ports.VertexFromContext(ctx); ok {
		w.vertex = v
	}
	return w
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Incomplete line, keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}

// Flush emits a trailing line without newline, if any.
func (w *logWriter) Flush() {
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	if line == "" {
		return
	}
	if w.logger != nil {
		w.logger.Warn(line)
	}
	if w.vertex != nil {
		_, _ = w.vertex.Stderr().Write([]byte(line + "\n"))
	}
}
