package app

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/zerr"
)

// Serve protocol methods.
const (
	MethodGetCacheKey   = "getCacheKey"
	MethodProcess       = "process"
	MethodCanInstrument = "canInstrument"
)

// maxRequestSize bounds one request line.
const maxRequestSize = 64 << 20

type request struct {
	ID        int64                   `json:"id"`
	Method    string                  `json:"method"`
	Source    string                  `json:"source"`
	Filename  string                  `json:"filename"`
	Config    *string                 `json:"config"`
	Options   requestOptions          `json:"options"`
	Framework *domain.FrameworkConfig `json:"framework"`
}

type requestOptions struct {
	Instrument bool   `json:"instrument"`
	RootDir    string `json:"rootDir"`
}

type response struct {
	ID     int64  `json:"id"`
	Result any    `json:"result,omitzero"`
	Error  string `json:"error,omitempty"`
}

// Serve answers transform requests read from r, one JSON object per line,
// writing one response line to w per request. It returns when r is
// exhausted or ctx is done. A failing request does not stop the loop.
func (a *App) Serve(ctx context.Context, configPath string, r io.Reader, w io.Writer) error {
	session, err := a.Load(configPath)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var resp response
		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			resp = response{Error: zerr.Wrap(err, "malformed request").Error()}
		} else {
			resp = session.handle(ctx, req)
		}

		if err := enc.Encode(resp); err != nil {
			return zerr.Wrap(err, "failed to write response")
		}
	}

	if err := scanner.Err(); err != nil {
		return zerr.Wrap(err, "failed to read request")
	}
	return nil
}

func (s *Session) handle(ctx context.Context, req request) response {
	resp := response{ID: req.ID}

	var (
		result any
		err    error
	)
	switch req.Method {
	case MethodGetCacheKey:
		config := s.Settings.ConfigDescriptor
		if req.Config != nil {
			config = *req.Config
		}
		rootDir := req.Options.RootDir
		if rootDir == "" {
			rootDir = s.Settings.RootDir
		}
		result, err = s.Transformer.GetCacheKey(req.Source, req.Filename, config, domain.CacheKeyOptions{
			Instrument: req.Options.Instrument,
			RootDir:    rootDir,
		})
	case MethodProcess:
		cfg := s.Settings.FrameworkConfig()
		if req.Framework != nil {
			cfg = *req.Framework
		}
		result, err = s.Transformer.ProcessRequest(ctx, domain.TransformRequest{
			Source:   req.Source,
			Filename: req.Filename,
			Config:   cfg,
			Options:  domain.TransformOptions{Instrument: req.Options.Instrument},
		})
	case MethodCanInstrument:
		result = s.Transformer.CanInstrument()
	default:
		err = zerr.With(zerr.Wrap(domain.ErrUnknownMethod, "unsupported request"), "method", req.Method)
	}

	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Result = result
	return resp
}
