package esbuild_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nest/internal/adapters/esbuild"
	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newEngine(t *testing.T) (*esbuild.Engine, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	engine, err := esbuild.NewEngine(domain.EngineSettings{Target: "es2020", Format: "cjs"}, logger)
	require.NoError(t, err)
	return engine, logger
}

func TestEngine_Transform(t *testing.T) {
	engine, _ := newEngine(t)

	res, err := engine.Transform(context.Background(), "export const answer = 42;\n", domain.Options{
		domain.OptFilename:   "/proj/src/answer.js",
		domain.OptSourceMaps: domain.SourceMapsBoth,
		domain.OptPresets:    []any{domain.MandatoryPreset},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Contains(t, res.Code, "answer")
	assert.Contains(t, res.Code, "module.exports")
	assert.Contains(t, res.Code, "sourceMappingURL=data:")
	assert.NotEmpty(t, res.Map)
}

func TestEngine_Transform_Loaders(t *testing.T) {
	engine, _ := newEngine(t)

	tests := []struct {
		filename string
		source   string
	}{
		{"/p/a.ts", "const n: number = 1; export default n;"},
		{"/p/a.tsx", "export const A = () => <div />;"},
		{"/p/a.jsx", "export const A = () => <div />;"},
		{"/p/a.js", "export const A = () => <div />;"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			res, err := engine.Transform(context.Background(), tt.source, domain.Options{domain.OptFilename: tt.filename})
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.NotContains(t, res.Code, ": number")
			assert.NotContains(t, res.Code, "<div")
		})
	}
}

func TestEngine_Transform_SyntaxError(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.Transform(context.Background(), "let = ;", domain.Options{domain.OptFilename: "/p/bad.js"})
	require.ErrorIs(t, err, domain.ErrTransformFailed)
	assert.Contains(t, err.Error(), "/p/bad.js")
}

func TestEngine_Transform_IgnoreAndOnly(t *testing.T) {
	engine, _ := newEngine(t)

	tests := []struct {
		name    string
		opts    domain.Options
		skipped bool
	}{
		{"IgnoredDir", domain.Options{domain.OptIgnore: []any{"vendor"}}, true},
		{"IgnoredGlob", domain.Options{domain.OptIgnore: []any{"*.js"}}, true},
		{"NotIgnored", domain.Options{domain.OptIgnore: []any{"other"}}, false},
		{"OnlyMatches", domain.Options{domain.OptOnly: []any{"vendor"}}, false},
		{"OnlyMisses", domain.Options{domain.OptOnly: []any{"src"}}, true},
		{"OnlyAsString", domain.Options{domain.OptOnly: "src"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts.Clone()
			opts[domain.OptFilename] = "/proj/vendor/lib.js"

			res, err := engine.Transform(context.Background(), "var a = 1;", opts)
			require.NoError(t, err)
			if tt.skipped {
				assert.Nil(t, res)
			} else {
				assert.NotNil(t, res)
			}
		})
	}
}

func TestEngine_Transform_WarnsOncePerEntry(t *testing.T) {
	engine, logger := newEngine(t)

	logger.EXPECT().Warn(`esbuild engine ignores preset "env"`).Times(1)
	logger.EXPECT().Warn(`esbuild engine ignores plugin "babel-plugin-istanbul"`).Times(1)

	opts := domain.Options{
		domain.OptFilename: "/p/a.js",
		domain.OptPresets:  []any{"env", domain.MandatoryPreset},
		domain.OptPlugins:  []any{[]any{domain.InstrumentPlugin, map[string]any{"cwd": "/p"}}},
	}
	for range 3 {
		_, err := engine.Transform(context.Background(), "var a = 1;", opts)
		require.NoError(t, err)
	}
}

func TestEngine_CanInstrument(t *testing.T) {
	engine, _ := newEngine(t)
	assert.False(t, engine.CanInstrument())
}

func TestEngine_Transform_Cancelled(t *testing.T) {
	engine, _ := newEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Transform(ctx, "var a = 1;", domain.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewEngine_Invalid(t *testing.T) {
	_, err := esbuild.NewEngine(domain.EngineSettings{Target: "es3", Format: "cjs"}, nil)
	require.Error(t, err)

	_, err = esbuild.NewEngine(domain.EngineSettings{Target: "es2020", Format: "amd"}, nil)
	require.Error(t, err)
}
