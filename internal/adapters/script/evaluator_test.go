package script_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nest/internal/adapters/script"
)

func TestEvaluator_Evaluate(t *testing.T) {
	env := func() []string { return []string{"NODE_ENV=test", "BROKEN"} }
	e := script.NewEvaluator(script.WithEnviron(env))

	tests := []struct {
		name     string
		src      string
		expected any
	}{
		{
			name:     "ModuleExports",
			src:      `module.exports = { presets: ["env"], plugins: [] };`,
			expected: map[string]any{"presets": []any{"env"}, "plugins": []any{}},
		},
		{
			name:     "ExportsProperty",
			src:      `exports.presets = ["react"];`,
			expected: map[string]any{"presets": []any{"react"}},
		},
		{
			name:     "ProcessEnv",
			src:      `module.exports = { env: process.env.NODE_ENV };`,
			expected: map[string]any{"env": "test"},
		},
		{
			name:     "Dirname",
			src:      `module.exports = { dir: __dirname };`,
			expected: map[string]any{"dir": "/proj"},
		},
		{
			name:     "FunctionsDroppedLikeJSONStringify",
			src:      `module.exports = { plugins: ["a", function () {}], fn: function () {}, u: undefined, n: 1 };`,
			expected: map[string]any{"plugins": []any{"a", nil}, "n": float64(1)},
		},
		{
			name:     "NullExport",
			src:      `module.exports = null;`,
			expected: nil,
		},
		{
			name:     "UndefinedExport",
			src:      `module.exports = undefined;`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Evaluate("/proj/.babelrc.js", []byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluator_Evaluate_Errors(t *testing.T) {
	t.Run("Throws", func(t *testing.T) {
		_, err := script.NewEvaluator().Evaluate("/proj/.babelrc.js", []byte(`throw new Error("boom");`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("SyntaxError", func(t *testing.T) {
		_, err := script.NewEvaluator().Evaluate("/proj/.babelrc.js", []byte(`module.exports = {`))
		require.Error(t, err)
	})

	t.Run("NoRequire", func(t *testing.T) {
		_, err := script.NewEvaluator().Evaluate("/proj/.babelrc.js", []byte(`module.exports = require("x");`))
		require.Error(t, err)
	})

	t.Run("CyclicExport", func(t *testing.T) {
		_, err := script.NewEvaluator().Evaluate("/proj/.babelrc.js", []byte(`const o = {}; o.self = o; module.exports = o;`))
		require.Error(t, err)
	})

	t.Run("Timeout", func(t *testing.T) {
		e := script.NewEvaluator(script.WithTimeout(50 * time.Millisecond))
		_, err := e.Evaluate("/proj/.babelrc.js", []byte(`for (;;) {}`))
		require.Error(t, err)
	})
}

func TestEvaluator_IsolatedRuntimes(t *testing.T) {
	e := script.NewEvaluator()

	_, err := e.Evaluate("/a/.babelrc.js", []byte(`globalThis.leaked = 1; module.exports = {};`))
	require.NoError(t, err)

	got, err := e.Evaluate("/b/.babelrc.js", []byte(`module.exports = { leaked: typeof leaked };`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"leaked": "undefined"}, got)
}
