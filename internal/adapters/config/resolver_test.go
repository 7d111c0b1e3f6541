package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nest/internal/adapters/config"
	"go.trai.ch/nest/internal/adapters/fs"
	"go.trai.ch/nest/internal/adapters/script"
	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newResolver() *config.Resolver {
	return config.NewResolver(fs.NewFileSystem(), script.NewEvaluator())
}

func TestResolver_NearestAncestor(t *testing.T) {
	// root/
	//   .babelrc           {"presets":["root"]}
	//   a/
	//     .babelrc         {"presets":["a"]}
	//     deep/x.js
	//   b/
	//     y.js
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".babelrc"), `{"presets":["root"]}`)
	writeFile(t, filepath.Join(root, "a", ".babelrc"), `{"presets":["a"]}`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "deep"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b"), 0o750))

	r := newResolver()

	a, err := r.Resolve(filepath.Join(root, "a", "deep", "x.js"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, a.Strings(domain.OptPresets))

	b, err := r.Resolve(filepath.Join(root, "b", "y.js"))
	require.NoError(t, err)
	assert.Equal(t, []string{"root"}, b.Strings(domain.OptPresets), "sibling must not see a/.babelrc")

	top, err := r.Resolve(filepath.Join(root, "z.js"))
	require.NoError(t, err)
	assert.Equal(t, []string{"root"}, top.Strings(domain.OptPresets))
}

func TestResolver_Priority(t *testing.T) {
	root := t.TempDir()

	t.Run("BabelrcBeatsManifest", func(t *testing.T) {
		dir := filepath.Join(root, "rc")
		writeFile(t, filepath.Join(dir, ".babelrc"), `{"plugins":["from-rc"]}`)
		writeFile(t, filepath.Join(dir, "package.json"), `{"babel":{"plugins":["from-pkg"]}}`)

		opts, err := newResolver().Resolve(filepath.Join(dir, "x.js"))
		require.NoError(t, err)
		assert.Equal(t, []string{"from-rc"}, opts.Strings(domain.OptPlugins))
	})

	t.Run("BabelrcBeatsScript", func(t *testing.T) {
		dir := filepath.Join(root, "rcjs")
		writeFile(t, filepath.Join(dir, ".babelrc"), `{"plugins":["from-rc"]}`)
		writeFile(t, filepath.Join(dir, ".babelrc.js"), `module.exports = {plugins: ["from-js"]};`)

		opts, err := newResolver().Resolve(filepath.Join(dir, "x.js"))
		require.NoError(t, err)
		assert.Equal(t, []string{"from-rc"}, opts.Strings(domain.OptPlugins))
	})

	t.Run("ScriptBeatsManifest", func(t *testing.T) {
		dir := filepath.Join(root, "js")
		writeFile(t, filepath.Join(dir, ".babelrc.js"), `module.exports = {plugins: ["from-js"]};`)
		writeFile(t, filepath.Join(dir, "package.json"), `{"babel":{"plugins":["from-pkg"]}}`)

		opts, err := newResolver().Resolve(filepath.Join(dir, "x.js"))
		require.NoError(t, err)
		assert.Equal(t, []string{"from-js"}, opts.Strings(domain.OptPlugins))
	})

	t.Run("ManifestKey", func(t *testing.T) {
		dir := filepath.Join(root, "pkg")
		writeFile(t, filepath.Join(dir, "package.json"), `{"name":"x","babel":{"plugins":["from-pkg"]}}`)

		opts, err := newResolver().Resolve(filepath.Join(dir, "src", "x.js"))
		require.NoError(t, err)
		assert.Equal(t, []string{"from-pkg"}, opts.Strings(domain.OptPlugins))
	})
}

func TestResolver_ManifestTruthiness(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		match    bool
	}{
		{"Missing", `{"name":"x"}`, false},
		{"Null", `{"babel":null}`, false},
		{"False", `{"babel":false}`, false},
		{"Zero", `{"babel":0}`, false},
		{"EmptyString", `{"babel":""}`, false},
		{"EmptyObject", `{"babel":{}}`, true},
		{"Object", `{"babel":{"presets":["inner"]}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// root/.babelrc is the fallback when the manifest does not match.
			root := t.TempDir()
			writeFile(t, filepath.Join(root, ".babelrc"), `{"presets":["outer"]}`)
			writeFile(t, filepath.Join(root, "pkg", "package.json"), tt.manifest)

			opts, err := newResolver().Resolve(filepath.Join(root, "pkg", "x.js"))
			require.NoError(t, err)
			if tt.match {
				assert.NotEqual(t, []string{"outer"}, opts.Strings(domain.OptPresets))
			} else {
				assert.Equal(t, []string{"outer"}, opts.Strings(domain.OptPresets))
			}
		})
	}
}

func TestResolver_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		sentinel error
	}{
		{"MalformedBabelrc", ".babelrc", `{presets:`, domain.ErrConfigParseFailed},
		{"BabelrcNotObject", ".babelrc", `["a"]`, domain.ErrConfigParseFailed},
		{"ThrowingScript", ".babelrc.js", `throw new Error("nope")`, domain.ErrScriptEvalFailed},
		{"ScriptNotObject", ".babelrc.js", `module.exports = 42;`, domain.ErrScriptEvalFailed},
		{"MalformedManifest", "package.json", `{"babel":`, domain.ErrManifestParseFailed},
		{"ManifestKeyNotObject", "package.json", `{"babel":true}`, domain.ErrManifestParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			_, err := newResolver().Resolve(filepath.Join(dir, "x.js"))
			require.Error(t, err)
			require.ErrorIs(t, err, tt.sentinel)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, path, zErr.Metadata()["path"])
		})
	}
}

func TestResolver_NullBabelrcIsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".babelrc"), `null`)

	opts, err := newResolver().Resolve(filepath.Join(dir, "x.js"))
	require.NoError(t, err)
	assert.NotNil(t, opts)
	assert.Empty(t, opts)
}

// expectEmpty makes fsys report no configuration files in dir.
func expectEmpty(fsys *mocks.MockFileSystem, dir string) {
	fsys.EXPECT().Exists(filepath.Join(dir, domain.BabelrcFileName)).Return(false).Times(1)
	fsys.EXPECT().Exists(filepath.Join(dir, domain.BabelrcJSFileName)).Return(false).Times(1)
	fsys.EXPECT().Exists(filepath.Join(dir, domain.PackageJSONFileName)).Return(false).Times(1)
}

func TestResolver_CopyDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)
	evaluator := mocks.NewMockScriptEvaluator(ctrl)

	// /proj/.babelrc = {"presets":["p"]}; /proj/sub has no config.
	sub := filepath.FromSlash("/proj/sub")
	proj := filepath.FromSlash("/proj")
	rc := filepath.Join(proj, domain.BabelrcFileName)

	expectEmpty(fsys, sub)
	fsys.EXPECT().Exists(rc).Return(true).Times(1)
	fsys.EXPECT().ReadFile(rc).Return([]byte(`{"presets":["p"]}`), nil).Times(1)

	r := config.NewResolver(fsys, evaluator)

	first, err := r.Resolve(filepath.Join(sub, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, domain.Options{"presets": []any{"p"}}, first)

	// Both /proj and /proj/sub are cached now: no further filesystem access.
	again, err := r.Resolve(filepath.Join(sub, "b.js"))
	require.NoError(t, err)
	assert.Equal(t, first, again)

	direct, err := r.Resolve(filepath.Join(proj, "c.js"))
	require.NoError(t, err)
	assert.Equal(t, first, direct)
}

func TestResolver_NoConfigIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)
	evaluator := mocks.NewMockScriptEvaluator(ctrl)

	dir := filepath.FromSlash("/empty/dir")
	expectEmpty(fsys, dir)
	expectEmpty(fsys, filepath.Dir(dir))
	expectEmpty(fsys, filepath.Dir(filepath.Dir(dir)))

	r := config.NewResolver(fsys, evaluator)

	for range 3 {
		opts, err := r.Resolve(filepath.Join(dir, "x.js"))
		require.NoError(t, err)
		assert.NotNil(t, opts)
		assert.Empty(t, opts)
	}
}

func TestResolver_ScriptViaPort(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)
	evaluator := mocks.NewMockScriptEvaluator(ctrl)

	dir := filepath.FromSlash("/js")
	path := filepath.Join(dir, domain.BabelrcJSFileName)
	src := []byte(`module.exports = {}`)

	fsys.EXPECT().Exists(filepath.Join(dir, domain.BabelrcFileName)).Return(false)
	fsys.EXPECT().Exists(path).Return(true)
	fsys.EXPECT().ReadFile(path).Return(src, nil)
	evaluator.EXPECT().Evaluate(path, src).Return(map[string]any{"plugins": []any{"x"}}, nil).Times(1)

	r := config.NewResolver(fsys, evaluator)
	opts, err := r.Resolve(filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, opts.Strings(domain.OptPlugins))
}

func TestResolver_ErrorIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)
	evaluator := mocks.NewMockScriptEvaluator(ctrl)

	dir := filepath.FromSlash("/broken")
	rc := filepath.Join(dir, domain.BabelrcFileName)
	readErr := errors.New("permission denied")

	fsys.EXPECT().Exists(rc).Return(true).Times(2)
	gomock.InOrder(
		fsys.EXPECT().ReadFile(rc).Return(nil, readErr),
		fsys.EXPECT().ReadFile(rc).Return([]byte(`{}`), nil),
	)

	r := config.NewResolver(fsys, evaluator)

	_, err := r.Resolve(filepath.Join(dir, "a.js"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	require.ErrorIs(t, err, readErr)

	opts, err := r.Resolve(filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestResolver_ResultIsCallerOwned(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".babelrc"), `{"presets":["env"],"env":{"test":{"plugins":["p"]}}}`)

	r := newResolver()
	first, err := r.Resolve(filepath.Join(dir, "sub", "a.js"))
	require.NoError(t, err)

	first["presets"].([]any)[0] = "mutated"
	first["env"].(map[string]any)["test"] = nil
	first["extra"] = true

	again, err := r.Resolve(filepath.Join(dir, "sub", "b.js"))
	require.NoError(t, err)
	assert.Equal(t, domain.Options{
		"presets": []any{"env"},
		"env":     map[string]any{"test": map[string]any{"plugins": []any{"p"}}},
	}, again)
}

func TestResolver_ScriptFunctionsAreDropped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".babelrc.js"), `module.exports = {plugins: [function () { return {visitor: {}}; }], presets: ["x"]};`)

	opts, err := newResolver().Resolve(filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, domain.Options{"plugins": []any{nil}, "presets": []any{"x"}}, opts)
}
