package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestRun(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "nest.yaml"), "module_file_extensions: [js]\n")
	writeFile(t, filepath.Join(tmpDir, ".babelrc"), `{"presets":["env"]}`)
	writeFile(t, filepath.Join(tmpDir, "src", "a.js"), "const a = () => 1;\n")
	t.Chdir(tmpDir)

	tests := []struct {
		name         string
		args         []string
		stdin        string
		expectedExit int
		stdout       func(t *testing.T, out string)
	}{
		{
			name:         "Version",
			args:         []string{"version"},
			expectedExit: 0,
			stdout: func(t *testing.T, out string) {
				assert.Equal(t, "nest version dev\n", out)
			},
		},
		{
			name:         "Key",
			args:         []string{"key", "src/a.js"},
			expectedExit: 0,
			stdout: func(t *testing.T, out string) {
				assert.Regexp(t, `^[0-9a-f]{64}\n$`, out)
			},
		},
		{
			name:         "Resolve",
			args:         []string{"resolve", "src/a.js"},
			expectedExit: 0,
			stdout: func(t *testing.T, out string) {
				assert.Equal(t, "presets:\n  - env\n", out)
			},
		},
		{
			name:         "RunSingleFile",
			args:         []string{"run", "src/a.js"},
			expectedExit: 0,
			stdout: func(t *testing.T, out string) {
				assert.Contains(t, out, "const a = () => 1;")
			},
		},
		{
			name:         "RunWithoutPathsShowsHelp",
			args:         []string{"run"},
			expectedExit: 0,
			stdout: func(t *testing.T, out string) {
				assert.Contains(t, out, "run [paths...]")
			},
		},
		{
			name:         "Serve",
			args:         []string{"serve"},
			stdin:        `{"id":7,"method":"canInstrument"}` + "\n",
			expectedExit: 0,
			stdout: func(t *testing.T, out string) {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &resp))
				assert.Equal(t, map[string]any{"id": float64(7), "result": false}, resp, "esbuild cannot instrument")
			},
		},
		{
			name:         "MissingFile",
			args:         []string{"key", "src/missing.js"},
			expectedExit: 1,
		},
		{
			name:         "UnknownCommand",
			args:         []string{"explode"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			exitCode := run(tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)
			assert.Equal(t, tt.expectedExit, exitCode, stderr.String())
			if tt.stdout != nil {
				tt.stdout(t, stdout.String())
			}
		})
	}
}

func TestRun_OutDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "nest.yaml"), "module_file_extensions: [js]\ncache_dir: .cache\n")
	writeFile(t, filepath.Join(tmpDir, "src", "a.js"), "export const a = 1;\n")
	writeFile(t, filepath.Join(tmpDir, "src", "b.txt"), "not a source")
	t.Chdir(tmpDir)

	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"run", "--out-dir", "dist", "src"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, exitCode, stderr.String())

	got, err := os.ReadFile(filepath.Join(tmpDir, "dist", "src", "a.js"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "exports")
	assert.NoFileExists(t, filepath.Join(tmpDir, "dist", "src", "b.txt"))
	assert.DirExists(t, filepath.Join(tmpDir, ".cache"))
}

func TestRun_SettingsError(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "nest.yaml"), "engine:\n  kind: teleport\n")
	t.Chdir(tmpDir)

	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"resolve", "a.js"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "unknown transform engine")
}
