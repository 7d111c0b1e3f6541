package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: NEST_ENGINE__KIND sets engine.kind.
const EnvPrefix = "NEST_"

var _ ports.SettingsLoader = (*SettingsLoader)(nil)

// listKeys are split on commas (or whitespace for argv) when read from the environment.
var listKeys = map[string]func(string) []string{
	"module_file_extensions": splitList,
	"engine.command":         strings.Fields,
}

// SettingsLoader loads domain.Settings from a YAML file and the environment.
type SettingsLoader struct{}

// NewSettingsLoader creates a new SettingsLoader.
func NewSettingsLoader() *SettingsLoader {
	return &SettingsLoader{}
}

// Load merges the YAML file at path (if present) with NEST_* environment
// variables and fills unset fields with defaults. A relative root_dir is
// resolved against the directory of the settings file.
func (l *SettingsLoader) Load(path string) (domain.Settings, error) {
	k := koanf.New(".")

	fileFound := false
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			fileFound = true
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return domain.Settings{}, zerr.With(errors.Join(domain.ErrSettingsLoadFailed, err), "path", path)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return domain.Settings{}, zerr.With(errors.Join(domain.ErrSettingsLoadFailed, err), "path", path)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return domain.Settings{}, zerr.With(errors.Join(domain.ErrSettingsLoadFailed, err), "source", "env")
	}

	var settings domain.Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return domain.Settings{}, zerr.With(errors.Join(domain.ErrSettingsLoadFailed, err), "path", path)
	}

	applyDefaults(&settings)

	if err := validate(settings); err != nil {
		return domain.Settings{}, err
	}

	baseDir := "."
	if fileFound {
		baseDir = filepath.Dir(path)
	}
	root, err := resolveRoot(baseDir, settings.RootDir)
	if err != nil {
		return domain.Settings{}, zerr.With(errors.Join(domain.ErrSettingsLoadFailed, err), "root_dir", settings.RootDir)
	}
	settings.RootDir = root

	return settings, nil
}

// envKey maps NEST_ENGINE__KIND=esbuild to ("engine.kind", "esbuild").
func envKey(key, value string) (string, any) {
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	name = strings.ReplaceAll(name, "__", ".")
	if split, ok := listKeys[name]; ok {
		return name, split(value)
	}
	return name, value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func applyDefaults(s *domain.Settings) {
	defaults := domain.DefaultSettings()

	if s.RootDir == "" {
		s.RootDir = defaults.RootDir
	}
	if len(s.ModuleFileExtensions) == 0 {
		s.ModuleFileExtensions = defaults.ModuleFileExtensions
	}
	for i, ext := range s.ModuleFileExtensions {
		s.ModuleFileExtensions[i] = strings.TrimPrefix(ext, ".")
	}
	if s.CacheDir == "" {
		s.CacheDir = defaults.CacheDir
	}
	if s.Engine.Kind == "" {
		s.Engine.Kind = defaults.Engine.Kind
	}
	if s.Engine.Target == "" {
		s.Engine.Target = defaults.Engine.Target
	}
	if s.Engine.Format == "" {
		s.Engine.Format = defaults.Engine.Format
	}
}

func validate(s domain.Settings) error {
	switch s.Engine.Kind {
	case domain.EngineEsbuild:
	case domain.EngineCommand:
		if len(s.Engine.Command) == 0 {
			return domain.ErrEngineCommandMissing
		}
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownEngine, "invalid engine.kind"), "kind", s.Engine.Kind)
	}
	if s.Jobs < 0 {
		return zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, "jobs must not be negative"), "jobs", s.Jobs)
	}
	return nil
}

func resolveRoot(baseDir, configuredRoot string) (string, error) {
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot), nil
	}
	return filepath.Abs(filepath.Join(baseDir, configuredRoot))
}
