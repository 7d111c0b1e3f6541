package domain

// Engine kinds.
const (
	EngineEsbuild = "esbuild"
	EngineCommand = "command"
)

// Settings is nest's own configuration.
type Settings struct {
	RootDir              string         `koanf:"root_dir" yaml:"root_dir"`
	ModuleFileExtensions []string       `koanf:"module_file_extensions" yaml:"module_file_extensions"`
	Instrument           bool           `koanf:"instrument" yaml:"instrument"`
	ConfigDescriptor     string         `koanf:"config_descriptor" yaml:"config_descriptor"`
	CacheDir             string         `koanf:"cache_dir" yaml:"cache_dir"`
	Jobs                 int            `koanf:"jobs" yaml:"jobs"`
	Options              Options        `koanf:"options" yaml:"options"`
	Engine               EngineSettings `koanf:"engine" yaml:"engine"`
}

// EngineSettings selects and configures the transform engine.
// The esbuild engine does not run Babel presets or plugins, so it cannot
// instrument for coverage; use the command engine for that.
type EngineSettings struct {
	Kind    string            `koanf:"kind" yaml:"kind"`
	Command []string          `koanf:"command" yaml:"command"`
	Env     map[string]string `koanf:"env" yaml:"env"`
	Target  string            `koanf:"target" yaml:"target"`
	Format  string            `koanf:"format" yaml:"format"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		RootDir:              ".",
		ModuleFileExtensions: []string{"js", "jsx", "mjs", "cjs", "ts", "tsx"},
		CacheDir:             ".nest-cache",
		Engine: EngineSettings{
			Kind:   EngineEsbuild,
			Target: "es2020",
			Format: "cjs",
		},
	}
}

// FrameworkConfig returns the framework view of the settings.
func (s Settings) FrameworkConfig() FrameworkConfig {
	return FrameworkConfig{
		RootDir:              s.RootDir,
		ModuleFileExtensions: s.ModuleFileExtensions,
	}
}

// FixedOptions returns the configured override, or nil when directory
// resolution should be used.
func (s Settings) FixedOptions() Options {
	if len(s.Options) == 0 {
		return nil
	}
	return s.Options
}
