package domain

const (
	// BabelrcFileName is the primary per-directory configuration file, parsed as JSON.
	BabelrcFileName = ".babelrc"

	// BabelrcJSFileName is the script configuration file whose module export is the configuration.
	BabelrcJSFileName = ".babelrc.js"

	// PackageJSONFileName is the package manifest that may embed configuration.
	PackageJSONFileName = "package.json"

	// ManifestConfigKey is the manifest key holding embedded configuration.
	ManifestConfigKey = "babel"

	// SettingsFileName is the default name of nest's own settings file.
	SettingsFileName = "nest.yaml"

	// MandatoryPreset is appended to every preset list.
	MandatoryPreset = "babel-preset-jest"

	// InstrumentPlugin is the coverage instrumentation plugin appended when instrumenting.
	InstrumentPlugin = "babel-plugin-istanbul"

	// InstrumentComment is the comment prepended to helper code when instrumenting.
	InstrumentComment = " istanbul ignore next "

	// InstrumentMarker is the cache-key contribution of an instrumented transform.
	InstrumentMarker = "instrument"

	// SourceMapsBoth asks the engine for an inline and a separate source map.
	SourceMapsBoth = "both"
)
