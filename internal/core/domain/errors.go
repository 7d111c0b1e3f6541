package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when a configuration file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a .babelrc file is not valid JSON.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrScriptEvalFailed is returned when a .babelrc.js file throws or exports a non-object.
	ErrScriptEvalFailed = zerr.New("failed to evaluate script config")

	// ErrManifestParseFailed is returned when a package.json file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrSettingsLoadFailed is returned when nest's own settings cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrUnknownEngine is returned when the settings name an unsupported engine kind.
	ErrUnknownEngine = zerr.New("unknown transform engine")

	// ErrEngineCommandMissing is returned when the command engine has no command configured.
	ErrEngineCommandMissing = zerr.New("command engine requires engine.command")

	// ErrEngineCommandFailed is returned when the external engine process fails.
	ErrEngineCommandFailed = zerr.New("engine command failed")

	// ErrEngineProtocol is returned when the external engine replies with malformed output.
	ErrEngineProtocol = zerr.New("malformed engine response")

	// ErrTransformFailed is returned when the engine rejects a source file.
	ErrTransformFailed = zerr.New("transform failed")

	// ErrCacheKeyFailed is returned when a cache key cannot be derived.
	ErrCacheKeyFailed = zerr.New("failed to derive cache key")

	// ErrStoreCreateFailed is returned when the transform cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create transform cache directory")

	// ErrStoreReadFailed is returned when a transform record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read transform record")

	// ErrStoreUnmarshalFailed is returned when a transform record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal transform record")

	// ErrStoreMarshalFailed is returned when a transform record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal transform record")

	// ErrStoreWriteFailed is returned when a transform record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write transform record")

	// ErrSourceReadFailed is returned when a source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrOutputWriteFailed is returned when a transformed file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write transformed file")

	// ErrNoSources is returned when `run` is invoked without any input path.
	ErrNoSources = zerr.New("no source paths specified")

	// ErrRunFailed is returned when at least one file in a batch failed.
	ErrRunFailed = zerr.New("transform run failed")

	// ErrUnknownMethod is returned by the serve protocol for unsupported methods.
	ErrUnknownMethod = zerr.New("unknown method")
)
