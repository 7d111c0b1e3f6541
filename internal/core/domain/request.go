package domain

// FrameworkConfig is the subset of the host framework's project
// configuration the transformer needs.
type FrameworkConfig struct {
	RootDir              string   `json:"rootDir"`
	ModuleFileExtensions []string `json:"moduleFileExtensions"`
}

// AltExtensions returns the module file extensions with a leading dot.
func (c FrameworkConfig) AltExtensions() []string {
	if len(c.ModuleFileExtensions) == 0 {
		return nil
	}
	exts := make([]string, len(c.ModuleFileExtensions))
	for i, ext := range c.ModuleFileExtensions {
		exts[i] = "." + ext
	}
	return exts
}

// TransformOptions carries per-call flags from the host framework.
type TransformOptions struct {
	Instrument bool `json:"instrument"`
}

// CacheKeyOptions carries the host framework flags that take part in the cache key.
type CacheKeyOptions struct {
	Instrument bool   `json:"instrument"`
	RootDir    string `json:"rootDir"`
}

// TransformRequest is the input of one transform invocation.
type TransformRequest struct {
	Source   string
	Filename string
	Config   FrameworkConfig
	Options  TransformOptions
}

// TransformResult is the output of a transform engine.
type TransformResult struct {
	Code string
	Map  string
}
