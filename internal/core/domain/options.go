package domain

// Options is an untyped transform configuration object in the shape the
// transform engine accepts: a plugin list, a preset list and arbitrary
// engine-specific keys.
type Options map[string]any

// Well-known option keys.
const (
	OptPlugins                = "plugins"
	OptPresets                = "presets"
	OptFilename               = "filename"
	OptCompact                = "compact"
	OptSourceMaps             = "sourceMaps"
	OptCacheDirectory         = "cacheDirectory"
	OptAuxiliaryCommentBefore = "auxiliaryCommentBefore"
	OptIgnore                 = "ignore"
	OptOnly                   = "only"
)

// Clone returns a shallow copy of o. The copy is never nil.
func (o Options) Clone() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// DeepClone returns a copy of o that shares no maps or slices with it.
func (o Options) DeepClone() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = deepCopy(v)
	}
	return c
}

func deepCopy(v any) any {
	switch v := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[k] = deepCopy(e)
		}
		return m
	case Options:
		return v.DeepClone()
	case []any:
		s := make([]any, len(v))
		for i, e := range v {
			s[i] = deepCopy(e)
		}
		return s
	case []string:
		return append([]string(nil), v...)
	default:
		return v
	}
}

// List returns a copy of the list stored under key, or nil if the key is
// missing or does not hold a list.
func (o Options) List(key string) []any {
	switch v := o[key].(type) {
	case []any:
		return append([]any(nil), v...)
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// Strings returns the string entries of the list stored under key.
// A bare string value is treated as a one-element list.
func (o Options) Strings(key string) []string {
	if s, ok := o[key].(string); ok {
		return []string{s}
	}
	var out []string
	for _, v := range o.List(key) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// String returns the string stored under key, or "" if absent.
func (o Options) String(key string) string {
	s, _ := o[key].(string)
	return s
}

// Bool returns the bool stored under key and whether it was present.
func (o Options) Bool(key string) (bool, bool) {
	b, ok := o[key].(bool)
	return b, ok
}
