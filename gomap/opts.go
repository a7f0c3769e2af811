package gomap

// Base64Key marks a map standing for a byte string that is not valid UTF-8.
const Base64Key = "$base64"

type toOpts struct {
	plainMaps bool
	base64    bool
}

type ToOption func(*toOpts)

// PlainMaps makes dicts convert to map[string]any instead of yaml.MapSlice.
// With duplicate keys the first one wins.
func PlainMaps(v bool) ToOption { return func(o *toOpts) { o.plainMaps = v } }

// Base64 makes non UTF-8 strings convert to a {"$base64": ...} map instead
// of []byte.
func Base64(v bool) ToOption { return func(o *toOpts) { o.base64 = v } }
