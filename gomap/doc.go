// Package gomap converts between bencode trees and plain Go values, and
// through them to and from YAML and JSON.
//
// Dicts become yaml.MapSlice so key order survives a round trip. Byte
// strings that are not valid UTF-8 are carried as a one key map
// {"$base64": "..."} in the text formats and restored by FromAny.
package gomap
