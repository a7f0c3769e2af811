// Package ir provides the in-memory tree for bencode documents.
//
// # Node Structure
//
// A [Node] is a recursive tagged union. The Type field selects which of the
// other fields carry the value:
//
//   - IntType: Int64
//   - StringType: Bytes (arbitrary bytes, not necessarily text)
//   - ListType: Values, in order
//   - DictType: Fields[i] is the key (always a StringType node) for Values[i]
//
// Dictionaries preserve insertion order and do not enforce key uniqueness.
// Lookups return the first matching pair. Nothing in this package sorts keys;
// canonical output is an opt-in mode of the encoder.
//
// Every container exclusively owns its children. There are no parent
// pointers, so a tree can be shared read-only between goroutines but must not
// be mutated concurrently.
//
// # Creating Nodes
//
//	d := ir.NewDict()
//	d.AddString("announce", "udp://tracker.example:80")
//	d.AddInt("creation date", 1327049827)
//	l := ir.FromSlice([]*ir.Node{ir.FromString("spam"), ir.FromInt(-3)})
//	d.Add("list", l)
//
// # Lookups
//
//	n, err := d.LookupInt("creation date")
//	if errors.Is(err, ir.ErrNotFound) {
//	    // key absent
//	} else if errors.Is(err, ir.ErrWrongType) {
//	    // key present, but not an integer
//	}
//
// # Related Packages
//
//   - github.com/signadot/bencode/parse - decodes bytes into a tree
//   - github.com/signadot/bencode/encode - encodes a tree into bytes
package ir
