// Package token provides the byte-level primitives of the bencode wire format.
//
// [Classify] maps the leading byte of a value to the kind of value it starts,
// and [ParseInt] is the shared decimal sub-parser used for both integer bodies
// (`i<digits>e`) and byte string length prefixes (`<digits>:`).
//
// The integer sub-parser is lenient by design: it accepts leading zeros and a
// signed zero, and it saturates at the int64 bounds rather than failing. The
// caller decides whether the number of consumed bytes makes sense in context.
package token
