package bencode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/bencode/debug"
	"github.com/signadot/bencode/gomap"
	"github.com/signadot/bencode/ir"
)

var ErrPatch = errors.New("patch error")

// Patch applies the RFC 6902 JSON patch p to doc. The document is patched
// through its JSON view: strings that are not UTF-8 appear as
// {"$base64": ...} objects, dict keys come back sorted and only the first
// pair of a duplicated key survives.
func Patch(doc *ir.Node, p []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := json.Marshal(gomap.ToAny(doc, gomap.PlainMaps(true), gomap.Base64(true)))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Eval() {
		debug.Logf("json patch result %s\n", out)
	}
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return gomap.FromAny(v)
}
