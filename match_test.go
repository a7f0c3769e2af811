package bencode

import (
	"errors"
	"testing"

	"github.com/signadot/bencode/encode"
	"github.com/signadot/bencode/ir"
)

func mustDecode(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := Decode([]byte(s))
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return node
}

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{in: "i1e", match: "i1e", res: true},
	{in: "i0e", match: "i1e", res: false},
	{in: "li1ee", match: "li1ee", res: true},
	{in: "le", match: "le", res: true},
	{in: "li1ee", match: "li2ee", res: false},
	{in: "li1ee", match: "5:hello", res: false},
	{in: "li1ei2ee", match: "li1ee", res: false},
	{in: "d1:a1:b1:c1:de", match: "d1:a1:be", res: true},
	{in: "d1:a1:be", match: "d1:a1:b1:c1:de", res: false},
	{in: "d1:a1:be", match: "de", res: true},
	{in: "d1:ad1:xi1e1:yi2eee", match: "d1:ad1:yi2eee", res: true},
	{in: "d1:ad1:xi1e1:yi2eee", match: "d1:ad1:yi3eee", res: false},
	{in: "d1:ali1ed1:ki1eeee", match: "d1:ali1ed1:ki1eeee", res: true},
	{in: "2:\x00\xff", match: "2:\x00\xff", res: true},
	{in: "d1:ai1e1:ai2ee", match: "d1:ai1ee", res: true},
	{in: "d1:ai1e1:ai2ee", match: "d1:ai2ee", res: false},
}

func TestMatch(t *testing.T) {
	for i, mt := range matchTests {
		doc := mustDecode(t, mt.in)
		match := mustDecode(t, mt.match)
		if res := Match(doc, match); res != mt.res {
			t.Errorf("test %d: match %q against %q: got %v, want %v", i, mt.in, mt.match, res, mt.res)
		}
	}
}

func TestTrim(t *testing.T) {
	cases := []struct{ match, doc, want string }{
		{match: "d1:ai0ee", doc: "d1:ai1e1:bi2ee", want: "d1:ai1ee"},
		{match: "d1:bd1:xi0eee", doc: "d1:ai1e1:bd1:xi5e1:yi6eee", want: "d1:bd1:xi5eee"},
		{match: "li2ee", doc: "li1ei2ei3ee", want: "li2ee"},
		{match: "i0e", doc: "4:spam", want: "4:spam"},
	}
	for _, c := range cases {
		got := Trim(mustDecode(t, c.match), mustDecode(t, c.doc))
		if s := encode.MustString(got); s != c.want {
			t.Errorf("trim %q by %q: got %q, want %q", c.doc, c.match, s, c.want)
		}
	}
}

func TestPatch(t *testing.T) {
	doc := mustDecode(t, "d4:name1:x6:pieces2:\x00\xff4:tagsl1:aee")
	p := `[
		{"op": "replace", "path": "/name", "value": "y"},
		{"op": "add", "path": "/tags/1", "value": "b"},
		{"op": "add", "path": "/length", "value": 9223372036854775807},
		{"op": "add", "path": "/blob", "value": {"$base64": "3q2+7w=="}}
	]`
	res, err := Patch(doc, []byte(p))
	if err != nil {
		t.Fatal(err)
	}
	want := "d4:blob4:\xde\xad\xbe\xef6:lengthi9223372036854775807e4:name1:y6:pieces2:\x00\xff4:tagsl1:a1:bee"
	if got := encode.MustString(res); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestPatchErrors(t *testing.T) {
	doc := mustDecode(t, "d4:name1:xe")
	for _, p := range []string{`not json`, `[{"op": "replace", "path": "/missing/x", "value": 1}]`, `[{"op": "test", "path": "/name", "value": "z"}]`} {
		if _, err := Patch(doc, []byte(p)); !errors.Is(err, ErrPatch) {
			t.Errorf("%s: got %v, want ErrPatch", p, err)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	in := "d3:cow3:moo4:spam4:eggse"
	d, err := Encode(mustDecode(t, in))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != in {
		t.Errorf("got %q", d)
	}
	if Valid([]byte("i1")) || !Valid([]byte(in)) {
		t.Error("Valid")
	}
}
