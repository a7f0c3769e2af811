package libdiff

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/bencode/encode"
	"github.com/signadot/bencode/ir"
	"github.com/signadot/bencode/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func summary(cs []Change) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = c.Kind.String() + " " + c.Path
	}
	return res
}

func TestDiff(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		want     []string
	}{
		{name: "equal", from: "d1:ai1ee", to: "d1:ai1ee", want: []string{}},
		{name: "reordered keys", from: "d1:ai1e1:bi2ee", to: "d1:bi2e1:ai1ee", want: []string{}},
		{name: "int", from: "i1e", to: "i2e", want: []string{"replace $"}},
		{name: "type", from: "i1e", to: "1:1", want: []string{"replace $"}},
		{
			name: "dict",
			from: "d1:ai1e1:bi2e1:ci3ee",
			to:   "d1:ai1e1:bi5e1:di4ee",
			want: []string{"replace $.b", "delete $.c", "insert $.d"},
		},
		{
			name: "list grow",
			from: "li1ee",
			to:   "li1ei2ei3ee",
			want: []string{"insert $[1]", "insert $[2]"},
		},
		{
			name: "list shrink",
			from: "li1ei2ei3ee",
			to:   "li9ee",
			want: []string{"replace $[0]", "delete $[2]", "delete $[1]"},
		},
		{
			name: "nested",
			from: "d4:infod4:name1:x5:filesld4:pathl1:aeeeee",
			to:   "d4:infod4:name1:y5:filesld4:pathl1:beeeee",
			want: []string{"replace $.info.name", "replace $.info.files[0].path[0]"},
		},
		{name: "quoted key", from: "d3:a.bi1ee", to: "d3:a.bi2ee", want: []string{"replace $.'a.b'"}},
		{name: "dup keys", from: "d1:ai1e1:ai2ee", to: "d1:ai1e1:ai3ee", want: []string{"replace $"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := summary(Diff(mustParse(t, c.from), mustParse(t, c.to)))
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply(t *testing.T) {
	pairs := [][2]string{
		{"d1:ai1e1:bi2e1:ci3ee", "d1:ai1e1:bi5e1:di4ee"},
		{"li1ee", "li1ei2ei3ee"},
		{"li1ei2ei3ee", "li9ee"},
		{"d4:infod4:name1:x5:filesld4:pathl1:aeeeee", "d4:infod4:name1:y5:filesld4:pathl1:beed4:pathl1:ceeeee"},
		{"i1e", "le"},
		{"d1:ai1e1:ai2ee", "d1:ai1e1:ai3ee"},
	}
	for _, p := range pairs {
		from, to := mustParse(t, p[0]), mustParse(t, p[1])
		cs := Diff(from, to)
		got, err := Apply(from, cs)
		if err != nil {
			t.Errorf("%q -> %q: %v", p[0], p[1], err)
			continue
		}
		if len(Diff(got, to)) != 0 {
			t.Errorf("%q -> %q: applied gives %q", p[0], p[1], encode.MustString(got))
		}
		if encode.MustString(from) != p[0] {
			t.Errorf("apply modified its input")
		}
		back, err := Apply(got, Reverse(cs))
		if err != nil {
			t.Errorf("%q -> %q reversed: %v", p[0], p[1], err)
			continue
		}
		if len(Diff(back, from)) != 0 {
			t.Errorf("%q -> %q reversed gives %q", p[0], p[1], encode.MustString(back))
		}
	}
}

func TestDiffNilKey(t *testing.T) {
	from := &ir.Node{
		Type:   ir.DictType,
		Fields: []*ir.Node{nil},
		Values: []*ir.Node{ir.FromInt(1)},
	}
	if cs := Diff(from, from); len(cs) != 0 {
		t.Errorf("equal dicts: %v", cs)
	}
	to := mustParse(t, "d1:ai1ee")
	cs := Diff(from, to)
	if diff := cmp.Diff([]string{"replace $"}, summary(cs)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got, err := Apply(from, cs)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, to) {
		t.Errorf("got %q", encode.MustString(got))
	}
}

func TestApplyErrors(t *testing.T) {
	node := mustParse(t, "d1:ali1eee")
	bad := []Change{
		{Path: "$.b", Kind: Delete},
		{Path: "$.a[5]", Kind: Replace, To: ir.FromInt(1)},
		{Path: "$.a", Kind: Insert, To: ir.FromInt(1)},
		{Path: "$", Kind: Delete},
		{Path: "$.a.x", Kind: Replace, To: ir.FromInt(1)},
		{Path: "nope", Kind: Replace, To: ir.FromInt(1)},
	}
	for _, c := range bad {
		if _, err := Apply(node, []Change{c}); !errors.Is(err, ErrApply) {
			t.Errorf("%s: got %v, want ErrApply", c, err)
		}
	}
}

func TestChangeString(t *testing.T) {
	cs := Diff(mustParse(t, "d4:name5:helloe"), mustParse(t, "d4:name5:hallo1:xi1ee"))
	want := []string{
		`~ $.name: "hello" -> "hallo"`,
		`+ $.x: 1`,
	}
	got := make([]string, len(cs))
	for i, c := range cs {
		got[i] = c.String()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if cs[0].Text == nil {
		t.Fatal("expected a text diff for UTF-8 strings")
	}
	if p := cs[0].Pretty(); !strings.HasPrefix(p, "~ $.name: ") {
		t.Errorf("pretty: %q", p)
	}
	bin := Diff(ir.FromBytes([]byte{0xff}), ir.FromBytes([]byte{0xfe}))
	if len(bin) != 1 || bin[0].Text != nil {
		t.Errorf("binary strings should not carry a text diff: %+v", bin)
	}
}
