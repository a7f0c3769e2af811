package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/bencode/ir"
	"github.com/signadot/bencode/token"
)

const sample = "d4:testl4:teste8:announce35:udp://tracker.openbittorrent.com:8013:creation datei1327049827e4:infod6:lengthi20e4:name10:sample.txt12:piece lengthi65536e6:pieces20:..R....x...d.......17:privatei1eee"

type parseTest struct {
	in   string
	want *ir.Node
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: "4:spam", want: ir.FromString("spam")},
		{in: "0:", want: ir.FromString("")},
		{in: "i3e", want: ir.FromInt(3)},
		{in: "i-3e", want: ir.FromInt(-3)},
		{in: "i0e", want: ir.FromInt(0)},
		{in: "le", want: ir.NewList()},
		{in: "de", want: ir.NewDict()},
		{
			in:   "l4:spam4:eggse",
			want: ir.FromSlice([]*ir.Node{ir.FromString("spam"), ir.FromString("eggs")}),
		},
		{
			in:   "d3:cow3:mooe",
			want: ir.FromPairs(ir.Pair{Key: "cow", Value: ir.FromString("moo")}),
		},
		{
			in: "d3:cow3:moo4:spam4:eggse",
			want: ir.FromPairs(
				ir.Pair{Key: "cow", Value: ir.FromString("moo")},
				ir.Pair{Key: "spam", Value: ir.FromString("eggs")},
			),
		},
		{
			in: "d4:spaml1:a1:bee",
			want: ir.FromPairs(ir.Pair{Key: "spam", Value: ir.FromSlice([]*ir.Node{
				ir.FromString("a"), ir.FromString("b"),
			})}),
		},
		{
			// keys out of order and duplicated are kept as is
			in: "d1:bi1e1:ai2e1:bi3ee",
			want: ir.FromPairs(
				ir.Pair{Key: "b", Value: ir.FromInt(1)},
				ir.Pair{Key: "a", Value: ir.FromInt(2)},
				ir.Pair{Key: "b", Value: ir.FromInt(3)},
			),
		},
		{in: "5:a\x00b\xff\n", want: ir.FromBytes([]byte{'a', 0, 'b', 0xff, '\n'})},
	}
	for _, pt := range pts {
		got, n, err := Decode([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if n != len(pt.in) {
			t.Errorf("%q: consumed %d of %d", pt.in, n, len(pt.in))
		}
		if diff := cmp.Diff(pt.want, got); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestParseLoose(t *testing.T) {
	nines := strings.Repeat("9", 49)
	pts := []parseTest{
		{in: "i" + nines + "e", want: ir.FromInt(math.MaxInt64)},
		{in: "i-" + nines + "e", want: ir.FromInt(math.MinInt64)},
		{in: "i03e", want: ir.FromInt(3)},
		{in: "i-0e", want: ir.FromInt(0)},
		{in: "i000e", want: ir.FromInt(0)},
		{in: "03:abc", want: ir.FromString("abc")},
	}
	for _, pt := range pts {
		got, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if !ir.Equal(pt.want, got) {
			t.Errorf("%q: got %d, want %d", pt.in, got.Int64, pt.want.Int64)
		}
	}
}

func TestParseFail(t *testing.T) {
	bad := []string{
		"",
		"1234",
		"i1234",
		"12:abc",
		"i--0e",
		"i",
		"ie",
		"i-e",
		"i12x",
		"-3:abc",
		"x",
		"e",
		"l",
		"l4:spam",
		"d",
		"d3:cow",
		"d3:cowe",
		"di1e3:mooe",
		"dle3:mooe",
		"4spam",
		"l12:abce",
		"d3:cow3:moo",
		"i9999999999999999999999999",
		"99999999999999999999999:x",
	}
	for _, in := range bad {
		got, n, err := Decode([]byte(in))
		if !errors.Is(err, ErrBadFormat) {
			t.Errorf("%q: got err %v, want ErrBadFormat", in, err)
		}
		if got != nil || n != 0 {
			t.Errorf("%q: got a tree on failure", in)
		}
		var pe *Error
		if !errors.As(err, &pe) {
			t.Errorf("%q: error %T is not *Error", in, err)
		}
	}
}

func nest(n int, inner string) string {
	return strings.Repeat("l", n) + inner + strings.Repeat("e", n)
}

func TestDepth(t *testing.T) {
	if _, err := Parse([]byte(nest(DefaultMaxDepth, ""))); err != nil {
		t.Errorf("%d nested lists: %v", DefaultMaxDepth, err)
	}
	_, err := Parse([]byte(nest(DefaultMaxDepth+1, "")))
	if !errors.Is(err, ErrRecursionLimit) {
		t.Errorf("%d nested lists: got %v, want ErrRecursionLimit", DefaultMaxDepth+1, err)
	}
	if _, err := Parse([]byte(nest(8, "4:test"))); err != nil {
		t.Errorf("string at depth 9: %v", err)
	}
	if _, err := Parse([]byte(nest(12, "4:test"))); !errors.Is(err, ErrRecursionLimit) {
		t.Errorf("string at depth 13: got %v", err)
	}
	// the limit applies before the input is examined
	if _, err := Parse([]byte(strings.Repeat("l", 5000))); !errors.Is(err, ErrRecursionLimit) {
		t.Errorf("deep unterminated: got %v", err)
	}
	dicts := strings.Repeat("d1:k", 10) + "i1e" + strings.Repeat("e", 10)
	if _, err := Parse([]byte(dicts)); !errors.Is(err, ErrRecursionLimit) {
		t.Errorf("dict value at depth 11: got %v", err)
	}
	if _, err := Parse([]byte(nest(20, "")), MaxDepth(20)); err != nil {
		t.Errorf("MaxDepth(20): %v", err)
	}
}

func TestMaxAlloc(t *testing.T) {
	in := []byte("l" + "100:" + strings.Repeat("x", 100) + "e")
	if _, err := Parse(in, MaxAlloc(1<<20)); err != nil {
		t.Errorf("within budget: %v", err)
	}
	_, err := Parse(in, MaxAlloc(64))
	if !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("got %v, want ErrOutOfMemory", err)
	}
}

func TestMaxAllocDictKeys(t *testing.T) {
	// dict, key and value nodes plus the one byte key
	in := []byte("d1:ai1ee")
	need := 3*nodeCost + 1
	if _, err := Parse(in, MaxAlloc(need)); err != nil {
		t.Errorf("budget %d: %v", need, err)
	}
	if _, err := Parse(in, MaxAlloc(need-1)); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("budget %d: got %v, want ErrOutOfMemory", need-1, err)
	}
}

func TestDecodeConsumed(t *testing.T) {
	in := []byte("i42e4:spamle")
	node, n, err := Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || node.Int64 != 42 {
		t.Errorf("got %d consumed %d", node.Int64, n)
	}
	if _, err := Parse(in); !errors.Is(err, ErrBadFormat) {
		t.Errorf("trailing data: got %v", err)
	}
	nodes, err := ParseAll(in)
	if err != nil {
		t.Fatal(err)
	}
	want := []*ir.Node{ir.FromInt(42), ir.FromString("spam"), ir.NewList()}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("ParseAll mismatch (-want +got):\n%s", diff)
	}
	if nodes, err := ParseAll(nil); err != nil || len(nodes) != 0 {
		t.Errorf("ParseAll(nil) = %v, %v", nodes, err)
	}
}

func TestParseAllOffset(t *testing.T) {
	_, err := ParseAll([]byte("i1ei2ex"))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %v", err)
	}
	if pe.Offset() != 6 {
		t.Errorf("offset %d, want 6", pe.Offset())
	}
}

func TestSample(t *testing.T) {
	node, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	announce, err := node.LookupString("announce")
	if err != nil || announce != "udp://tracker.openbittorrent.com:80" {
		t.Errorf("announce = %q, %v", announce, err)
	}
	info, err := node.LookupDict("info")
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := info.LookupInt("piece length"); n != 65536 {
		t.Errorf("piece length = %d", n)
	}
	if n, err := info.LookupInt("private"); err != nil || n != 1 {
		t.Errorf("private = %d, %v", n, err)
	}
	pieces, err := info.LookupBytes("pieces")
	if err != nil || len(pieces) != 20 {
		t.Errorf("pieces = %q, %v", pieces, err)
	}
	if _, err := node.LookupInt("missing"); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("missing: %v", err)
	}
}

func TestPositions(t *testing.T) {
	pos := map[*ir.Node]*token.Pos{}
	node, err := Parse([]byte("d3:cowl1:aee"), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	if pos[node].I != 0 {
		t.Errorf("root at %d", pos[node].I)
	}
	if pos[node.Fields[0]].I != 1 {
		t.Errorf("key at %d", pos[node.Fields[0]].I)
	}
	if pos[node.Values[0]].I != 6 {
		t.Errorf("list at %d", pos[node.Values[0]].I)
	}
	if pos[node.Values[0].Values[0]].I != 7 {
		t.Errorf("element at %d", pos[node.Values[0].Values[0]].I)
	}
}

func TestDecodeCopies(t *testing.T) {
	in := []byte("4:spam")
	node, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	in[2] = 'S'
	if node.Str() != "spam" {
		t.Errorf("decoded string aliases input: %q", node.Str())
	}
}
