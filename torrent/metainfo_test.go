package torrent

import (
	"crypto/sha1"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/bencode/encode"
	"github.com/signadot/bencode/ir"
)

const (
	sampleInfo = "d6:lengthi20e4:name10:sample.txt12:piece lengthi65536e6:pieces20:..R....x...d.......17:privatei1ee"
	sample     = "d4:testl4:teste8:announce35:udp://tracker.openbittorrent.com:8013:creation datei1327049827e4:info" + sampleInfo + "e"
)

func TestParseSample(t *testing.T) {
	mi, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	want := &MetaInfo{
		Announce:     "udp://tracker.openbittorrent.com:80",
		CreationDate: 1327049827,
		Info: Info{
			Name:        "sample.txt",
			PieceLength: 65536,
			Pieces:      []byte("..R....x...d.......1"),
			Length:      20,
			Private:     true,
		},
		InfoHash: sha1.Sum([]byte(sampleInfo)),
	}
	if diff := cmp.Diff(want, mi, cmpopts.IgnoreFields(MetaInfo{}, "Node")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got := mi.Info.TotalLength(); got != 20 {
		t.Errorf("total length %d", got)
	}
	if got := len(mi.Info.PieceHashes()); got != 1 {
		t.Errorf("%d piece hashes", got)
	}
	m := mi.Magnet()
	if !strings.HasPrefix(m, "magnet:?xt=urn:btih:"+mi.InfoHash.HexString()+"&") || !strings.Contains(m, "dn=sample.txt") {
		t.Errorf("magnet %q", m)
	}
}

func multiFile() *ir.Node {
	file := func(n int64, path ...string) *ir.Node {
		parts := ir.NewList()
		for _, p := range path {
			parts.Append(ir.FromString(p))
		}
		return ir.FromPairs(ir.Pair{Key: "length", Value: ir.FromInt(n)}, ir.Pair{Key: "path", Value: parts})
	}
	info := ir.FromPairs(
		ir.Pair{Key: "files", Value: ir.FromSlice([]*ir.Node{file(10, "a.txt"), file(32, "sub", "b.bin")})},
		ir.Pair{Key: "name", Value: ir.FromString("dir")},
		ir.Pair{Key: "piece length", Value: ir.FromInt(16)},
		ir.Pair{Key: "pieces", Value: ir.FromBytes(make([]byte, 3*HashSize))},
	)
	tiers := ir.FromSlice([]*ir.Node{
		ir.FromSlice([]*ir.Node{ir.FromString("http://a"), ir.FromString("http://b")}),
		ir.FromSlice([]*ir.Node{ir.FromString("http://a")}),
	})
	return ir.FromPairs(
		ir.Pair{Key: "announce", Value: ir.FromString("http://c")},
		ir.Pair{Key: "announce-list", Value: tiers},
		ir.Pair{Key: "comment", Value: ir.FromString("hi")},
		ir.Pair{Key: "created by", Value: ir.FromString("test")},
		ir.Pair{Key: "info", Value: info},
	)
}

func TestMultiFile(t *testing.T) {
	node := multiFile()
	mi, err := Parse([]byte(encode.MustString(node)))
	if err != nil {
		t.Fatal(err)
	}
	wantFiles := []File{{Length: 10, Path: []string{"a.txt"}}, {Length: 32, Path: []string{"sub", "b.bin"}}}
	if diff := cmp.Diff(wantFiles, mi.Info.Files); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}
	if !mi.Info.IsDir() || mi.Info.TotalLength() != 42 {
		t.Errorf("dir %v, total %d", mi.Info.IsDir(), mi.Info.TotalLength())
	}
	if diff := cmp.Diff([]string{"http://a", "http://b", "http://c"}, mi.Announces()); diff != "" {
		t.Errorf("announces (-want +got):\n%s", diff)
	}
	if mi.Comment != "hi" || mi.CreatedBy != "test" || mi.Info.Private {
		t.Errorf("unexpected %+v", mi)
	}
	info, _ := node.LookupDict("info")
	h, err := HashNode(info)
	if err != nil {
		t.Fatal(err)
	}
	if h != mi.InfoHash || h.IsZero() {
		t.Errorf("info hash %s, want %s", mi.InfoHash, h)
	}
}

func TestBadMetaInfo(t *testing.T) {
	bad := []string{
		"le",
		"d8:announce3:urle",
		"d4:infoi1ee",
		"d4:infod4:name1:x12:piece lengthi1e6:pieces3:abc6:lengthi1eee",
		"d4:infod4:name1:x12:piece lengthi1e6:pieces0:ee",
		"d4:infod4:name1:x12:piece lengthi1e6:pieces0:6:lengthi1e5:filesleee",
		"d4:infod4:name1:x12:piece lengthi1e6:pieces0:5:filesli1eeee",
		"d8:announcei1e4:infod4:name1:x12:piece lengthi1e6:pieces0:6:lengthi1eee",
		"d13:announce-listl3:urle4:infod4:name1:x12:piece lengthi1e6:pieces0:6:lengthi1eee",
	}
	for _, d := range bad {
		if _, err := Parse([]byte(d)); !errors.Is(err, ErrMetaInfo) {
			t.Errorf("%q: got %v, want ErrMetaInfo", d, err)
		}
	}
}
