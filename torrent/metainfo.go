package torrent

import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/signadot/bencode/ir"
	"github.com/signadot/bencode/parse"
)

var ErrMetaInfo = errors.New("bad metainfo")

type File struct {
	Length int64
	Path   []string
}

type Info struct {
	Name        string
	PieceLength int64
	// Pieces is the concatenation of the 20 byte piece hashes.
	Pieces  []byte
	Length  int64
	Files   []File
	Private bool
}

type MetaInfo struct {
	Announce     string
	AnnounceList [][]string
	Comment      string
	CreatedBy    string
	CreationDate int64
	Info         Info
	InfoHash     Hash

	// Node is the decoded document.
	Node *ir.Node
}

// Parse decodes a metainfo file.
func Parse(d []byte, opts ...parse.ParseOption) (*MetaInfo, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return FromNode(node)
}

// FromNode reads metainfo from an already decoded document.
func FromNode(node *ir.Node) (*MetaInfo, error) {
	if node.Type != ir.DictType {
		return nil, fmt.Errorf("%w: top level is %s, not Dict", ErrMetaInfo, node.Type)
	}
	mi := &MetaInfo{Node: node}
	var err error
	if mi.Announce, err = optString(node, "announce"); err != nil {
		return nil, err
	}
	if mi.Comment, err = optString(node, "comment"); err != nil {
		return nil, err
	}
	if mi.CreatedBy, err = optString(node, "created by"); err != nil {
		return nil, err
	}
	if mi.CreationDate, err = optInt(node, "creation date"); err != nil {
		return nil, err
	}
	if mi.AnnounceList, err = announceList(node); err != nil {
		return nil, err
	}
	infoNode, err := node.LookupDict("info")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetaInfo, err)
	}
	if mi.Info, err = readInfo(infoNode); err != nil {
		return nil, err
	}
	if mi.InfoHash, err = HashNode(infoNode); err != nil {
		return nil, err
	}
	return mi, nil
}

func readInfo(node *ir.Node) (Info, error) {
	var (
		info Info
		err  error
	)
	if info.Name, err = node.LookupString("name"); err != nil {
		return info, fmt.Errorf("%w: info: %w", ErrMetaInfo, err)
	}
	if info.PieceLength, err = node.LookupInt("piece length"); err != nil {
		return info, fmt.Errorf("%w: info: %w", ErrMetaInfo, err)
	}
	if info.Pieces, err = node.LookupBytes("pieces"); err != nil {
		return info, fmt.Errorf("%w: info: %w", ErrMetaInfo, err)
	}
	if len(info.Pieces)%HashSize != 0 {
		return info, fmt.Errorf("%w: info: pieces length %d is not a multiple of %d", ErrMetaInfo, len(info.Pieces), HashSize)
	}
	private, err := optInt(node, "private")
	if err != nil {
		return info, err
	}
	info.Private = private == 1
	if node.Index("files") == -1 {
		if info.Length, err = node.LookupInt("length"); err != nil {
			return info, fmt.Errorf("%w: info: %w", ErrMetaInfo, err)
		}
		return info, nil
	}
	if node.Index("length") != -1 {
		return info, fmt.Errorf("%w: info has both length and files", ErrMetaInfo)
	}
	files, err := node.LookupList("files")
	if err != nil {
		return info, fmt.Errorf("%w: info: %w", ErrMetaInfo, err)
	}
	for i, f := range files {
		file, err := readFile(f)
		if err != nil {
			return info, fmt.Errorf("%w: %s: %w", ErrMetaInfo, ir.IndexPath("$.info.files", i), err)
		}
		info.Files = append(info.Files, file)
	}
	return info, nil
}

func readFile(node *ir.Node) (File, error) {
	var (
		file File
		err  error
	)
	if node.Type != ir.DictType {
		return file, fmt.Errorf("%w: %s", ir.ErrWrongType, node.Type)
	}
	if file.Length, err = node.LookupInt("length"); err != nil {
		return file, err
	}
	parts, err := node.LookupList("path")
	if err != nil {
		return file, err
	}
	for _, p := range parts {
		if p.Type != ir.StringType {
			return file, fmt.Errorf("%w: path element is %s", ir.ErrWrongType, p.Type)
		}
		file.Path = append(file.Path, p.Str())
	}
	return file, nil
}

func optString(node *ir.Node, key string) (string, error) {
	if node.Index(key) == -1 {
		return "", nil
	}
	s, err := node.LookupString(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetaInfo, err)
	}
	return s, nil
}

func optInt(node *ir.Node, key string) (int64, error) {
	if node.Index(key) == -1 {
		return 0, nil
	}
	v, err := node.LookupInt(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMetaInfo, err)
	}
	return v, nil
}

func announceList(node *ir.Node) ([][]string, error) {
	if node.Index("announce-list") == -1 {
		return nil, nil
	}
	tiers, err := node.LookupList("announce-list")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetaInfo, err)
	}
	res := make([][]string, 0, len(tiers))
	for _, tier := range tiers {
		if tier.Type != ir.ListType {
			return nil, fmt.Errorf("%w: announce-list tier is %s", ErrMetaInfo, tier.Type)
		}
		var urls []string
		for _, u := range tier.Values {
			if u.Type != ir.StringType {
				return nil, fmt.Errorf("%w: announce-list entry is %s", ErrMetaInfo, u.Type)
			}
			urls = append(urls, u.Str())
		}
		res = append(res, urls)
	}
	return res, nil
}

// Announces returns the distinct tracker URLs, announce-list first.
func (mi *MetaInfo) Announces() []string {
	var res []string
	for _, tier := range mi.AnnounceList {
		for _, u := range tier {
			if u != "" && !slices.Contains(res, u) {
				res = append(res, u)
			}
		}
	}
	if mi.Announce != "" && !slices.Contains(res, mi.Announce) {
		res = append(res, mi.Announce)
	}
	return res
}

// Magnet returns a magnet URI for the torrent.
func (mi *MetaInfo) Magnet() string {
	vs := url.Values{}
	if mi.Info.Name != "" {
		vs.Add("dn", mi.Info.Name)
	}
	for _, tr := range mi.Announces() {
		vs.Add("tr", tr)
	}
	u := url.URL{
		Scheme:   "magnet",
		RawQuery: "xt=urn:btih:" + mi.InfoHash.HexString(),
	}
	if len(vs) != 0 {
		u.RawQuery += "&" + vs.Encode()
	}
	return u.String()
}

// PieceHashes splits the pieces string into piece hashes.
func (info *Info) PieceHashes() []Hash {
	res := make([]Hash, len(info.Pieces)/HashSize)
	for i := range res {
		copy(res[i][:], info.Pieces[i*HashSize:])
	}
	return res
}

func (info *Info) IsDir() bool { return len(info.Files) != 0 }

func (info *Info) TotalLength() int64 {
	if !info.IsDir() {
		return info.Length
	}
	var res int64
	for _, f := range info.Files {
		res += f.Length
	}
	return res
}
