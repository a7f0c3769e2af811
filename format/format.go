package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	BencodeFormat Format = iota
	YAMLFormat
	JSONFormat
	DumpFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"b":       BencodeFormat,
		"bencode": BencodeFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"d":       DumpFormat,
		"dump":    DumpFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses a format from a file name suffix. Unknown suffixes,
// including .torrent, are bencode.
func FromPath(p string) Format {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return YAMLFormat
	case ".json":
		return JSONFormat
	default:
		return BencodeFormat
	}
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case BencodeFormat:
		return []byte("bencode"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case DumpFormat:
		return []byte("dump"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsText reports whether f is a text format, as opposed to raw bencode.
func (f Format) IsText() bool { return f != BencodeFormat }
