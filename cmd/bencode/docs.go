package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/bencode/dump"
	"github.com/signadot/bencode/encode"
	"github.com/signadot/bencode/format"
	"github.com/signadot/bencode/gomap"
	"github.com/signadot/bencode/ir"
	"github.com/signadot/bencode/parse"
)

func readFile(file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}

// decodeDocs decodes d, a concatenation of bencoded values or a single
// yaml or json document depending on f.
func (cfg *MainConfig) decodeDocs(f format.Format, d []byte) ([]*ir.Node, error) {
	switch f {
	case format.BencodeFormat:
		return parse.ParseAll(d, cfg.parseOpts()...)
	case format.YAMLFormat, format.JSONFormat:
		node, err := gomap.FromYAML(d)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{node}, nil
	default:
		return nil, fmt.Errorf("%w: cannot read %s", format.ErrBadFormat, f)
	}
}

func (cfg *MainConfig) loadFile(file string) ([]*ir.Node, error) {
	d, err := readFile(file)
	if err != nil {
		return nil, err
	}
	docs, err := cfg.decodeDocs(cfg.inFormat(file), d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return docs, nil
}

// loadOne loads a file which must hold a single document.
func (cfg *MainConfig) loadOne(file string) (*ir.Node, error) {
	docs, err := cfg.loadFile(file)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("%s holds %d documents, expected 1", file, len(docs))
	}
	return docs[0], nil
}

// eachDoc calls fn on every document of every file, stdin if files is
// empty.
func (cfg *MainConfig) eachDoc(files []string, fn func(file string, node *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := cfg.loadFile(file)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := fn(file, doc); err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
		}
	}
	return nil
}

type docWriter struct {
	cfg *MainConfig
	w   io.Writer
	f   format.Format
	n   int
}

func (cfg *MainConfig) newDocWriter(w io.Writer, def format.Format) *docWriter {
	return &docWriter{cfg: cfg, w: w, f: cfg.outFormat(def)}
}

func (dw *docWriter) write(node *ir.Node) error {
	if dw.n > 0 && dw.f == format.YAMLFormat {
		if _, err := io.WriteString(dw.w, "---\n"); err != nil {
			return err
		}
	}
	dw.n++
	var (
		d   []byte
		err error
	)
	switch dw.f {
	case format.BencodeFormat:
		return encode.EncodeTo(node, dw.w, dw.cfg.encOpts()...)
	case format.DumpFormat:
		return dump.Dump(node, dw.w, dw.cfg.dumpOpts(dw.w)...)
	case format.YAMLFormat:
		d, err = gomap.ToYAML(node)
	case format.JSONFormat:
		d, err = gomap.ToJSON(node)
	default:
		return fmt.Errorf("%w: cannot write %s", format.ErrBadFormat, dw.f)
	}
	if err != nil {
		return fmt.Errorf("error encoding result %d: %w", dw.n, err)
	}
	if !bytes.HasSuffix(d, []byte("\n")) {
		d = append(d, '\n')
	}
	_, err = dw.w.Write(d)
	return err
}
