package main

import (
	"fmt"
	"io"
	"path"
	"time"

	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode/ir"
	"github.com/signadot/bencode/torrent"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachDoc(args, func(file string, node *ir.Node) error {
		mi, err := torrent.FromNode(node)
		if err != nil {
			return err
		}
		return writeInfo(cc.Out, file, mi, cfg.Files)
	})
}

func writeInfo(w io.Writer, file string, mi *torrent.MetaInfo, files bool) error {
	in := &mi.Info
	lines := []string{
		fmt.Sprintf("file:         %s", file),
		fmt.Sprintf("name:         %s", in.Name),
		fmt.Sprintf("info hash:    %s", mi.InfoHash),
		fmt.Sprintf("magnet:       %s", mi.Magnet()),
		fmt.Sprintf("total length: %d", in.TotalLength()),
		fmt.Sprintf("piece length: %d", in.PieceLength),
		fmt.Sprintf("pieces:       %d", len(in.PieceHashes())),
		fmt.Sprintf("private:      %t", in.Private),
	}
	if mi.CreationDate != 0 {
		lines = append(lines, fmt.Sprintf("created:      %s", time.Unix(mi.CreationDate, 0).UTC().Format(time.RFC3339)))
	}
	if mi.CreatedBy != "" {
		lines = append(lines, fmt.Sprintf("created by:   %s", mi.CreatedBy))
	}
	if mi.Comment != "" {
		lines = append(lines, fmt.Sprintf("comment:      %s", mi.Comment))
	}
	for _, tr := range mi.Announces() {
		lines = append(lines, fmt.Sprintf("tracker:      %s", tr))
	}
	if files {
		for _, f := range in.Files {
			lines = append(lines, fmt.Sprintf("  %12d %s", f.Length, path.Join(f.Path...)))
		}
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
