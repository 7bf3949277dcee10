// Command inspect prints the occupied slots of an encoded inventory grouped
// by region. It reads from the file given as the first argument, or stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/netitem/internal/catalog"
	"github.com/osse101/netitem/internal/inventory"
	"github.com/osse101/netitem/internal/modcodec"
	"github.com/osse101/netitem/internal/netitem"
)

func main() {
	catalogPath := flag.String("catalog", "", "item catalog used to resolve names")
	strict := flag.Bool("strict", false, "fail on the first slot that does not parse")
	flag.Parse()

	in := io.Reader(os.Stdin)
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", path, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var names namer = noNames{}
	if *catalogPath != "" {
		c, err := catalog.Open(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}
		names = c
	}

	mode := inventory.Lenient
	if *strict {
		mode = inventory.Strict
	}

	// Diagnostics go to stderr so stdout stays a clean listing
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := inspect(os.Stdout, in, names, mode, log); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

type namer interface {
	DisplayName(netID int, prefix uint8) string
}

type noNames struct{}

func (noNames) DisplayName(int, uint8) string { return "" }

func inspect(w io.Writer, r io.Reader, names namer, mode inventory.Mode, log *slog.Logger) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read inventory: %w", err)
	}

	ext, err := modcodec.New(log)
	if err != nil {
		return err
	}
	codec := netitem.NewCodec(ext, netitem.WithLogger(log))

	snap, err := inventory.Decode(codec, strings.TrimSpace(string(raw)), mode)
	if err != nil {
		if mode == inventory.Strict || errors.Is(err, inventory.ErrTooManySlots) {
			return err
		}
		for _, slot := range inventory.SkippedSlots(err) {
			fmt.Fprintf(w, "! slot %d skipped\n", slot)
		}
	}

	title := cases.Title(language.English)
	for _, region := range netitem.Regions() {
		recs := snap.Region(region)
		header := false
		for offset, rec := range recs {
			if rec.IsEmpty() {
				continue
			}
			if !header {
				fmt.Fprintf(w, "%s\n", title.String(strings.ReplaceAll(region.Name, "_", " ")))
				header = true
			}
			fmt.Fprintf(w, "  [%3d] %s\n", region.Start+offset, describe(rec, names))
		}
	}
	return nil
}

func describe(rec netitem.NetItem, names namer) string {
	label := names.DisplayName(rec.NetID(), rec.Prefix())
	if label == "" {
		label = fmt.Sprintf("#%d", rec.NetID())
	}
	if item, ok := rec.Item(); ok {
		if mod, isMod := item.(*modcodec.ModItem); isMod {
			label = fmt.Sprintf("%s (%s)", mod.Name, mod.Mod)
		}
	}
	return fmt.Sprintf("%s x%d", label, rec.Stack())
}
