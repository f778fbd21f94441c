// Package app contains the core application logic for the vwc CLI tool.
// It counts each input, prints the rows and the total, and reports per-file
// errors, separated from CLI concerns.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chriscorrea/vwc/internal/counter"
	"github.com/chriscorrea/vwc/internal/fetch"
	"github.com/chriscorrea/vwc/internal/locale"
	"github.com/chriscorrea/vwc/internal/platform"
	"github.com/chriscorrea/vwc/internal/preview"
)

// DefaultChunkSize is the read buffer size used when Config.ChunkSize is unset.
const DefaultChunkSize = 128 * 1024

// ErrOperandsWithFiles0From is returned when file operands are combined
// with a bulk name list.
var ErrOperandsWithFiles0From = errors.New("file operands cannot be combined with --files0-from")

// Config holds all configuration options for one vwc run.
type Config struct {
	Names      []string // file operands
	Files0From string   // NUL-separated name list source; "-" is stdin
	Fields     counter.FieldSet
	Total      platform.TotalMode
	Formatter  platform.Formatter
	Encoding   locale.Encoding
	Progname   string // prefix of diagnostics

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Preview   *preview.Preview // nil disables the live preview
	ChunkSize int
}

// Result summarizes a run.
type Result struct {
	Total   counter.Counts
	Entries int // entries processed, failed ones included
	Failed  int // entries that produced a diagnostic
}

func (cfg Config) withDefaults() Config {
	if cfg.Formatter == nil {
		cfg.Formatter = platform.New(platform.Generic)
	}
	if cfg.Encoding.Name() == "" {
		cfg.Encoding = locale.Lookup(locale.UTF8)
	}
	if cfg.Progname == "" {
		cfg.Progname = "wc"
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Preview == nil {
		cfg.Preview = preview.New(nil, false, 0)
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	return cfg
}

// Run counts every entry, writing one row per entry and the total row to
// Stdout and diagnostics to Stderr.
//
// Per-entry failures are reported and counted in Result.Failed; the
// returned error is reserved for failures that stop the run (an unreadable
// name list, cancellation).
//
// ctx is checked between reads.
func Run(ctx context.Context, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	fields := cfg.Fields.OrDefault()
	f := cfg.Formatter

	entries, err := resolveEntries(cfg, f.DashIsStdin())
	if err != nil {
		return Result{}, err
	}

	width := f.ColumnWidth(platform.Layout{
		Mode:   cfg.Total,
		Fields: fields.Len(),
		Files:  fetch.Stat(entries),
	})
	slog.Debug("Starting run",
		"platform", f.Variant(),
		"fields", fields,
		"entries", len(entries),
		"width", width,
		"encoding", cfg.Encoding.Name())

	res := Result{Entries: len(entries)}
	buf := make([]byte, cfg.ChunkSize)

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		counts, err := countEntry(ctx, cfg, e, fields, buf)
		cfg.Preview.Clear()

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			if !(errors.Is(err, fetch.ErrIsDirectory) && f.DirectoryPolicy() == platform.DirZeroRow) {
				slog.Debug("Entry failed", "name", e.Name, "error", err)
				fmt.Fprintf(cfg.Stderr, "%s: %s: %s\n", cfg.Progname, displayName(e), fetch.Reason(err))
				res.Failed++
				continue
			}
			counts = counter.Counts{}
		}

		res.Total.Merge(counts)
		if cfg.Total != platform.TotalOnly {
			fmt.Fprintln(cfg.Stdout, f.FormatRow(counts.Values(fields), e.Name, width))
		}
	}

	if f.ShowTotal(cfg.Total, len(entries)) {
		label := "total"
		if cfg.Total == platform.TotalOnly {
			label = ""
		}
		fmt.Fprintln(cfg.Stdout, f.FormatRow(res.Total.Values(fields), label, width))
	}

	return res, nil
}

// resolveEntries expands the bulk name list when one is configured.
func resolveEntries(cfg Config, dashIsStdin bool) ([]fetch.Entry, error) {
	if cfg.Files0From == "" {
		return fetch.Resolve(cfg.Names, dashIsStdin), nil
	}
	if len(cfg.Names) > 0 {
		return nil, ErrOperandsWithFiles0From
	}

	names, err := fetch.ReadNameList(cfg.Files0From, cfg.Stdin)
	if err != nil {
		return nil, err
	}
	// an empty list counts nothing rather than falling back to stdin
	if len(names) == 0 {
		return nil, nil
	}
	return fetch.Resolve(names, dashIsStdin), nil
}

// countEntry streams one entry through a counter, drawing preview frames
// between reads. Named files are closed on every path.
func countEntry(ctx context.Context, cfg Config, e fetch.Entry, fields counter.FieldSet, buf []byte) (counter.Counts, error) {
	r, err := fetch.Open(e, cfg.Stdin)
	if err != nil {
		return counter.Counts{}, err
	}
	defer r.Close()

	stream := counter.New(fields, cfg.Encoding.NewDecoder())
	cfg.Preview.Start()

	// frames carry counts only; the label arrives with the final row
	render := func() string {
		snap := stream.Snapshot()
		return cfg.Formatter.FormatRow(snap.Values(fields), "", platform.PreviewWidth)
	}

	for {
		n, err := r.Read(buf)
		if n > 0 {
			stream.Feed(buf[:n])
			cfg.Preview.Tick(render)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return counter.Counts{}, fmt.Errorf("failed to read %q: %w", displayName(e), err)
		}
		if err := ctx.Err(); err != nil {
			return counter.Counts{}, err
		}
	}

	return stream.Finalize(), nil
}

// displayName is the name used in diagnostics.
func displayName(e fetch.Entry) string {
	if e.Name == "" {
		return "-"
	}
	return e.Name
}
