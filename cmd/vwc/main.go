package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chriscorrea/vwc/internal/app"
	"github.com/chriscorrea/vwc/internal/counter"
	"github.com/chriscorrea/vwc/internal/locale"
	"github.com/chriscorrea/vwc/internal/platform"
	"github.com/chriscorrea/vwc/internal/preview"
)

var version = "dev"

// streams bundles the process's standard streams so tests can replace them.
type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// totalValue is the --total flag.
type totalValue struct {
	mode *platform.TotalMode
}

func (t totalValue) String() string {
	if t.mode == nil {
		return platform.TotalAuto.String()
	}
	return t.mode.String()
}

func (t totalValue) Set(s string) error {
	m, err := platform.ParseTotalMode(s)
	if err != nil {
		return err
	}
	*t.mode = m
	return nil
}

func (t totalValue) Type() string { return "WHEN" }

var _ pflag.Value = totalValue{}

// fieldFlag ties a count field to its command-line spelling.
type fieldFlag struct {
	field     counter.Field
	name      string
	shorthand string
	usage     string
}

var fieldFlags = []fieldFlag{
	{counter.Bytes, "bytes", "c", "print the byte counts"},
	{counter.Chars, "chars", "m", "print the character counts"},
	{counter.Lines, "lines", "l", "print the newline counts"},
	{counter.Words, "words", "w", "print the word counts"},
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(w io.Writer, debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// resolveVariant turns the platform setting into a variant, probing the
// host when it is "auto".
func resolveVariant(ctx context.Context, setting string) (platform.Variant, error) {
	v, auto, err := platform.ParseVariant(setting)
	if err != nil {
		return v, err
	}
	if auto {
		v = platform.Detect(ctx, runtime.GOOS, platform.ExecProbe)
	}
	return v, nil
}

// newRootCmd builds the command line of the wc implementation f
// reproduces. status receives the exit status of a completed run.
func newRootCmd(progname string, f platform.Formatter, s settings, std streams, status *int) *cobra.Command {
	var (
		total      platform.TotalMode
		files0From string
		debug      bool
		showVer    bool
	)
	flags := f.Flags()

	cmd := &cobra.Command{
		Use:   progname + " [OPTION]... [FILE]...",
		Short: "Print newline, word, and byte counts for each file",
		Long: `Print newline, word, and byte counts for each FILE, and a total line if
more than one FILE is specified. A word is a non-zero-length sequence of
printable characters delimited by white space.

With no FILE, or when FILE is -, read standard input.

Output follows the wc of the selected platform (VWC_PLATFORM: auto, gnu,
bsd, busybox or generic).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				setupLogger(std.stderr, true)
			}

			if showVer {
				fmt.Fprintf(std.stdout, "%s (vwc) %s\n", progname, version)
				return nil
			}

			if files0From != "" && len(args) > 0 {
				return fmt.Errorf("extra operand '%s'\nfile operands cannot be combined with --files0-from", args[0])
			}

			var fields counter.FieldSet
			for _, ff := range fieldFlags {
				if on, _ := cmd.Flags().GetBool(ff.name); on {
					fields = fields.With(ff.field)
				}
			}
			if flags.MaxLineLength {
				if on, _ := cmd.Flags().GetBool("max-line-length"); on {
					fields = fields.With(counter.MaxLineLength)
				}
			}

			enc := locale.Lookup(locale.FromEnv())
			p := preview.New(std.stderr, s.previewEnabled(preview.IsTerminal(std.stderr)), s.PreviewInterval,
				preview.WithColumns(preview.Columns(std.stderr)))

			res, err := app.Run(cmd.Context(), app.Config{
				Names:      args,
				Files0From: files0From,
				Fields:     fields,
				Total:      total,
				Formatter:  f,
				Encoding:   enc,
				Progname:   progname,
				Stdin:      std.stdin,
				Stdout:     std.stdout,
				Stderr:     std.stderr,
				Preview:    p,
				ChunkSize:  s.ChunkSize,
			})
			if err != nil {
				// not a usage error, so no --help hint
				fmt.Fprintf(std.stderr, "%s: %v\n", progname, err)
				*status = 1
				return nil
			}

			slog.Debug("Run finished", "entries", res.Entries, "failed", res.Failed)
			if res.Failed > 0 {
				*status = 1
			}
			return nil
		},
	}

	cmd.SetIn(std.stdin)
	cmd.SetOut(std.stdout)
	cmd.SetErr(std.stderr)

	for _, ff := range fieldFlags {
		cmd.Flags().BoolP(ff.name, ff.shorthand, false, ff.usage)
		// pflag needs a long name; variants without long options hide it
		if !flags.LongCounts {
			_ = cmd.Flags().MarkHidden(ff.name)
		}
	}

	if flags.MaxLineLength {
		cmd.Flags().BoolP("max-line-length", "L", false, "print the maximum display width")
		if !flags.LongMaxLineLength {
			_ = cmd.Flags().MarkHidden("max-line-length")
		}
	}

	if flags.Files0From {
		cmd.Flags().StringVar(&files0From, "files0-from", "",
			"read input from the files specified by NUL-terminated names in file F;\nIf F is - then read names from standard input")
	}

	if flags.Total {
		cmd.Flags().Var(totalValue{mode: &total}, "total",
			"when to print a line with total counts;\nWHEN can be: auto, always, only, never")
	}

	if flags.Version {
		cmd.Flags().BoolVar(&showVer, "version", false, "output version information and exit")
	}

	cmd.Flags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	_ = cmd.Flags().MarkHidden("debug")

	return cmd
}

// run executes vwc and returns the process exit status.
func run(ctx context.Context, progname string, args []string, std streams) int {
	setupLogger(std.stderr, false)
	s, err := loadSettings(newViper())
	if err != nil {
		fmt.Fprintf(std.stderr, "%s: %v\n", progname, err)
		return 1
	}
	setupLogger(std.stderr, s.Debug)

	variant, err := resolveVariant(ctx, s.Platform)
	if err != nil {
		fmt.Fprintf(std.stderr, "%s: %v\n", progname, err)
		return 1
	}
	slog.Debug("Settings loaded", "platform", variant, "preview", s.Preview,
		"previewInterval", s.PreviewInterval, "chunkSize", s.ChunkSize)

	status := 0
	cmd := newRootCmd(progname, platform.New(variant), s, std, &status)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(std.stderr, "%s: %v\nTry '%s --help' for more information.\n", progname, err, progname)
		return 1
	}
	return status
}

func main() {
	stop := handleSignals(os.Stderr, os.Exit)

	progname := filepath.Base(os.Args[0])
	code := run(context.Background(), progname, os.Args[1:], streams{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	})

	stop()
	os.Exit(code)
}
