package platform

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// probeTimeout bounds how long the system wc may take to print its help.
const probeTimeout = 2 * time.Second

// Probe runs a command and returns its combined output.
type Probe func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecProbe runs the command with os/exec.
func ExecProbe(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Detect picks the variant matching the system wc for the operating
// system goos. On Linux the installed wc is asked for its help text to
// tell BusyBox apart from GNU coreutils; probe may be nil to skip that.
func Detect(ctx context.Context, goos string, probe Probe) Variant {
	switch goos {
	case "linux":
		if probe != nil {
			// wc --help exits non-zero on BusyBox, so only the output matters
			out, err := probe(ctx, "wc", "--help")
			if bytes.Contains(out, []byte("BusyBox")) {
				slog.Debug("Detected platform", "platform", BusyBox, "goos", goos)
				return BusyBox
			}
			if err != nil {
				slog.Debug("wc probe failed", "error", err)
			}
		}
		return GNU
	case "darwin", "freebsd", "openbsd", "netbsd", "dragonfly":
		return BSD
	default:
		return Generic
	}
}
