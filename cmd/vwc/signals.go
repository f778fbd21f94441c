package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// exitCodeFor returns the shell-style status for a terminating signal.
func exitCodeFor(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

// handleSignals exits the process on SIGINT, SIGTERM or SIGHUP. An
// interrupt first ends the line a preview frame may have left open.
// The returned func stops the handler.
func handleSignals(stderr io.Writer, exit func(code int)) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigChan:
			if sig == os.Interrupt {
				fmt.Fprint(stderr, "\n")
			}
			exit(exitCodeFor(sig))
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
