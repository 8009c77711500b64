// Command starseer turns the Yale Bright Star Catalogue into a starfile of
// positions, colors and magnitudes, and renders starfiles as skybox images.
//
// Usage:
//
//	starseer                  # bsc5.dat + TempToColor.dat -> starfile.txt
//	starseer render           # starfile.txt -> skybox.png
//	starseer version
//
// Paths and options come from environment variables or a .env file; see
// internal/config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
