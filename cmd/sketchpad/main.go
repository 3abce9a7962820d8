// Package main is the entry point for the sketchpad command.
//
// sketchpad runs a YAML or Lua action script against a fresh document and
// writes the resulting canvas as PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/sketchpad/internal/app"
	"github.com/dshills/sketchpad/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errHelp signals that usage or version was printed and the run is done.
var errHelp = errors.New("help requested")

type options struct {
	app.Options

	Script string
	Output string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stdout, stderr)
	if errors.Is(err, errHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	opts.LogOutput = stderr

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	logger := application.Logger()

	doc, err := application.NewDocument(opts.Script)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer application.CloseDocument(doc.Name)

	// Handle signals for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	runner := script.NewRunner(doc, logger)
	if err := runner.RunFile(ctx, opts.Script); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := writeOutput(doc, opts.Output, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("sketch rendered",
		"script", opts.Script,
		"output", opts.Output,
		"drawables", doc.Len(),
		"undo", doc.History().UndoCount(),
		"redo", doc.History().RedoCount(),
	)
	return 0
}

// writeOutput renders doc to path, or to stdout when path is "-".
func writeOutput(doc *app.Document, path string, stdout io.Writer) (err error) {
	if path == "-" {
		return doc.WritePNG(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	return doc.WritePNG(f)
}

func parseFlags(args []string, stdout, stderr io.Writer) (options, error) {
	var opts options
	var showVersion bool
	var showHelp bool

	fs := flag.NewFlagSet("sketchpad", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.Output, "output", "sketch.png", "Output PNG path, or - for stdout")
	fs.StringVar(&opts.Output, "o", "sketch.png", "Output PNG path (shorthand)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Sketchpad - scripted drawing with undo/redo\n\n")
		fmt.Fprintf(stderr, "Usage: sketchpad [options] script.{yaml,yml,lua}\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  sketchpad steps.yaml            Render to sketch.png\n")
		fmt.Fprintf(stderr, "  sketchpad -o out.png draw.lua   Render a Lua script\n")
		fmt.Fprintf(stderr, "  sketchpad -o - steps.yaml       Write PNG to stdout\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errHelp
		}
		return opts, err
	}

	if showHelp {
		fs.Usage()
		return opts, errHelp
	}

	if showVersion {
		fmt.Fprintf(stdout, "Sketchpad %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, errHelp
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected exactly one script, got %d", fs.NArg())
	}
	opts.Script = fs.Arg(0)

	return opts, nil
}
