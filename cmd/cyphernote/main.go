// Package main is the entry point for the cyphernote editor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/therohithborana/cyphernote/internal/app"
	"github.com/therohithborana/cyphernote/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, logFile := parseFlags()
	if logFile != nil {
		defer logFile.Close()
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(term, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	// Signals unwind through the event loop so the terminal is
	// restored on the normal path.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, *os.File) {
	var opts app.Options
	var logPath string
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logPath, "log", "", "Write diagnostics to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cyphernote - a text editor that keeps its contents to itself\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cyphernote [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+E  reveal/hide    Ctrl+Z  undo      Ctrl+Y  redo\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+B  bullet list    Ctrl+N  numbered  Ctrl+X  clear\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+C  copy all       Ctrl+S  save      Ctrl+Q  quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("cyphernote %s (%s)\n", version, commit)
		os.Exit(0)
	}

	var logFile *os.File
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		opts.Logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
		logFile = f
	}

	return opts, logFile
}
