// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesspuzzle-go/internal/config"
)

// options holds the parsed command line.
type options struct {
	// Modes
	verify     string
	candidates string
	text       string
	solve      string
	show       string

	// Mode arguments
	save    bool
	moves   string
	elapsed uint64
	title   string
	diff    int

	// Configuration
	storeDir    string
	workers     int
	minMoves    int
	maxMoves    int
	freeSeconds int
	logLevel    string
	devLog      bool
	compact     bool

	version bool
}

// newFlagSet binds every flag to opts, with defaults taken from cfg.
func newFlagSet(opts *options, cfg *config.Config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("puzzlecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Modes
	fs.StringVar(&opts.verify, "verify", "", "Verify a move list, e.g. \"e2e4,e7e5,g1f3\"")
	fs.StringVar(&opts.candidates, "candidates", "", "Batch verify candidates from a JSON array or JSON lines file (- for stdin)")
	fs.StringVar(&opts.text, "text", "", "Create a puzzle from raw generator output in this file (- for stdin)")
	fs.StringVar(&opts.solve, "solve", "", "Score an attempt at the puzzle with this ID")
	fs.StringVar(&opts.show, "show", "", "Show the puzzle with this ID and its attempts")

	// Mode arguments
	fs.BoolVar(&opts.save, "save", false, "Persist verified puzzles")
	fs.StringVar(&opts.moves, "moves", "", "Submitted moves for -solve")
	fs.Uint64Var(&opts.elapsed, "elapsed", 0, "Elapsed milliseconds for -solve")
	fs.StringVar(&opts.title, "title", "", "Puzzle title for -verify -save")
	fs.IntVar(&opts.diff, "difficulty", 1, "Puzzle difficulty for -verify -save")

	// Configuration
	fs.StringVar(&opts.storeDir, "store", cfg.Store.Dir, "Puzzle store directory (default: in memory)")
	fs.IntVar(&opts.workers, "workers", cfg.Batch.Workers, "Number of batch verification workers")
	fs.IntVar(&opts.minMoves, "min-moves", cfg.Verify.MinMoves, "Minimum plies in a puzzle")
	fs.IntVar(&opts.maxMoves, "max-moves", cfg.Verify.MaxMoves, "Maximum plies in a puzzle")
	fs.IntVar(&opts.freeSeconds, "free-seconds", cfg.Scoring.FreeSeconds, "Seconds before time is deducted from the score")
	fs.StringVar(&opts.logLevel, "log-level", cfg.Log.Level, "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.devLog, "log-dev", false, "Human-readable log output")
	fs.BoolVar(&opts.compact, "compact", false, "Print compact JSON")

	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	return fs
}

// parseFlags parses args into options and a configuration.
func parseFlags(args []string, stderr io.Writer) (*options, *config.Config, error) {
	opts := &options{}
	fs := newFlagSet(opts, config.NewConfig(), stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, applyFlags(opts), nil
}

// applyFlags builds the configuration from flag values.
func applyFlags(opts *options) *config.Config {
	cfg := config.NewConfigBuilder().
		WithMoveBounds(opts.minMoves, opts.maxMoves).
		WithFreeSeconds(opts.freeSeconds).
		WithWorkers(opts.workers).
		WithStoreDir(opts.storeDir).
		WithLogLevel(opts.logLevel).
		Build()
	cfg.Log.Development = opts.devLog
	if opts.compact {
		cfg.Output.Indent = ""
	}
	return cfg
}

// mode returns the single selected mode, or an error when zero or several
// are selected.
func (o *options) mode() (string, error) {
	var selected []string
	for name, value := range map[string]string{
		"verify":     o.verify,
		"candidates": o.candidates,
		"text":       o.text,
		"solve":      o.solve,
		"show":       o.show,
	} {
		if value != "" {
			selected = append(selected, "-"+name)
		}
	}
	switch len(selected) {
	case 0:
		return "", fmt.Errorf("one of -verify, -candidates, -text, -solve or -show is required")
	case 1:
		return selected[0][1:], nil
	default:
		return "", fmt.Errorf("only one mode may be given")
	}
}

// splitMoves splits a move list on commas and whitespace.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
