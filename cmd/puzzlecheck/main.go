// Command puzzlecheck verifies generated chess puzzles and scores attempts.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/chesspuzzle-go/internal/config"
	"github.com/lgbarn/chesspuzzle-go/internal/output"
	"github.com/lgbarn/chesspuzzle-go/internal/puzzle"
	"github.com/lgbarn/chesspuzzle-go/internal/service"
	"github.com/lgbarn/chesspuzzle-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code:
// 0 on success, 1 when a request was rejected or failed, 2 on usage errors.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "puzzlecheck:", err)
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "puzzlecheck version %s\n", programVersion)
		return 0
	}

	mode, err := opts.mode()
	if err != nil {
		fmt.Fprintln(stderr, "puzzlecheck:", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "puzzlecheck:", err)
		return 2
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "puzzlecheck:", err)
		return 2
	}
	defer logger.Sync() //nolint:errcheck

	cfg.Output.Writer = stdout
	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(stderr, "puzzlecheck:", err)
		return 1
	}

	w := output.NewJSONWriterSingle(cfg.Output)
	report, err := app.dispatch(ctx, mode, opts, stdin)
	if err != nil {
		w.WriteReport(output.ErrorReport{Error: err.Error(), Kind: service.ErrorKind(err)}) //nolint:errcheck
		return 1
	}
	if err := w.WriteReport(report); err != nil {
		fmt.Fprintln(stderr, "puzzlecheck:", err)
		return 1
	}
	return 0
}

// app holds what a single run needs.
type app struct {
	svc    *service.Service
	logger *zap.Logger
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	var st store.Store = store.NewMemory()
	if !cfg.Store.InMemory() {
		fs, err := store.NewFS(cfg.Store.Dir)
		if err != nil {
			return nil, err
		}
		st = fs
	}

	svc, err := service.New(cfg, st, logger)
	if err != nil {
		return nil, err
	}
	if !cfg.Store.InMemory() {
		if err := svc.LoadKnownPositions(ctx); err != nil {
			return nil, err
		}
	}
	return &app{svc: svc, logger: logger}, nil
}

func (a *app) dispatch(ctx context.Context, mode string, opts *options, stdin io.Reader) (any, error) {
	switch mode {
	case "verify":
		return a.verify(ctx, opts)
	case "candidates":
		return a.batch(ctx, opts, stdin)
	case "text":
		return a.fromText(ctx, opts, stdin)
	case "solve":
		return a.svc.Solve(ctx, opts.solve, splitMoves(opts.moves), opts.elapsed)
	case "show":
		return a.show(ctx, opts.show)
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

func (a *app) verify(ctx context.Context, opts *options) (any, error) {
	moves := splitMoves(opts.verify)
	c := &puzzle.Candidate{
		MoveCount:  len(moves),
		Moves:      moves,
		Title:      opts.title,
		Difficulty: opts.diff,
	}
	if opts.save {
		return a.svc.CreatePuzzle(ctx, c)
	}
	return a.svc.Verify(c)
}

// batchReport is printed by -candidates.
type batchReport struct {
	Results []service.BatchResult `json:"results"`
	Saved   []string              `json:"saved,omitempty"`
}

func (a *app) batch(ctx context.Context, opts *options, stdin io.Reader) (any, error) {
	r, closeFn, err := openInput(opts.candidates, stdin)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	candidates, err := readCandidates(r)
	if err != nil {
		return nil, err
	}

	report := &batchReport{Results: a.svc.VerifyBatch(ctx, candidates)}
	if !opts.save {
		return report, nil
	}
	for i, res := range report.Results {
		if !res.Accepted || res.DuplicateOf != nil {
			continue
		}
		p, err := a.svc.CreatePuzzle(ctx, candidates[i])
		if err != nil {
			return nil, err
		}
		report.Saved = append(report.Saved, p.ID)
	}
	return report, nil
}

func (a *app) fromText(ctx context.Context, opts *options, stdin io.Reader) (any, error) {
	r, closeFn, err := openInput(opts.text, stdin)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return a.svc.CreateFromText(ctx, string(text))
}

// showReport is printed by -show.
type showReport struct {
	Puzzle   *puzzle.Puzzle    `json:"puzzle"`
	Attempts []*puzzle.Attempt `json:"attempts"`
}

func (a *app) show(ctx context.Context, id string) (any, error) {
	p, err := a.svc.Puzzle(ctx, id)
	if err != nil {
		return nil, err
	}
	attempts, err := a.svc.Attempts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &showReport{Puzzle: p, Attempts: attempts}, nil
}

// openInput opens path, or returns stdin for "-".
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
