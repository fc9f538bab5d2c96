package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wotd"
	"github.com/fwojciec/wotd/duden"
	wotdhttp "github.com/fwojciec/wotd/http"
	"github.com/fwojciec/wotd/pipeline"
	wotdslog "github.com/fwojciec/wotd/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		os.Exit(1)
	}
}

// errorText prints application errors by their caller facing message; the
// cause has already been logged.
func errorText(err error) string {
	var e *wotd.Error
	if errors.As(err, &e) {
		return "error: " + e.Message
	}
	return err.Error()
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wotd"),
		kong.Description("Fetch the Duden word of the day as JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wotd --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose, cli.LogJSON)

	var lookup LookupFlags
	switch kongCtx.Command() {
	case "serve":
		lookup = cli.Serve.LookupFlags
	case "fetch":
		lookup = cli.Fetch.LookupFlags
	}
	deps.WordService = newWordService(lookup, deps.Logger)

	return kongCtx.Run(deps)
}

// newWordService wires the lookup pipeline with logging around the
// network boundary and the service itself.
func newWordService(flags LookupFlags, logger *slog.Logger) wotd.WordService {
	fetcher := wotdhttp.NewFetcher(wotdhttp.WithTimeout(flags.Timeout))

	svc := &pipeline.Service{
		Fetcher:   wotdslog.NewLoggingFetcher(fetcher, logger),
		Resolver:  duden.NewResolver(),
		Extractor: duden.NewExtractor(),
		BaseURL:   flags.BaseURL,
		Sentinel:  flags.Sentinel,
		DebugInfo: flags.DebugInfo,
	}
	return wotdslog.NewLoggingWordService(svc, logger)
}

func newLogger(w io.Writer, verbose, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
