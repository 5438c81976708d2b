package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/fs"
	"github.com/fwojciec/htmlcheck/goquery"
	"github.com/fwojciec/htmlcheck/grade"
	hchttp "github.com/fwojciec/htmlcheck/http"
	"github.com/fwojciec/htmlcheck/rod"
	hcslog "github.com/fwojciec/htmlcheck/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, htmlcheck.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the fetcher chosen from flags. Set before calling Run().
	Fetcher htmlcheck.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. It returns an error only
// for fatal validation failures, such as a required file that does not
// exist. Failures of the check itself are reported on stdout.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("htmlcheck"),
		kong.Description("Check an HTML document for elements matching CSS selectors"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if exited {
		// Help was printed while parsing the other flags.
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := cli.Config()
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	fetcher := m.Fetcher
	if fetcher == nil && cfg.UsesURL() {
		if cli.Render {
			rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = hchttp.NewFetcher(hchttp.WithTimeout(cli.Timeout))
		}
		defer fetcher.Close()
	}

	deps.Grader = &grade.Grader{
		Documents: hcslog.NewLoggingDocumentReader(fs.NewDocumentReader(), logger),
		Checks:    hcslog.NewLoggingChecksLoader(fs.NewChecksLoader(), logger),
		Evaluator: hcslog.NewLoggingEvaluator(goquery.NewEvaluator(), logger),
	}
	if fetcher != nil {
		deps.Grader.Fetcher = hcslog.NewLoggingFetcher(fetcher, logger)
	}

	cmd := &CheckCmd{Config: cfg}
	return cmd.Run(deps)
}

// newLogger returns a debug-level text logger on w when verbose is set,
// and a logger that discards everything otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
