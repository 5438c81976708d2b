package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/fs"
	"github.com/fwojciec/htmlcheck/grade"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Grader *grade.Grader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Checks  string        `short:"c" placeholder:"check_file" default:"checks.json" help:"Path to checks.json"`
	File    string        `short:"f" placeholder:"html_file" default:"index.html" help:"Path to index.html"`
	URL     string        `short:"u" name:"html_url" aliases:"url" placeholder:"html_url" help:"URL to index.html; takes precedence over --file"`
	Render  bool          `short:"r" help:"Render the URL in headless Chrome before checking"`
	Timeout time.Duration `short:"t" default:"0s" help:"HTTP timeout for --html_url (0 means none)"`
	Verbose bool          `short:"v" help:"Log progress to stderr"`
}

// Config validates the required local files and returns the run
// configuration. The checks file is validated first. The HTML file is
// validated even when a URL is given.
func (c *CLI) Config() (htmlcheck.Config, error) {
	checks, err := fs.RequireFile(c.Checks)
	if err != nil {
		return htmlcheck.Config{}, err
	}

	file, err := fs.RequireFile(c.File)
	if err != nil {
		return htmlcheck.Config{}, err
	}

	return htmlcheck.Config{
		ChecksFile: checks,
		HTMLFile:   file,
		URL:        c.URL,
	}, nil
}

// CheckCmd runs a check and reports its result.
type CheckCmd struct {
	Config htmlcheck.Config
}
