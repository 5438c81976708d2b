package main

import (
	"fmt"

	"github.com/fwojciec/htmlcheck"
)

// Run grades the document and writes the result as indented JSON to stdout.
// A failed check is reported on stdout in place of the JSON and is not
// returned, so the process still exits with status 0.
func (c *CheckCmd) Run(deps *Dependencies) error {
	result, err := deps.Grader.Grade(deps.Ctx, c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "error: %s\n", htmlcheck.ErrorMessage(err))
		return nil
	}

	out, err := htmlcheck.FormatResult(result)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "error: %s\n", htmlcheck.ErrorMessage(err))
		return nil
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
