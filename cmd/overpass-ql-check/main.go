// Command overpass-ql-check is the CLI front-end for the OverpassQL static
// syntax checker: everything in this package is external collaborator
// territory (spec.md §1) — argument parsing, file I/O, and output
// formatting, wired onto the overpassql.Checker façade.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/urfave/cli/v3"

	overpassql "github.com/overpassql/checker"
	"github.com/overpassql/checker/internal/obslog"
)

var version = "dev"

func main() {
	log := obslog.New()
	defer log.Sync() //nolint:errcheck

	app := &cli.Command{
		Name:      "overpass-ql-check",
		Version:   version,
		Usage:     "Static syntax checker for OverpassQL",
		ArgsUsage: "[query-string]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read query from a file"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print tokens and full diagnostic text"},
			&cli.BoolFlag{Name: "test", Usage: "run a built-in smoke test"},
		},
		Action: runAction,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "overpass-ql-check: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// usageError marks a malformed invocation found by runAction (missing or
// unreadable file, non-UTF-8 file, no query given) so exitCodeFor can tell
// it apart from a merely invalid query. Flag-parsing errors from the cli
// library are not wrapped in it; exitCodeFor maps them to 2 by default.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// invalidQueryError marks "the query parsed but contains syntax errors" so
// main can exit 1 instead of 2.
type invalidQueryError struct{}

func (invalidQueryError) Error() string { return "invalid query" }

func exitCodeFor(err error) int {
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	var ie invalidQueryError
	if errors.As(err, &ie) {
		return 1
	}
	return 2
}

func runAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("test") {
		return runSmokeTest()
	}

	query, err := resolveQuery(cmd)
	if err != nil {
		return usageError{err}
	}

	verbose := cmd.Bool("verbose")
	c := overpassql.NewChecker()
	if verbose {
		for _, tok := range c.CheckSyntax(query).Tokens {
			fmt.Println(tok)
		}
		if !c.ValidateQuery(query, true) {
			return invalidQueryError{}
		}
		return nil
	}

	result := c.CheckSyntax(query)
	if result.Valid {
		fmt.Println("Valid")
		return nil
	}
	fmt.Printf("Invalid (%d errors, %d warnings)\n", len(result.Errors), len(result.Warnings))
	return invalidQueryError{}
}

func resolveQuery(cmd *cli.Command) (string, error) {
	if path := cmd.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		if !isValidUTF8(data) {
			return "", fmt.Errorf("%s is not valid UTF-8", path)
		}
		return string(data), nil
	}
	if cmd.Args().Len() == 0 {
		return "", errors.New("expected a query string, -f <path>, or --test")
	}
	return cmd.Args().First(), nil
}

func isValidUTF8(data []byte) bool {
	return utf8.Valid(data)
}

func runSmokeTest() error {
	const sample = "node[amenity=restaurant];out;"
	c := overpassql.NewChecker()
	result := c.CheckSyntax(sample)
	if !result.Valid {
		return fmt.Errorf("smoke test query unexpectedly invalid: %d errors", len(result.Errors))
	}
	fmt.Fprintln(io.Discard, result.Tokens) // tokens are exercised, not printed, in the smoke test
	fmt.Println("smoke test: ok")
	return nil
}
