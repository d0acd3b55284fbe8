package overpassql

import (
	"fmt"
	"os"
)

// CheckResult is the aggregated outcome of checking one query: a validity
// flag, the ordered diagnostics that produced it, and the token stream the
// lexer built along the way (spec.md §3 "CheckResult").
type CheckResult struct {
	Valid    bool
	Errors   []Diagnostic
	Warnings []Diagnostic
	Tokens   []Token
}

// Checker wires the Sink, lexer, and parser into the two public operations
// spec.md §4.4 calls out. It holds no per-call state: every CheckSyntax call
// owns its own token list and diagnostic sink, so one Checker value is safe
// to reuse or share across goroutines.
type Checker struct{}

// NewChecker returns a ready-to-use Checker. It's a zero-cost value; callers
// may equally use the Checker{} zero value directly.
func NewChecker() *Checker {
	return &Checker{}
}

// CheckSyntax runs the lexer then the parser over query and returns the
// aggregated result (spec.md §4.4 "check_syntax").
func (c *Checker) CheckSyntax(query string) CheckResult {
	sink := NewSink()
	tokens := lex(query, sink)
	Parse(tokens, sink)
	return CheckResult{
		Valid:    !sink.HasErrors(),
		Errors:   sink.Errors(),
		Warnings: sink.Warnings(),
		Tokens:   tokens,
	}
}

// ValidateQuery runs CheckSyntax and, if verbose, renders every diagnostic
// to standard output in the §6 rendering format before returning validity.
func (c *Checker) ValidateQuery(query string, verbose bool) bool {
	result := c.CheckSyntax(query)
	if verbose {
		for _, d := range result.Errors {
			fmt.Fprintln(os.Stdout, d.String())
		}
		for _, d := range result.Warnings {
			fmt.Fprintln(os.Stdout, d.String())
		}
	}
	return result.Valid
}
