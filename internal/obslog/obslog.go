// Package obslog provides the internal debug-tracing logger for the
// overpass-ql-check CLI. It is never consulted for the required stdout
// diagnostic rendering (checker.ValidateQuery writes that directly). The
// CLI builds one at startup and flushes it on exit; the lexer and parser
// do not log through it. The zap setup follows rlch-scaf's CLI tooling.
package obslog

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

// New builds a development-mode zap logger when OVERPASS_QL_DEBUG is set to
// a truthy value, and a no-op logger otherwise, so normal CLI runs pay no
// logging overhead and never emit anything beyond the documented CLI
// output.
func New() *zap.Logger {
	if !debugEnabled() {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func debugEnabled() bool {
	v, ok := os.LookupEnv("OVERPASS_QL_DEBUG")
	if !ok {
		return false
	}
	on, err := strconv.ParseBool(v)
	return err == nil && on
}
