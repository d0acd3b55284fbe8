package overpassql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinkOrdersDiagnosticsByInsertion(t *testing.T) {
	sink := NewSink()
	sink.Error(1, 1, "first")
	sink.Error(2, 5, "second")
	sink.Warning(3, 1, "only warning")

	assert.Equal(t, []string{"first", "second"}, messagesOf(sink.Errors()))
	assert.Len(t, sink.Warnings(), 1)
	assert.True(t, sink.HasErrors())
}

func TestSinkWithNoErrorsReportsHasErrorsFalse(t *testing.T) {
	sink := NewSink()
	sink.Warning(1, 1, "just a warning")
	assert.False(t, sink.HasErrors())
}

func TestDiagnosticStringFormat(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Message: "bad thing", Line: 4, Col: 7}
	assert.Equal(t, "Syntax Error at line 4, column 7: bad thing", d.String())

	w := Diagnostic{Severity: SeverityWarning, Message: "hmm", Line: 1, Col: 1}
	assert.Equal(t, "Warning at line 1, column 1: hmm", w.String())
}

func messagesOf(ds []Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Message
	}
	return out
}
