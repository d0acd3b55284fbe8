package overpassql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, input string) *Sink {
	t.Helper()
	sink := NewSink()
	tokens := lex(input, sink)
	Parse(tokens, sink)
	return sink
}

func TestParserScenario1SimpleQuery(t *testing.T) {
	sink := parseQuery(t, `node[amenity=restaurant];out;`)
	assert.Empty(t, sink.Errors())
}

func TestParserScenario2SettingsAndAssignment(t *testing.T) {
	sink := parseQuery(t, `[out:json][timeout:25];area[name="Berlin"]->.searchArea;node(area.searchArea)[amenity=restaurant];out center;`)
	assert.Empty(t, sink.Errors())
}

func TestParserScenario3UnionShorthandAndParenFilters(t *testing.T) {
	sink := parseQuery(t, `[out:json][bbox:52.5,13.3,52.6,13.5];(node[amenity=cafe][opening_hours~".*"](around:500,52.52,13.41);way[building][addr:city="Berlin"];);out geom;`)
	assert.Empty(t, sink.Errors())
}

func TestParserScenario4MissingSemicolon(t *testing.T) {
	sink := parseQuery(t, `node[amenity=restaurant]out;`)
	assert.NotEmpty(t, sink.Errors())
}

func TestParserScenario5InvalidRegex(t *testing.T) {
	sink := parseQuery(t, `node[amenity~"[unterminated"];out;`)
	require.NotEmpty(t, sink.Errors())
	found := false
	for _, d := range sink.Errors() {
		if containsSubstring(d.Message, "Invalid regex") {
			found = true
		}
	}
	assert.True(t, found, "expected an 'Invalid regex' diagnostic, got %v", sink.Errors())
}

func TestParserScenario6ForLoopAndMakeStatement(t *testing.T) {
	sink := parseQuery(t, `[out:json][timeout:25];{{geocodeArea:"Hamburg"}}->.searchArea;way["highway"](area.searchArea);for(t["highway"]){make stat_highway_\1,val=count(ways);}out;`)
	assert.Empty(t, sink.Errors())
}

func TestParserScenario7UnknownOutFormatWarnsOnly(t *testing.T) {
	sink := parseQuery(t, `[out:unknownfmt];node;out;`)
	assert.Empty(t, sink.Errors())
	assert.NotEmpty(t, sink.Warnings())
}

func TestParserScenario8UnterminatedComment(t *testing.T) {
	sink := parseQuery(t, `/* unterminated comment node;`)
	assert.NotEmpty(t, sink.Errors())
}

func TestParserValidEqualsErrorsEmpty(t *testing.T) {
	valid := []string{
		`node[amenity=restaurant];out;`,
		`[out:json];node;out;`,
	}
	invalid := []string{
		`node[amenity=restaurant]out;`,
		`/* nope`,
	}
	for _, q := range valid {
		sink := parseQuery(t, q)
		assert.Equal(t, len(sink.Errors()) == 0, true, q)
	}
	for _, q := range invalid {
		sink := parseQuery(t, q)
		assert.Equal(t, len(sink.Errors()) > 0, true, q)
	}
}

func TestParserRecoveryAfterMissingSemicolonYieldsOneErrorPerStatement(t *testing.T) {
	sink := parseQuery(t, `node[amenity=restaurant]way[building];out;`)
	assert.Len(t, sink.Errors(), 1)
}

func TestParserNestingLimit(t *testing.T) {
	open := ""
	for i := 0; i < maxNestingDepth; i++ {
		open += "union{"
	}
	close := ""
	for i := 0; i < maxNestingDepth; i++ {
		close += "}"
	}
	sink := parseQuery(t, open+close)
	assert.Empty(t, sink.Errors())

	deeper := "union{" + open + close + "}"
	sink2 := parseQuery(t, deeper)
	assert.NotEmpty(t, sink2.Errors())
}

func TestParserElseWithoutIfIsUnexpectedToken(t *testing.T) {
	sink := parseQuery(t, `else{node;out;}`)
	assert.NotEmpty(t, sink.Errors())
}

func TestParserMultipleMinusInShorthand(t *testing.T) {
	sink := parseQuery(t, `(node;-way;-rel;);out;`)
	assert.NotEmpty(t, sink.Errors())
}

func TestParserRecursionOperatorsStandaloneOnly(t *testing.T) {
	sink := parseQuery(t, `node;<;>;<<;>>;out;`)
	assert.Empty(t, sink.Errors())
}

func TestParserIdempotence(t *testing.T) {
	const q = `node[amenity=restaurant];out;`
	c := NewChecker()
	r1 := c.CheckSyntax(q)
	r2 := c.CheckSyntax(q)
	assert.Equal(t, r1.Valid, r2.Valid)
	assert.Equal(t, len(r1.Errors), len(r2.Errors))
	assert.Equal(t, len(r1.Tokens), len(r2.Tokens))
}

func TestParserWhitespaceOnlyInputIsValid(t *testing.T) {
	sink := parseQuery(t, "   \n\t  // comment\n")
	assert.Empty(t, sink.Errors())
}

func TestParserRepeatedEmptyStatementsStayValid(t *testing.T) {
	sink := parseQuery(t, `node;out;` + repeatSemicolons(50))
	assert.Empty(t, sink.Errors())
}

func repeatSemicolons(n int) string {
	out := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		out = append(out, ';', '\n')
	}
	return string(out)
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
