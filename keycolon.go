package overpassql

import "strings"

// splitKeyColon splits an IDENTIFIER lexeme on its first ':' wherever the
// grammar calls for a "keyword ':' value" shape: because identifier
// continuation characters include ':' (spec.md §4.2 rule 4), the lexer has
// already fused e.g. "out:json" or "bbox:52" into one IDENTIFIER token by
// the time the parser sees it, rather than handing back separate IDENT,
// COLON, value tokens. Plain tag keys like "addr:city" are split only so
// parseTagFilter can check whether the key part is "changed" or "date";
// otherwise the whole lexeme is the filter key, since there the colon is
// part of the OSM tag name, not a grammar separator (see SPEC_FULL.md §4.3
// and DESIGN.md).
func splitKeyColon(lexeme string) (key, valuePrefix string) {
	i := strings.IndexByte(lexeme, ':')
	if i < 0 {
		return lexeme, ""
	}
	return lexeme[:i], lexeme[i+1:]
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
