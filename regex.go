package overpassql

import "github.com/dlclark/regexp2"

// validateRegex compiles a regex-filter string operand ([key~"pattern"],
// [~"kpat"~"vpat"]) with regexp2 so PCRE-flavored syntax the OverpassQL
// dialect accepts (lookaheads, backreferences) doesn't falsely fail against
// Go's RE2-only regexp package. An invalid pattern is an ERROR at the
// string token's position, not a parse failure for the surrounding
// statement (spec.md §4.3 "Regex filters"). tok.Lexeme is already the
// lexer's escape-decoded string content (no surrounding quotes).
func (p *Parser) validateRegex(tok Token) {
	if _, err := regexp2.Compile(tok.Lexeme, regexp2.None); err != nil {
		p.errorAt(tok, "Invalid regex: %s", err.Error())
	}
}
