package overpassql

import "strings"

// parseParenFilter validates the paren_filter production:
//
//	paren_filter := signed_number (',' signed_number)*            // bbox, positional
//	              | IDENT ':' value (',' value)*                   // bbox/around/id/user/...
//	              | IDENT '.' IDENT                                 // area.set, pivot.set, is_in.set
//	              | IDENT                                           // bare member/area filter
//
// (spec.md §4.3 grammar). The keyword set itself (parenFilterKeywords) isn't
// enforced strictly here: an unrecognized IDENT is still parsed by shape, the
// same way an unknown [out:...] value only warns rather than errors, since
// the grammar's closed keyword list is a recommendation from the surrounding
// productions rather than something the bracket/paren syntax itself can
// check without knowing every filter's semantics.
func (p *Parser) parseParenFilter() {
	open := p.Consume() // '('
	switch {
	case p.PeekKind(IDENTIFIER):
		ident := p.Consume()
		key, prefix := splitKeyColon(ident.Lexeme)
		p.parseParenFilterValues(key, prefix, ident)
		if _, ok := p.Match(RPAREN); !ok {
			p.errorAt(open, "Expected ')' to close filter.")
			p.scanBalancedParen(open)
		}
	case p.PeekKind(NUMBER), p.PeekKind(MINUS), p.PeekKind(PLUS):
		p.parseNumberList()
		if _, ok := p.Match(RPAREN); !ok {
			p.errorAt(open, "Expected ')' to close filter.")
			p.scanBalancedParen(open)
		}
	default:
		// Unrecognized paren-filter shape (e.g. a bare recursion-like form):
		// accept permissively by balance rather than rejecting the whole
		// statement over one filter's internals, consistent with evaluator
		// expressions being a Non-goal.
		p.scanBalancedParen(open)
	}
}

// parseParenFilterValues dispatches on whether the leading identifier
// carried a fused ':' (value-list form), a following '.' (dotted set
// reference form, e.g. "area.searchArea"), or neither (a bare filter name
// with nothing more to parse).
func (p *Parser) parseParenFilterValues(key, prefix string, keyTok Token) {
	if strings.Contains(keyTok.Lexeme, ":") {
		p.parseParenValue(prefix)
		for {
			if _, ok := p.Match(COMMA); !ok {
				return
			}
			p.parseParenValue("")
		}
	}

	if p.PeekKind(DOT) {
		p.Consume()
		if _, ok := p.Match(IDENTIFIER); !ok {
			p.errorHere("Expected set name after '.'.")
		}
		return
	}

	_ = key // bare filter name (e.g. member_filter "(w)"): nothing more.
}

func (p *Parser) parseParenValue(prefix string) string {
	if prefix != "" {
		if isAllDigits(prefix) && p.PeekKind(DOT) {
			save := p.idx
			p.Consume() // '.'
			if num, ok := p.Match(NUMBER); ok {
				return prefix + "." + num.Lexeme
			}
			p.idx = save
		}
		return prefix
	}
	if sign, ok := p.MatchOne(MINUS, PLUS); ok {
		if num, ok2 := p.Match(NUMBER); ok2 {
			return sign.Lexeme + num.Lexeme
		}
		p.errorAt(sign, "Expected number after sign.")
		return ""
	}
	if t, ok := p.MatchOne(STRING, NUMBER, IDENTIFIER); ok {
		return t.Lexeme
	}
	p.errorHere("Expected a filter value.")
	return ""
}

// parseNumberList validates the positional bbox form: "(south,west,north,east)".
func (p *Parser) parseNumberList() {
	p.parseSignedNumber()
	for {
		if _, ok := p.Match(COMMA); !ok {
			return
		}
		p.parseSignedNumber()
	}
}

func (p *Parser) parseSignedNumber() {
	p.MatchOne(MINUS, PLUS)
	if _, ok := p.Match(NUMBER); !ok {
		p.errorHere("Expected a number.")
	}
}
