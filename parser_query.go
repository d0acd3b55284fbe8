package overpassql

// parseQueryType validates the query_type production:
//
//	query_type := 'node' | 'way' | 'rel' | 'relation' | 'nwr' | 'nw' | 'nr'
//	            | 'wr' | 'area' | 'is_in' | set_reference | TEMPLATE
//
// (spec.md §4.3 grammar). set_reference ('.' IDENT) and a bare TEMPLATE both
// double as the head of a query_stmt, which is how a standalone
// "set_reference ';'" statement and a template used as query input (test
// scenario "{{geocodeArea:...}}->.searchArea;") both fall out of the same
// parseQueryStatement path rather than needing their own dispatch arms.
func (p *Parser) parseQueryType() (Token, bool) {
	if p.PeekKind(DOT) {
		dot := p.Consume()
		name, ok := p.Match(IDENTIFIER)
		if !ok {
			p.errorAt(dot, "Expected set name after '.'.")
			return Token{}, false
		}
		return name, true
	}
	if p.PeekKind(TEMPLATE) {
		return p.Consume(), true
	}
	if p.PeekKind(IDENTIFIER) && queryTypeKeywords[p.Current().Lexeme] {
		return p.Consume(), true
	}
	return Token{}, false
}

// parseQueryStatement validates:
//
//	query_stmt := query_type ( '[' tag_filter ']' | '(' paren_filter ')' )*
//	              assignment_suffix? ';'
func (p *Parser) parseQueryStatement() {
	if _, ok := p.parseQueryType(); !ok {
		p.errorHere("Expected a query type.")
		p.recoverStatement()
		return
	}
	p.parseFilterList()
	if p.PeekKind(ARROW) {
		p.parseAssignmentSuffix()
	}
	p.expectSemicolon()
}

func (p *Parser) parseFilterList() {
	for {
		switch {
		case p.PeekKind(LBRACKET):
			p.parseBracketFilter()
		case p.PeekKind(LPAREN):
			p.parseParenFilter()
		default:
			return
		}
	}
}

func (p *Parser) parseBracketFilter() {
	p.Consume() // '['
	p.parseTagFilter()
	if _, ok := p.Match(RBRACKET); !ok {
		p.errorHere("Expected ']' to close filter.")
		p.skipToFilterClose(RBRACKET)
	}
}

// parseTagFilter validates:
//
//	tag_filter := '!' IDENT
//	            | IDENT
//	            | IDENT ( '=' | '!=' | '~' | '!~' ) ( STRING | IDENT | NUMBER )
//	            | '~' STRING '~' STRING
//
// "changed" and "date" are disambiguated by their leading keyword into the
// temporal-filter value-list shape ([changed:"date"] / [changed:"a","b"])
// rather than the generic operator-value shape (spec.md §4.3 "Tag filters").
func (p *Parser) parseTagFilter() {
	switch {
	case p.PeekKind(TILDE):
		p.Consume()
		kpat, ok := p.Match(STRING)
		if !ok {
			p.errorHere("Expected key regex string after '~'.")
			return
		}
		p.validateRegex(kpat)
		if _, ok := p.Match(TILDE); !ok {
			p.errorHere("Expected '~' between key and value regex.")
			return
		}
		vpat, ok := p.Match(STRING)
		if !ok {
			p.errorHere("Expected value regex string.")
			return
		}
		p.validateRegex(vpat)

	case p.PeekKind(BANG):
		p.Consume()
		if _, ok := p.Match(IDENTIFIER); !ok {
			p.errorHere("Expected tag key after '!'.")
		}

	case p.PeekKind(IDENTIFIER):
		keyTok := p.Consume()
		key, prefix := splitKeyColon(keyTok.Lexeme)
		if key == "changed" || key == "date" {
			p.parseDateLikeValueList(prefix, keyTok)
			return
		}
		p.parseTagFilterOperatorValue()
		// A bare IDENT with no operator is an existence filter; nothing more
		// to consume.

	case p.PeekKind(STRING):
		// A tag key spelled as a string literal, e.g. ["highway"], used when
		// the key itself needs characters identifiers can't carry.
		p.Consume()
		p.parseTagFilterOperatorValue()

	default:
		p.errorHere("Malformed tag filter.")
	}
}

// parseTagFilterOperatorValue validates the optional
// "( '=' | '!=' | '~' | '!~' ) ( STRING | IDENT | NUMBER )" tail shared by
// the IDENT and STRING tag-key forms. Absent entirely, the key alone is a
// valid existence filter.
func (p *Parser) parseTagFilterOperatorValue() {
	op, ok := p.MatchOne(ASSIGN, NOT_EQUAL, TILDE, NOT_TILDE)
	if !ok {
		return
	}
	valTok, ok2 := p.MatchOne(STRING, IDENTIFIER, NUMBER)
	if !ok2 {
		p.errorAt(op, "Expected a value after %q.", op.Lexeme)
		return
	}
	if (op.Kind == TILDE || op.Kind == NOT_TILDE) && valTok.Kind == STRING {
		p.validateRegex(valTok)
	}
}

// parseDateLikeValueList validates "key:date_string (',' date_string)?" —
// the shape shared by [changed:"date"], [changed:"start","end"], and the
// per-query [date:"..."] filter.
func (p *Parser) parseDateLikeValueList(prefix string, keyTok Token) {
	if prefix == "" {
		if _, ok := p.Match(STRING); !ok {
			p.errorAt(keyTok, "Expected a date string.")
			return
		}
	}
	if _, ok := p.Match(COMMA); ok {
		if _, ok2 := p.Match(STRING); !ok2 {
			p.errorHere("Expected end date string after ','.")
		}
	}
}

func (p *Parser) skipToFilterClose(closer TokenKind) {
	for {
		switch p.Current().Kind {
		case EOF, SEMICOLON:
			return
		case closer:
			p.Consume()
			return
		default:
			p.Consume()
		}
	}
}
