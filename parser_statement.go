package overpassql

// parseStatement validates one statement production:
//
//	statement := query_stmt | block_stmt | out_stmt | assignment_suffix
//	           | set_reference ';' | recursion_op ';' | template_stmt
//
// (spec.md §4.3). If the current token doesn't start any recognized
// statement, parseStatement returns without consuming anything so the
// caller (parseProgram / parseBraceBlock / shorthand groups) can report
// "unexpected token" once and force progress.
func (p *Parser) parseStatement() {
	switch {
	case p.PeekKind(SEMICOLON):
		// An empty statement: harmless, and repeating it must never turn a
		// valid program invalid (spec.md §8 invariant 6).
		p.Consume()
	case p.PeekKind(ARROW):
		p.parseAssignmentSuffix()
		p.expectSemicolon()
	case p.PeekKind(LESS), p.PeekKind(GREATER), p.PeekKind(RECURSE_UP_REL), p.PeekKind(RECURSE_DOWN_REL):
		p.parseRecursionStatement()
	case p.PeekKind(LPAREN):
		p.parseUnionDifferenceShorthand()
	case p.PeekKeyword("out"):
		p.parseOutStatement()
	case p.PeekKeyword("make"):
		p.parseMakeStatement()
	case p.peekKeywordInSet(blockKeywords):
		p.parseBlockStatement()
	case p.PeekKind(TEMPLATE), p.PeekKind(DOT):
		p.parseQueryStatement()
	case p.PeekKind(IDENTIFIER) && queryTypeKeywords[p.Current().Lexeme]:
		p.parseQueryStatement()
	}
}

func (p *Parser) peekKeywordInSet(set map[string]bool) bool {
	t := p.Current()
	return t.Kind == IDENTIFIER && set[t.Lexeme]
}

func (p *Parser) expectSemicolon() {
	if _, ok := p.Match(SEMICOLON); !ok {
		p.errorHere("Expected ';'.")
		p.recoverStatement()
	}
}
