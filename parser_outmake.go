package overpassql

// parseOutStatement validates:
//
//	out_stmt := 'out' out_modifier* out_limit? ';'
//
// (spec.md §4.3 grammar). The exact set of recognized modifiers and whether
// their relative order matters is left open by the grammar (DESIGN.md
// Open-Question decisions): any run of IDENT/NUMBER tokens is accepted, matching
// "the source accepts them in any order."
func (p *Parser) parseOutStatement() {
	p.Consume() // 'out'
outLoop:
	for {
		switch {
		case p.PeekKind(IDENTIFIER):
			p.Consume()
		case p.PeekKind(NUMBER):
			p.Consume()
		default:
			break outLoop
		}
	}
	p.expectSemicolon()
}

// parseAssignmentSuffix validates:
//
//	assignment_suffix := '->' '.' IDENT
func (p *Parser) parseAssignmentSuffix() {
	arrow := p.Consume() // '->'
	if _, ok := p.Match(DOT); !ok {
		p.errorAt(arrow, "Expected '.' after '->'.")
		return
	}
	if _, ok := p.Match(IDENTIFIER); !ok {
		p.errorHere("Expected set name after '->.'.")
	}
}

// parseRecursionStatement validates a bare recursion_op statement ('<' '<<'
// '>' '>>' followed directly by ';'): these never carry filters (spec.md
// §4.3 "Recursion operators").
func (p *Parser) parseRecursionStatement() {
	op := p.Consume()
	if _, ok := p.Match(SEMICOLON); !ok {
		p.errorAt(op, "Recursion operators may not carry filters; expected ';'.")
		p.recoverStatement()
	}
}

// parseMakeStatement validates:
//
//	make_stmt := 'make' IDENT backref* ( ',' tag_spec )* ';'
//	tag_spec   := IDENT '=' evaluator
//
// The target name may carry '\' NUMBER backreferences fused anywhere after
// it (e.g. "stat_highway_\1", spec.md §8 test scenario), since the lexer
// never treats '\' as an identifier-continuation character and hands it
// back as its own BACKSLASH token.
func (p *Parser) parseMakeStatement() {
	p.Consume() // 'make'
	if !p.parseNameWithBackrefs() {
		p.errorHere("Expected a target set name after 'make'.")
		p.recoverStatement()
		return
	}
	for {
		if _, ok := p.Match(COMMA); !ok {
			break
		}
		p.parseTagSpec()
	}
	p.expectSemicolon()
}

func (p *Parser) parseNameWithBackrefs() bool {
	if _, ok := p.Match(IDENTIFIER); !ok {
		return false
	}
	for p.PeekKind(BACKSLASH) {
		p.Consume()
		if _, ok := p.Match(NUMBER); !ok {
			p.errorHere("Expected digits after '\\' backreference.")
			break
		}
	}
	return true
}

func (p *Parser) parseTagSpec() {
	if _, ok := p.Match(IDENTIFIER); !ok {
		p.errorHere("Expected tag name in make-statement tag spec.")
		return
	}
	if _, ok := p.Match(ASSIGN); !ok {
		p.errorHere("Expected '=' in make-statement tag spec.")
		return
	}
	p.scanBalancedUntilComma()
}
