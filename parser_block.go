package overpassql

// parseBlockStatement validates the keyword-led block_stmt forms:
//
//	block_stmt := 'union' block
//	            | 'difference' block
//	            | 'if' '(' evaluator ')' block ( 'else' block )?
//	            | 'foreach' set_reference? block
//	            | 'for' '(' evaluator ')' block
//	            | 'complete' block
//	            | 'retro' '(' evaluator ')' block
//	            | 'compare' '(' evaluator ')' block
//
// (spec.md §4.3 grammar). The shorthand forms ('(' stmt_list ')' ';' and its
// difference variant) are handled separately by
// parseUnionDifferenceShorthand, dispatched on '(' rather than a keyword.
func (p *Parser) parseBlockStatement() {
	kw := p.Consume()
	switch kw.Lexeme {
	case "union", "difference", "complete":
		p.parseBraceBlock()

	case "if":
		if !p.parseEvaluatorParen() {
			p.recoverStatement()
			return
		}
		p.parseBraceBlock()
		if _, ok := p.MatchKeyword("else"); ok {
			if p.PeekKeyword("if") {
				p.parseBlockStatement()
				return
			}
			p.parseBraceBlock()
		}

	case "foreach":
		if p.PeekKind(DOT) {
			p.Consume()
			if _, ok := p.Match(IDENTIFIER); !ok {
				p.errorHere("Expected set name after '.'.")
			}
		}
		p.parseBraceBlock()

	case "for", "retro", "compare":
		if !p.parseEvaluatorParen() {
			p.recoverStatement()
			return
		}
		p.parseBraceBlock()
	}
}

// parseBraceBlock validates:
//
//	block := '{' statement* '}'
//
// Missing '}' at EOF is an ERROR (spec.md §4.3 "Block state").
func (p *Parser) parseBraceBlock() {
	open, ok := p.Match(LBRACE)
	if !ok {
		p.errorHere("Expected '{' to start block body.")
		return
	}
	if !p.enterBlock() {
		return
	}
	defer p.leaveBlock()

	for !p.PeekKind(RBRACE) && !p.AtEOF() {
		startIdx := p.idx
		p.parseStatement()
		if p.idx == startIdx {
			p.errorHere("Unexpected token %q in block.", p.Current().Lexeme)
			p.recoverStatement()
			if p.idx == startIdx {
				p.Consume()
			}
		}
	}
	if _, ok := p.Match(RBRACE); !ok {
		p.errorAt(open, "Block not closed with '}'.")
	}
}

// parseUnionDifferenceShorthand validates:
//
//	'(' stmt_list ')' ';'             // union shorthand
//	'(' stmt_list '-' stmt ')' ';'    // difference shorthand
//
// A '-' before a statement marks the difference operand; at most one '-' is
// permitted per group (spec.md §4.3 "Union/difference shorthand" — two or
// more triggers an ERROR, but parsing continues).
func (p *Parser) parseUnionDifferenceShorthand() {
	open := p.Consume() // '('
	if !p.enterBlock() {
		return
	}
	defer p.leaveBlock()

	minusCount := 0
	for !p.PeekKind(RPAREN) && !p.AtEOF() {
		if _, ok := p.Match(MINUS); ok {
			minusCount++
			if minusCount > 1 {
				p.errorHere("Multiple '-' operators in union/difference shorthand.")
			}
		}
		startIdx := p.idx
		p.parseStatement()
		if p.idx == startIdx {
			p.errorHere("Unexpected token %q in shorthand group.", p.Current().Lexeme)
			p.recoverStatement()
			if p.idx == startIdx {
				p.Consume()
			}
		}
	}
	if _, ok := p.Match(RPAREN); !ok {
		p.errorAt(open, "Shorthand group not closed with ')'.")
	}
	p.expectSemicolon()
}
