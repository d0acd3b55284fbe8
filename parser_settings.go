package overpassql

// parseSettingsHeader validates the optional settings prologue:
//
//	settings := ( '[' setting_item ']' )+ ';'
//
// (spec.md §4.3). Called only when the program's very first token is '[',
// matching "Settings header is optional and must appear at the very
// start."
func (p *Parser) parseSettingsHeader() {
	for p.PeekKind(LBRACKET) {
		p.parseSettingItem()
	}
	if _, ok := p.Match(SEMICOLON); !ok {
		p.errorHere("Expected ';' after settings header.")
		p.recoverStatement()
	}
}

// parseSettingItem validates one "[ key:value, value, ... ]" group.
//
//	setting_item  := IDENT ':' setting_value ( ',' setting_value )*
//	setting_value := STRING | NUMBER | IDENT | signed_number
func (p *Parser) parseSettingItem() {
	p.Consume() // '['

	keyTok, ok := p.Match(IDENTIFIER)
	if !ok {
		p.errorHere("Expected setting key.")
		p.skipToSettingClose()
		return
	}

	key, prefix := splitKeyColon(keyTok.Lexeme)
	if prefix == "" {
		// The lexer only leaves the colon unconsumed if the identifier
		// didn't carry one at all (grammar violation) or the value starts
		// immediately with a character outside identifier syntax (a
		// string, most commonly) — in the latter case the colon is still
		// embedded in keyTok.Lexeme as a trailing ':', so no separate
		// COLON token ever appears here.
		if !settingsKeys[key] && key == keyTok.Lexeme {
			p.errorAt(keyTok, "Expected ':' after setting key %q.", key)
			p.skipToSettingClose()
			return
		}
	}

	if !settingsKeys[key] {
		p.warnAt(keyTok, "Unknown setting: %s", key)
	}

	p.parseSettingValueList(key, prefix, keyTok)

	if _, ok := p.Match(RBRACKET); !ok {
		p.errorHere("Expected ']' to close setting.")
		p.skipToSettingClose()
	}
}

func (p *Parser) parseSettingValueList(key, prefix string, keyTok Token) {
	first := p.parseSettingValue(key, prefix, keyTok)
	if key == "out" && first != "" {
		if !outFormats[first] {
			p.warnAt(keyTok, "Unknown output format: %s", first)
		}
	}
	for {
		if _, ok := p.Match(COMMA); !ok {
			return
		}
		p.parseSettingValue(key, "", keyTok)
	}
}

// parseSettingValue yields one setting_value, handling the case where its
// leading digits arrived fused onto the key token (see splitKeyColon) and
// need to rejoin an immediately following '.' NUMBER to form one float, and
// the [out:csv(...)] structured-value case (spec.md §4.3 "CSV output").
func (p *Parser) parseSettingValue(key, prefix string, keyTok Token) string {
	if prefix != "" {
		if isAllDigits(prefix) && p.PeekKind(DOT) {
			save := p.idx
			p.Consume() // '.'
			if num, ok := p.Match(NUMBER); ok {
				return prefix + "." + num.Lexeme
			}
			p.idx = save
		}
		if key == "out" && prefix == "csv" && p.PeekKind(LPAREN) {
			p.parseCsvStructuredValue()
			return "csv"
		}
		return prefix
	}

	if sign, ok := p.MatchOne(MINUS, PLUS); ok {
		if num, ok2 := p.Match(NUMBER); ok2 {
			return sign.Lexeme + num.Lexeme
		}
		p.errorAt(sign, "Expected number after sign in setting value.")
		return ""
	}

	if t, ok := p.MatchOne(STRING, NUMBER, IDENTIFIER); ok {
		if key == "out" && t.Kind == IDENTIFIER && t.Lexeme == "csv" && p.PeekKind(LPAREN) {
			p.parseCsvStructuredValue()
			return "csv"
		}
		return t.Lexeme
	}

	p.errorHere("Expected a setting value.")
	return ""
}

// parseCsvStructuredValue accepts csv( key_list ; header? ; separator? ) as
// part of a settings value (spec.md §4.3 "CSV output"): the content is
// balance-scanned rather than deeply validated, since the key_list grammar
// (arbitrary evaluator-ish tag names) is out of scope beyond this.
func (p *Parser) parseCsvStructuredValue() {
	open, ok := p.Match(LPAREN)
	if !ok {
		return
	}
	p.scanBalancedParen(open)
}

func (p *Parser) skipToSettingClose() {
	for {
		switch p.Current().Kind {
		case EOF, SEMICOLON:
			return
		case RBRACKET:
			p.Consume()
			return
		default:
			p.Consume()
		}
	}
}
