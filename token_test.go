package overpassql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenKindAliasing(t *testing.T) {
	assert.Equal(t, LESS, RECURSE_UP)
	assert.Equal(t, GREATER, RECURSE_DOWN)
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: IDENTIFIER, Lexeme: "node", Line: 2, Col: 5}
	assert.Equal(t, `<IDENTIFIER "node" Line=2 Col=5>`, tok.String())
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, isKeyword("node"))
	assert.True(t, isKeyword("foreach"))
	assert.False(t, isKeyword("searchArea"))
}

func TestTokenKindStringUnknown(t *testing.T) {
	assert.Equal(t, "TokenKind(999)", TokenKind(999).String())
}
