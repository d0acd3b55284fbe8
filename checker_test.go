package overpassql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerCheckSyntaxValidAndInvalid(t *testing.T) {
	c := NewChecker()

	valid := c.CheckSyntax(`node[amenity=restaurant];out;`)
	assert.True(t, valid.Valid)
	assert.Empty(t, valid.Errors)
	require.NotEmpty(t, valid.Tokens)
	assert.Equal(t, EOF, valid.Tokens[len(valid.Tokens)-1].Kind)

	invalid := c.CheckSyntax(`node[amenity=restaurant]out;`)
	assert.False(t, invalid.Valid)
	assert.NotEmpty(t, invalid.Errors)
}

func TestCheckerValidEqualsErrorsEmpty(t *testing.T) {
	c := NewChecker()
	for _, q := range []string{
		`[out:unknownfmt];node;out;`, // warnings only, still valid
		`node;out;`,
	} {
		r := c.CheckSyntax(q)
		assert.Equal(t, len(r.Errors) == 0, r.Valid, q)
	}
}

func TestCheckerValidateQueryNonVerboseReturnsValidity(t *testing.T) {
	c := NewChecker()
	assert.True(t, c.ValidateQuery(`node;out;`, false))
	assert.False(t, c.ValidateQuery(`node out;`, false))
}
