package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastlingRightsAddRemoveHas(t *testing.T) {
	c := CastlingNone
	c = c.Add(CastlingWhiteOO)
	assert.True(t, c.Has(CastlingWhiteOO))
	assert.False(t, c.Has(CastlingWhiteOOO))

	c = c.Add(CastlingBlackOOO)
	assert.Equal(t, "Kq", c.String())

	c = c.Remove(CastlingWhiteOO)
	assert.Equal(t, "q", c.String())
}

func TestCastlingRightsStringAll(t *testing.T) {
	assert.Equal(t, "KQkq", CastlingAny.String())
	assert.Equal(t, "-", CastlingNone.String())
}
