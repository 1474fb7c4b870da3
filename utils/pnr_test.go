package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePNR_LengthAndCharset(t *testing.T) {
	pnr, err := GeneratePNR(10)

	assert.NoError(t, err)
	assert.Len(t, pnr, 10)
	for _, ch := range pnr {
		assert.True(t, strings.ContainsRune(pnrCharset, ch), "unexpected character %q", ch)
	}
}

func TestGeneratePNR_DistinctDraws(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pnr, err := GeneratePNR(10)
		assert.NoError(t, err)
		assert.False(t, seen[pnr], "duplicate pnr %s", pnr)
		seen[pnr] = true
	}
}

func TestGeneratePNR_ZeroLength(t *testing.T) {
	pnr, err := GeneratePNR(0)

	assert.NoError(t, err)
	assert.Empty(t, pnr)
}
