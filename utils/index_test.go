package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, 0.0, CalculateGrowth(0, 0))
	assert.Equal(t, 100.0, CalculateGrowth(500, 0))
	assert.Equal(t, 25.0, CalculateGrowth(1250, 1000))
	assert.Equal(t, -50.0, CalculateGrowth(500, 1000))
}

func TestPtr(t *testing.T) {
	p := Ptr(7)

	assert.NotNil(t, p)
	assert.Equal(t, 7, *p)
}
