package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatsForClass(t *testing.T) {
	train := Train{SleeperSeats: 72, ACSeats: 48, GeneralSeats: 90}

	assert.Equal(t, 72, train.SeatsForClass("sleeper"))
	assert.Equal(t, 48, train.SeatsForClass("ac"))
	assert.Equal(t, 90, train.SeatsForClass("general"))
	assert.Equal(t, 0, train.SeatsForClass("first"))
}
