package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteCSV(t *testing.T) {
	data, err := WriteCSV(
		[]string{"pnr", "status"},
		[][]string{
			{"AB12CD34EF", "confirmed"},
			{"ZZ99YY88XX", "cancelled"},
		},
	)

	assert.NoError(t, err)
	assert.Equal(t, "pnr,status\nAB12CD34EF,confirmed\nZZ99YY88XX,cancelled\n", string(data))
}

func TestWriteCSV_QuotesFieldsWithCommas(t *testing.T) {
	data, err := WriteCSV(
		[]string{"route"},
		[][]string{{"Delhi, New"}},
	)

	assert.NoError(t, err)
	assert.Equal(t, "route\n\"Delhi, New\"\n", string(data))
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	data, err := WriteCSV([]string{"date", "revenue"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "date,revenue\n", string(data))
}
