package utils

import (
	"bytes"
	"encoding/csv"
)

// WriteCSV renders a header row followed by data rows. The header mirrors the
// SELECT projection of the query that produced the rows.
func WriteCSV(header []string, rows [][]string) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
