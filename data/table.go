package data

import (
	"github.com/pkg/errors"
	"math"
	"strconv"
	"strings"
)

type Table struct {
	Header  []string
	Records [][]string
}

func (t *Table) Len() int {
	return len(t.Records)
}

func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the named column as floats, in row order.
// Empty cells are read as NaN.
func (t *Table) Column(name string) ([]float64, error) {
	idx := t.ColumnIndex(name)
	if idx == -1 {
		return nil, errors.Errorf("column %q not found, have %q", name, t.Header)
	}

	values := make([]float64, len(t.Records))
	for i, record := range t.Records {
		if idx >= len(record) {
			return nil, errors.Errorf("column %q row %d: row has only %d fields", name, i+1, len(record))
		}
		cell := strings.TrimSpace(record[idx])
		if cell == "" {
			values[i] = math.NaN()
			continue
		}

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q row %d", name, i+1)
		}
		values[i] = v
	}
	return values, nil
}
