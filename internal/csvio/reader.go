// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csvio reads tracker export CSVs and writes the normalized
// application CSV.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Row is one data row of an export together with the file's header.
type Row struct {
	// Line is the 1-based line in the input where the row starts.
	Line int

	// Header is the export's header row as read.
	Header []string

	// Cells holds the row's values. It may be shorter or longer than Header.
	Cells []string
}

// Reader yields the data rows of a comma-separated export. A leading UTF-8
// byte-order mark is stripped and ragged rows are tolerated. Input that is
// not valid UTF-8 fails with an error wrapping encoding.ErrInvalidUTF8.
type Reader struct {
	csv    *csv.Reader
	header []string
	read   bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	dec := transform.Chain(encoding.UTF8Validator, unicode.BOMOverride(transform.Nop))
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{csv: cr}
}

// Header returns the export's header row, reading it if needed. An empty
// input has no header and yields nil.
func (r *Reader) Header() ([]string, error) {
	if r.read {
		return r.header, nil
	}
	r.read = true

	header, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	r.header = header
	return r.header, nil
}

// Next returns the next data row. It returns io.EOF after the last row.
func (r *Reader) Next() (Row, error) {
	header, err := r.Header()
	if err != nil {
		return Row{}, err
	}
	if header == nil {
		return Row{}, io.EOF
	}

	cells, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return Row{}, io.EOF
	}
	if err != nil {
		return Row{}, fmt.Errorf("reading row: %w", err)
	}
	line, _ := r.csv.FieldPos(0)
	return Row{Line: line, Header: header, Cells: cells}, nil
}

// ReadAll reads every data row from r.
func ReadAll(r io.Reader) ([]Row, error) {
	cr := NewReader(r)
	var rows []Row
	for {
		row, err := cr.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}
