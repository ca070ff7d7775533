// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pdiddy/funnel-normalize/pkg/types"
)

// Writer serializes Applications under the fixed types.Columns header.
// Lines end in CRLF and no byte-order mark is written.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return &Writer{csv: cw}
}

// Write appends one record, emitting the header first if it has not been
// written yet.
func (w *Writer) Write(app types.Application) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	if err := w.csv.Write(app.Values()); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return nil
}

// Flush writes the header if no record was written, then flushes buffered
// output and reports any write error.
func (w *Writer) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

func (w *Writer) writeHeader() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	if err := w.csv.Write(types.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// WriteAll writes the header and every record to w.
func WriteAll(w io.Writer, apps []types.Application) error {
	cw := NewWriter(w)
	for _, app := range apps {
		if err := cw.Write(app); err != nil {
			return err
		}
	}
	return cw.Flush()
}
