// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs an export through the reader, the row normalizer,
// and the writer.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/funnel-normalize/internal/csvio"
	"github.com/pdiddy/funnel-normalize/internal/normalize"
	"github.com/pdiddy/funnel-normalize/pkg/types"
)

// ErrInputNotFound is returned when the input export does not exist.
// Errors carrying it also match fs.ErrNotExist.
var ErrInputNotFound = errors.New("input CSV not found")

// Summary reports the outcome of a run.
type Summary struct {
	// Rows is the number of records produced; it always equals the number
	// of data rows read.
	Rows int

	// DatesPassedThrough counts non-empty applied dates that matched no
	// known format and were kept as exported.
	DatesPassedThrough int

	// Output is the path the records were written to (empty for Normalize).
	Output string
}

// Normalize reads the export at cfg.InputPath and returns one Application
// per data row, in input order. Nothing is written.
func Normalize(ctx context.Context, cfg types.NormalizeConfig, n *normalize.Normalizer) ([]types.Application, Summary, error) {
	if cfg.InputPath == "" {
		return nil, Summary{}, fmt.Errorf("input path is required")
	}
	if n == nil {
		n = normalize.NewNormalizer(nil)
	}

	rows, err := readInput(cfg.InputPath)
	if err != nil {
		return nil, Summary{}, err
	}
	log.Debug("read export", "path", cfg.InputPath, "rows", len(rows))

	var summary Summary
	apps := make([]types.Application, 0, len(rows))
	for _, row := range rows {
		select {
		case <-ctx.Done():
			return nil, summary, ctx.Err()
		default:
		}

		app := n.Normalized(normalize.HeaderPairs(row.Header, row.Cells), cfg.Source)
		if app.AppliedDate != "" {
			if _, ok := normalize.ParseDate(app.AppliedDate); !ok {
				summary.DatesPassedThrough++
				log.Debug("applied date kept as exported", "line", row.Line, "value", app.AppliedDate)
			}
		}
		apps = append(apps, app)
	}
	summary.Rows = len(apps)
	return apps, summary, nil
}

// Run normalizes cfg.InputPath into cfg.OutputPath and prints a one-line
// summary to w. A missing input fails with ErrInputNotFound before any
// directory or file is created.
func Run(ctx context.Context, cfg types.NormalizeConfig, n *normalize.Normalizer, w io.Writer) (Summary, error) {
	if cfg.OutputPath == "" {
		return Summary{}, fmt.Errorf("output path is required")
	}

	apps, summary, err := Normalize(ctx, cfg, n)
	if err != nil {
		return Summary{}, err
	}

	output := filepath.Clean(cfg.OutputPath)
	if err := writeOutput(output, apps); err != nil {
		return Summary{}, err
	}
	summary.Output = output

	log.Debug("wrote normalized export", "path", output, "rows", summary.Rows,
		"dates_passed_through", summary.DatesPassedThrough)
	fmt.Fprintf(w, "Normalized %d rows -> %s\n", summary.Rows, output)
	return summary, nil
}

func readInput(path string) ([]csvio.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
		}
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	rows, err := csvio.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

func writeOutput(path string, apps []types.Application) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	if err := csvio.WriteAll(f, apps); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
