// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/funnel-normalize/internal/pipeline"
	"github.com/pdiddy/funnel-normalize/pkg/types"
)

func newPreviewCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <input>",
		Short: "Print normalized records without writing a file",
		Long: `Preview runs an export through the same normalization as the root
command and prints the records to stdout as a table, JSON, or YAML.
Nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, v, args[0])
		},
	}

	cmd.Flags().String("format", "table", "output format: table, json, or yaml")
	cmd.Flags().Int("limit", 0, "maximum records to print (0 = all)")

	return cmd
}

func runPreview(cmd *cobra.Command, v *viper.Viper, input string) error {
	format, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")

	n, err := normalizerFromConfig(cmd, v)
	if err != nil {
		return err
	}

	cfg := types.NormalizeConfig{
		InputPath: input,
		Source:    v.GetString("source"),
	}
	apps, summary, err := pipeline.Normalize(cmd.Context(), cfg, n)
	if err != nil {
		return err
	}
	if limit > 0 && len(apps) > limit {
		apps = apps[:limit]
	}

	w := cmd.OutOrStdout()
	switch format {
	case "table", "":
		return formatPreviewTable(w, apps, summary)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(apps)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(apps)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

// previewWidths are the table column widths, in types.Columns order.
var previewWidths = []int{20, 24, 16, 10, 12, 30, 10}

func formatPreviewTable(w io.Writer, apps []types.Application, summary pipeline.Summary) error {
	if len(apps) == 0 {
		fmt.Fprintln(w, "No rows found.")
		return nil
	}

	fmt.Fprintln(w, tableLine(types.Columns))
	fmt.Fprintln(w, strings.Repeat("-", tableWidth()))
	for _, app := range apps {
		fmt.Fprintln(w, tableLine(app.Values()))
	}

	fmt.Fprintf(w, "\n%d of %d rows", len(apps), summary.Rows)
	if summary.DatesPassedThrough > 0 {
		fmt.Fprintf(w, " (%d applied dates kept as exported)", summary.DatesPassedThrough)
	}
	fmt.Fprintln(w)
	return nil
}

func tableLine(values []string) string {
	cells := make([]string, len(values))
	for i, val := range values {
		cells[i] = fmt.Sprintf("%-*s", previewWidths[i], truncate(val, previewWidths[i]))
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}

func tableWidth() int {
	total := 2 * (len(previewWidths) - 1)
	for _, w := range previewWidths {
		total += w
	}
	return total
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
