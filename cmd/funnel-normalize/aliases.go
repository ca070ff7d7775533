// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/funnel-normalize/internal/normalize"
)

func newAliasesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Show the header aliases used for each canonical field",
		Long: `Aliases prints the effective alias table: the built-in header names for
each canonical field followed by any extras from --config or --aliases-file.
Earlier names win when a row carries more than one. The YAML output can be
edited and passed back with --aliases-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			n, err := normalizerFromConfig(cmd, v)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case "yaml", "":
				return normalize.WriteAliasFile(w, n.Aliases())
			case "table":
				for _, field := range normalize.Fields() {
					fmt.Fprintf(w, "%-14s %s\n", field, strings.Join(n.Aliases()[field], ", "))
				}
				return nil
			default:
				return fmt.Errorf("unsupported format %q: use yaml or table", format)
			}
		},
	}

	cmd.Flags().String("format", "yaml", "output format: yaml or table")

	return cmd
}
