// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the funnel-normalize CLI, which turns
// a job-application tracker export into the fixed-schema funnel CSV.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/funnel-normalize/internal/logging"
	"github.com/pdiddy/funnel-normalize/internal/normalize"
	"github.com/pdiddy/funnel-normalize/internal/pipeline"
	"github.com/pdiddy/funnel-normalize/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the command tree. Each call gets its own viper instance
// so flag and config state never leaks between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "funnel-normalize",
		Short: "Normalize a job-application export into the funnel CSV schema",
		Long: `funnel-normalize reads a job-application export (Simplify by default),
maps its loosely named columns onto the canonical schema
(company, role, location, applied_date, status, job_url, source),
normalizes application dates to YYYY-MM-DD, and writes a fixed-schema CSV.

Run it with --input and --output to convert a file, or use the preview and
aliases subcommands to inspect what a conversion would produce.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, v)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "YAML config file (source, log_level, aliases)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultLevel, "diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("source", types.DefaultSource, "source label stamped into every output row")
	rootCmd.PersistentFlags().String("aliases-file", "", "YAML file of extra header aliases per field")

	rootCmd.Flags().String("input", "", "path to the tracker export CSV")
	rootCmd.Flags().String("output", "", "path for the normalized CSV (parent directories are created)")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	_ = v.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newPreviewCmd(v))
	rootCmd.AddCommand(newAliasesCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// initConfig reads the --config file when one is given and installs the
// diagnostic logger. No other locations are searched.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}

	if err := logging.Setup(cmd.ErrOrStderr(), v.GetString("log_level")); err != nil {
		return err
	}
	if cfgFile != "" {
		log.Debug("using config file", "path", v.ConfigFileUsed())
	}
	return nil
}

func runNormalize(cmd *cobra.Command, v *viper.Viper) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	n, err := normalizerFromConfig(cmd, v)
	if err != nil {
		return err
	}

	cfg := types.NormalizeConfig{
		InputPath:  input,
		OutputPath: output,
		Source:     v.GetString("source"),
	}
	_, err = pipeline.Run(cmd.Context(), cfg, n, cmd.OutOrStdout())
	return err
}

// normalizerFromConfig merges alias overrides from the config file and then
// from --aliases-file onto the built-in table.
func normalizerFromConfig(cmd *cobra.Command, v *viper.Viper) (*normalize.Normalizer, error) {
	aliases := normalize.DefaultAliases()

	if v.IsSet("aliases") {
		merged, err := aliases.Merge(v.GetStringMapStringSlice("aliases"))
		if err != nil {
			return nil, fmt.Errorf("config aliases: %w", err)
		}
		aliases = merged
	}

	aliasFile, _ := cmd.Flags().GetString("aliases-file")
	if aliasFile != "" {
		extra, err := normalize.ReadAliasFile(aliasFile)
		if err != nil {
			return nil, err
		}
		merged, err := aliases.Merge(extra)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", aliasFile, err)
		}
		aliases = merged
	}

	return normalize.NewNormalizer(aliases), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
