// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quill/internal/splitter"
)

var splitCmd = &cobra.Command{
	Use:   "split FILE",
	Short: "Write every scope of a file to its own extracted file",
	Long: `Split extracts every scope declared in FILE, plus the global scope, into
per-scope files next to each other in the output directory. A file
config.toml declaring @dev and @prod produces config.global.toml,
config.dev.toml, and config.prod.toml.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-" {
			return fmt.Errorf("split derives output names from FILE and cannot read stdin")
		}
		src, err := readSource(args[0])
		if err != nil {
			return err
		}

		outDir, _ := cmd.Flags().GetString("out-dir")
		if outDir == "" {
			outDir = viper.GetString("out_dir")
		}
		if outDir == "" {
			outDir = "."
		}

		summary, err := splitter.Split(src, args[0], outDir, logger, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d written, %d failed\n", summary.Written, summary.Failed)
		if summary.HasFailures() {
			return fmt.Errorf("%d of %d scopes failed", summary.Failed, summary.Total())
		}
		return nil
	},
}

func init() {
	splitCmd.Flags().StringP("out-dir", "d", "", "output directory (default: config key \"out_dir\", then .)")

	rootCmd.AddCommand(splitCmd)
}
