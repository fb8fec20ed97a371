// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quill/pkg/quill"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Extract one scope from a scope-tagged file",
	Long: `Extract reads FILE (or stdin when FILE is -) and writes the content of
the requested scope. Global content is always included; declaration
lines and content of other scopes become blank lines so the output has
exactly as many lines as the input.

The default scope comes from the "scope" config key, falling back to
global.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("scope")
		if name == "" {
			name = viper.GetString("scope")
		}

		out, err := quill.ExtractScope(src, scopeFor(name))
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" || outPath == "-" {
			_, err := io.WriteString(cmd.OutOrStdout(), out)
			return err
		}
		if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		logger.Debug().Str("scope", scopeFor(name).Name()).Str("output", outPath).Msg("extracted")
		return nil
	},
}

func init() {
	extractCmd.Flags().StringP("scope", "s", "", "scope to extract (default: config key \"scope\", then global)")
	extractCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(extractCmd)
}
