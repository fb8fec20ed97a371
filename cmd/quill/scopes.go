// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quill/internal/inventory"
)

var scopesCmd = &cobra.Command{
	Use:   "scopes FILE",
	Short: "List the scopes a scope-tagged file declares",
	Long: `Scopes reads FILE (or stdin when FILE is -) and prints a YAML report of
every declared scope: its declaration line numbers and how many content
lines it governs, plus the number of lines in the implicit global
scope.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}

		report, err := inventory.Scan(src)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(scopesCmd)
}
