// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quill CLI, the file-reading
// and argument-handling collaborator around the pkg/quill extraction
// core. Subcommands: extract, scopes, split, version.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quill/pkg/quill"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured by the root command; warn level unless
// --verbose raises it to debug.
var logger = zerolog.Nop()

// rootCmd is the base command for the quill CLI.
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Extract named scopes from scope-tagged configuration files",
	Long: `quill extracts named scopes from configuration files tagged with @scope
declaration lines. The extracted output keeps the source's exact line
structure: lines outside the requested scope are blanked, never removed,
so parsers of the extracted file report errors against the original
file's line numbers.

quill does not parse the configuration format itself; any line-oriented
text works.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quill.yaml or ~/.config/quill/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quill")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quill"))
		}
	}

	viper.SetEnvPrefix("QUILL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// readSource reads the named file into memory, or stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// scopeFor maps a user-supplied name to a Scope value. An empty name
// and the literal "global" both select the global scope.
func scopeFor(name string) quill.Scope {
	if name == "" || name == quill.GlobalName {
		return quill.Global()
	}
	return quill.Defined(name)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
