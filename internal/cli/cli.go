// Package cli implements the volare command-line interface: parsing
// a JSONL record stream, building and laying out its entity tree, and
// rendering the result to SVG.
//
// Grounded on the CLI/RootCommand split of
// matzehuels-stacktower/internal/cli/cli.go (a struct carrying shared
// state — here just a logger — whose RootCommand method assembles
// cobra subcommands), and on the config-file/env-var resolution of
// xkilldash9x-scalpel-cli/cmd/root.go, adapted from viper.Unmarshal
// into a struct to the one setting this layout CLI reads (the default
// font metrics ratio, advance_ratio).
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hugozap/volare-engine/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the root cobra command with every subcommand
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          "volare",
		Short:        "Volare lays out and renders compact JSONL diagram specs",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cfgFile)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./volare.yaml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())

	return root
}

// loadConfig reads an optional config file (explicit path, or
// ./volare.yaml if present) and VOLARE_-prefixed environment
// variables into viper's global store. A missing default config file
// is not an error; an explicit one that can't be read is.
func loadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("volare")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("VOLARE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}
