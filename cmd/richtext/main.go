// richtext - rich-text configuration value decoder
//
// Usage:
//
//	richtext decode [file]    Decode one JSON value and print its tree
//	richtext stream [file]    Decode a sequence of JSON values, one item each
//	richtext yaml [file]      Decode one YAML value and print its tree
//	richtext preview [file]   Render one JSON value with terminal colors
//	richtext version          Print version info
//
// Flags: --strict rejects unknown or unbalanced markup tags, --plain prints
// plain text instead of the tree, --jsonc accepts comments and trailing
// commas, --verbose enables debug logging.
//
// If no file is given, or the file is "-", reads from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Neumenon/richtext/markup"
	"github.com/Neumenon/richtext/richtext"
)

const libVersion = "0.1.0"

// options holds the global flags shared by every command.
type options struct {
	verbose bool
	strict  bool
	plain   bool
	jsonc   bool

	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "richtext",
		Short: "Decode rich-text configuration values",
		Long: `richtext decodes rich-text values as they appear in configuration files.

A value may be a markup string ("<gold>Welcome"), an array of markup lines,
a legacy JSON component object or null. The decoded tree is printed in a
compact debug form, as plain text or rendered with terminal colors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.strict, "strict", false, "reject unknown tags, unmatched closing tags and unclosed tags")
	flags.BoolVar(&opts.plain, "plain", false, "print plain text instead of the styled tree")
	flags.BoolVar(&opts.jsonc, "jsonc", false, "accept JSON with comments and trailing commas")

	rootCmd.AddCommand(
		newDecodeCmd(opts),
		newStreamCmd(opts),
		newYAMLCmd(opts),
		newPreviewCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// decoder builds the rich-text decoder the flags ask for.
func (o *options) decoder() *richtext.Decoder {
	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var parserOpts []markup.Option
	if o.strict {
		parserOpts = append(parserOpts, markup.WithStrict())
	}
	return richtext.NewDecoder(
		richtext.WithMarkupParser(markup.NewParser(parserOpts...)),
		richtext.WithLogger(logger.Named("richtext")),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "richtext %s\n", libVersion)
		},
	}
}
