package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Neumenon/richtext/stream"
	"github.com/Neumenon/richtext/styled"
)

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode one JSON rich-text value",
		Long: `Decodes a single JSON value and prints the compacted tree.

Examples:
  echo '"<gold>Hello <bold>world"' | richtext decode
  richtext decode --plain motd.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, opts.jsonc)
			if err != nil {
				return err
			}
			text, err := opts.decoder().Unmarshal(data)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			printText(cmd.OutOrStdout(), text, opts.plain)
			return nil
		},
	}
}

func newStreamCmd(opts *options) *cobra.Command {
	var maxItems int

	cmd := &cobra.Command{
		Use:   "stream [file]",
		Short: "Decode a sequence of JSON rich-text values",
		Long: `Decodes whitespace-separated JSON values (for example JSON lines) and
prints one entry per value. A value that is not valid rich text is reported
and skipped; malformed JSON stops the stream.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, opts.jsonc)
			if err != nil {
				return err
			}

			reader := stream.NewReader(bytes.NewReader(data),
				stream.WithDecoder(opts.decoder()),
				stream.WithMaxItems(maxItems),
				stream.WithLogger(opts.logger.Named("stream")),
			)
			out := cmd.OutOrStdout()
			for {
				item, err := reader.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				printItem(out, item, opts.plain)
			}

			stats := reader.Stats()
			fmt.Fprintf(cmd.ErrOrStderr(), "--- %d items decoded (%d absent, %d failed) ---\n", stats.Items, stats.Absent, stats.Failed)
			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d items failed", stats.Failed, stats.Items)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxItems, "max-items", 0, "fail when the input holds more values (0 means no limit)")
	return cmd
}

func newYAMLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "yaml [file]",
		Short: "Decode one YAML rich-text value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, false)
			if err != nil {
				return err
			}
			var node yaml.Node
			if err := yaml.Unmarshal(data, &node); err != nil {
				return fmt.Errorf("parse yaml: %w", err)
			}
			text, err := opts.decoder().DecodeYAML(&node)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			printText(cmd.OutOrStdout(), text, opts.plain)
			return nil
		},
	}
}

func newPreviewCmd(opts *options) *cobra.Command {
	var colorMode string

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render one JSON rich-text value with terminal colors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, opts.jsonc)
			if err != nil {
				return err
			}
			text, err := opts.decoder().Unmarshal(data)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			profile, err := parseColorMode(colorMode)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, newPreview(out, profile).Render(text))
			opts.logger.Debug("rendered preview", zap.String("colors", colorMode), zap.Int("segments", len(text.Segments())))
			return nil
		},
	}
	cmd.Flags().StringVar(&colorMode, "colors", "auto", "color profile: auto, truecolor, 256, 16 or none")
	return cmd
}

// ============================================================
// Input / Output
// ============================================================

// readInput reads the file named by args, or stdin when there is none.
func readInput(cmd *cobra.Command, args []string, allowJSONC bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
	}

	if allowJSONC {
		// Strip comments and trailing commas before decoding as standard JSON.
		data = jsonc.ToJSON(data)
	}
	return data, nil
}

func printText(w io.Writer, t *styled.Text, plain bool) {
	switch {
	case t == nil:
		fmt.Fprintln(w, "<absent>")
	case plain:
		fmt.Fprintln(w, t.PlainText())
	default:
		fmt.Fprintln(w, t.String())
	}
}

func printItem(w io.Writer, item *stream.Item, plain bool) {
	fmt.Fprintf(w, "--- Item %d (offset %d, %s) ---\n", item.Index, item.Offset, item.Kind())
	if item.Err != nil {
		fmt.Fprintf(w, "  error: %v\n", item.Err)
		return
	}
	printText(w, item.Text, plain)
}
