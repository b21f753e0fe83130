package cmd

import (
	"fmt"
	"os"

	"furnidata-manager/core/furnidata"
	"furnidata-manager/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	decodeFile      string
	decodeOutput    string
	decodeNoAliases bool
)

// decodeCmd decodes a furnidata payload and prints it
var decodeCmd = &cobra.Command{
	Use:   "decode [source]",
	Short: "Decode a furnidata payload",
	Long: `Decodes furnidata from an http(s) URL, a storage object key, a local file (--file)
or the configured default source, and prints a summary or the full item list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch decodeOutput {
		case outputSummary, outputJSON, outputYAML:
		default:
			return fmt.Errorf("unknown output format %q (summary, json, yaml)", decodeOutput)
		}

		opts := depsOptions{}
		if decodeNoAliases {
			opts.decoder = furnidata.NewDecoder(furnidata.WithAliases(nil))
		}
		rt, err := newDeps(opts)
		if err != nil {
			return err
		}
		defer rt.Close()

		var source string
		if len(args) > 0 {
			source = args[0]
		}

		var c *catalog.Catalog
		if decodeFile != "" {
			raw, err := os.ReadFile(decodeFile)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", decodeFile, err)
			}
			c = rt.catalog.DecodeRaw(string(raw))
			c.Source = catalog.Source{Location: decodeFile, Kind: catalog.SourceInline}
		} else {
			rt.logger.Info("Decoding furnidata...", zap.String("source", source))
			c, err = rt.catalog.Load(cmd.Context(), source)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		switch decodeOutput {
		case outputJSON:
			return writeJSON(out, c)
		case outputYAML:
			return writeYAML(out, c)
		default:
			printSummary(out, catalog.Summarize(c))
			return nil
		}
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeFile, "file", "f", "", "decode a local file instead of fetching")
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", outputSummary, "output format: summary, json or yaml")
	decodeCmd.Flags().BoolVar(&decodeNoAliases, "no-aliases", false, "do not synthesize alias items")
	RootCmd.AddCommand(decodeCmd)
}
