package cmd

import (
	"errors"

	"furnidata-manager/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var itemSource string

// itemCmd looks up furnidata items
var itemCmd = &cobra.Command{
	Use:   "item [identifier]",
	Short: "Show the furnidata entries of an item",
	Long: `Looks an item up by id, class name, file name, alias or public name and prints every match.
Unknown identifiers print the closest file names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newDeps(depsOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		identifier := args[0]
		rt.logger.Info("Looking up furnidata item...", zap.String("identifier", identifier))

		out := cmd.OutOrStdout()
		result, err := rt.catalog.Lookup(cmd.Context(), itemSource, identifier)
		if err != nil {
			var notFound *catalog.NotFoundError
			if errors.As(err, &notFound) {
				printSuggestions(out, notFound)
			}
			return err
		}

		for _, item := range result.Matches {
			printItem(out, identifier, item)
		}
		return nil
	},
}

func init() {
	itemCmd.Flags().StringVarP(&itemSource, "source", "s", "", "http(s) URL or storage object key")
	RootCmd.AddCommand(itemCmd)
}
