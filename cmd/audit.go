package cmd

import (
	"furnidata-manager/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	auditSource string
	auditJSON   bool
)

// auditCmd cross-checks furnidata against the emulator database
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Compare furnidata with the emulator database",
	Long:  `Decodes furnidata and compares every item with the emulator furniture table by sprite id.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newDeps(depsOptions{database: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		if !rt.audit.Enabled() {
			return audit.ErrNoDatabase
		}

		rt.logger.Info("Running emulator audit...", zap.String("emulator", rt.cfg.Database.Emulator))
		report, err := rt.audit.Audit(cmd.Context(), auditSource)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if auditJSON {
			return writeJSON(out, report)
		}
		printAudit(out, report)
		return printMetrics(out, rt.metrics.Registry())
	},
}

func init() {
	auditCmd.Flags().StringVarP(&auditSource, "source", "s", "", "http(s) URL or storage object key")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "print the report as json")
	RootCmd.AddCommand(auditCmd)
}
