package cmd

import (
	"fmt"
	"os"

	"furnidata-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configPath is the directory searched for the .env file.
var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "furnidata-manager",
	Short: "Furnidata Manager Service",
	Long: `Furnidata Manager decodes Habbo furnidata in both the XML and the chunked text format.
It serves decoded catalogs over HTTP and cross-checks them against emulator databases.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config gives readable CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing the .env file")
}
