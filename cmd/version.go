package cmd

import (
	"github.com/spf13/cobra"

	"github.com/auditkit/ossaudit/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ossaudit version.",
	Run: func(cmd *cobra.Command, args []string) {
		common.Stdout("%s\n", common.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
