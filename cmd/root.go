package cmd

import (
	"github.com/spf13/cobra"

	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/pretty"
)

var (
	debugFlag     bool
	traceFlag     bool
	silentFlag    bool
	colorlessFlag bool
	homeOption    string
)

var rootCmd = &cobra.Command{
	Use:   "ossaudit",
	Short: "Audit the open source dependency closure of a build target.",
	Long: `ossaudit walks a build dependency graph snapshot, collects every
external package with its license metadata, and checks the result
against approved and denied package catalogs. The outputs are a BOM
manifest and a BOM-issues report; with --strict, denied packages
fail the build.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		if len(homeOption) > 0 {
			common.ForceHome(homeOption)
		}
		pretty.Disabled = colorlessFlag
		pretty.Setup()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		common.Fatal("ossaudit", err)
		common.WaitLogs()
		panic(common.Failure("%v", err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "Show debug messages during execution.")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "Show trace messages during execution (implies --debug).")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "Reduce output to minimum.")
	rootCmd.PersistentFlags().BoolVarP(&colorlessFlag, "colorless", "", false, "Do not use colors in terminal output.")
	rootCmd.PersistentFlags().StringVarP(&homeOption, "home", "", "", "Override location used for configuration and journal.")
}
