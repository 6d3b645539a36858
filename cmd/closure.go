package cmd

import (
	"github.com/spf13/cobra"

	"github.com/auditkit/ossaudit/buildgraph"
	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/pretty"
)

var closureCmd = &cobra.Command{
	Use:   "closure",
	Short: "Show the collected dependency closure of a target without auditing it.",
	Long: `Show the collected dependency closure of a target: one line per
external package, the environment packages separately, and with
--debug also the internal packages that the audit would skip.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := buildgraph.LoadSnapshot(graphOption)
		if err != nil {
			pretty.Exit(2, "Error: %v", err)
		}
		collection, err := buildgraph.Collect(snapshot, targetOption)
		if err != nil {
			pretty.Exit(2, "Error: %v", err)
		}
		pretty.Highlight("Audited closure (%d):", collection.Closure.Size())
		for _, record := range collection.Closure.Records() {
			if record.IsInternal() {
				common.Debug("  %s [internal]", record.Coordinate)
				continue
			}
			common.Stdout("  %s %s%s%s\n", record.Coordinate, pretty.Grey, record.JarURL, pretty.Reset)
		}
		if collection.Environment.Size() > 0 {
			pretty.Highlight("Environment packages (%d):", collection.Environment.Size())
			for _, record := range collection.Environment.Records() {
				common.Stdout("  %s\n", record.Coordinate)
			}
		}
		for _, warning := range collection.Warnings {
			pretty.Warning("%s", warning)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(closureCmd)
	closureCmd.Flags().StringVarP(&graphOption, "graph", "g", "", "Path or URL of the build graph snapshot. (required)")
	closureCmd.Flags().StringVarP(&targetOption, "target", "t", "", "Build target whose closure gets shown. (required)")
	closureCmd.MarkFlagRequired("graph")
	closureCmd.MarkFlagRequired("target")
}
