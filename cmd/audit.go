package cmd

import (
	"github.com/spf13/cobra"

	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/operations"
	"github.com/auditkit/ossaudit/pretty"
)

var (
	graphOption     string
	targetOption    string
	approvedOption  string
	deniedOption    string
	suppressOption  []string
	strictFlag      bool
	bomOption       string
	issuesOption    string
	workersOption   int
	resolverCommand string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the dependency audit and produce BOM and BOM-issues files.",
	Long: `Run the dependency audit: collect the dependency closure of the
target from the graph snapshot, resolve license metadata per unique
artifact, and evaluate the approved/denied catalogs.

Examples:
  # Informational run, outputs only
  ossaudit audit --graph graph.yaml --target //service:backend \
      --bom bom.yaml --bom-issues bom-issues.yaml

  # Enforcing run for CI, with one waived package
  ossaudit audit --graph graph.yaml --target //service:backend \
      --approved approved.yaml --denied denied.yaml --strict \
      --suppress legal.trouble:alpha:1.0 \
      --bom bom.yaml --bom-issues bom-issues.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if common.DebugFlag() {
			defer common.Stopwatch("Audit command lasted").Report()
		}
		pretty.Guard(workersOption >= 0, 3, "Worker count %d makes no sense.", workersOption)
		common.WorkerCountOption = workersOption
		outcome, err := operations.RunAudit(&operations.AuditOptions{
			GraphFile:       graphOption,
			Target:          targetOption,
			ApprovedFile:    approvedOption,
			DeniedFile:      deniedOption,
			Suppress:        suppressOption,
			Strict:          strictFlag,
			BomFile:         bomOption,
			IssuesFile:      issuesOption,
			ResolverCommand: resolverCommand,
		})
		if err != nil {
			pretty.Exit(2, "Error: %v", err)
		}
		common.Log("Manifest: %d entries, %d issues, %d environment packages, fingerprint %s.",
			outcome.Manifest.Size(), len(outcome.Issues), outcome.Environment, outcome.Fingerprint)
		if !outcome.Verdict {
			pretty.Exit(1, "Denied packages present and --strict is set.")
		}
		return pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().StringVarP(&graphOption, "graph", "g", "", "Path or URL of the build graph snapshot. (required)")
	auditCmd.Flags().StringVarP(&targetOption, "target", "t", "", "Build target whose closure gets audited. (required)")
	auditCmd.Flags().StringVarP(&approvedOption, "approved", "", "", "Path or URL of the approved packages catalog.")
	auditCmd.Flags().StringVarP(&deniedOption, "denied", "", "", "Path or URL of the denied packages catalog.")
	auditCmd.Flags().StringArrayVarP(&suppressOption, "suppress", "", nil, "Denied coordinate to waive for this run. Repeatable.")
	auditCmd.Flags().BoolVarP(&strictFlag, "strict", "", false, "Fail the run when unsuppressed denied packages are present.")
	auditCmd.Flags().StringVarP(&bomOption, "bom", "", "bom.yaml", "Output path for the BOM manifest.")
	auditCmd.Flags().StringVarP(&issuesOption, "bom-issues", "", "bom-issues.yaml", "Output path for the BOM-issues report.")
	auditCmd.Flags().IntVarP(&workersOption, "workers", "w", 0, "License lookup parallelism (0 means automatic).")
	auditCmd.Flags().StringVarP(&resolverCommand, "resolver-command", "", "", "External command for license lookups; the artifact URL is appended as last argument.")
	auditCmd.MarkFlagRequired("graph")
	auditCmd.MarkFlagRequired("target")
}
