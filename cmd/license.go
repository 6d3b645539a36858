package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auditkit/ossaudit/licenses"
	"github.com/auditkit/ossaudit/pathlib"
	"github.com/auditkit/ossaudit/pretty"
)

var licenseOutput string

var licenseCmd = &cobra.Command{
	Use:   "license <artifact-url>",
	Short: "Resolve license metadata for one artifact URL.",
	Long: `Resolve license metadata for one artifact URL, the same way the
audit does it for every package in the closure. Useful for checking
a single package or debugging repository access.

Example:
  ossaudit license https://repo1.maven.org/maven2/com/google/code/findbugs/jsr305/3.0.2/jsr305-3.0.2.jar`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resolver licenses.Resolver = licenses.NewPomResolver()
		if len(resolverCommand) > 0 {
			resolver = licenses.NewCommandResolver(resolverCommand)
		}
		license, err := resolver.Resolve(args[0])
		if err != nil {
			pretty.Exit(1, "Error: %v", err)
		}
		if len(licenseOutput) > 0 {
			err = pathlib.WriteFile(licenseOutput, []byte(license+"\n"), 0o644)
			if err != nil {
				pretty.Exit(2, "Error: %v", err)
			}
			return pretty.Ok()
		}
		fmt.Println(license)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(licenseCmd)
	licenseCmd.Flags().StringVarP(&licenseOutput, "output", "o", "", "Write the license text to this file instead of stdout.")
	licenseCmd.Flags().StringVarP(&resolverCommand, "resolver-command", "", "", "External command for the lookup; the artifact URL is appended as last argument.")
}
