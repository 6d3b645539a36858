package cmd

import (
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/pretty"
	"github.com/auditkit/ossaudit/xviper"
)

var configurationCmd = &cobra.Command{
	Use:     "configuration",
	Aliases: []string{"config"},
	Short:   "Show the persisted configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		blob, err := yaml.Marshal(xviper.AllSettings())
		if err != nil {
			pretty.Exit(1, "Error: %v", err)
		}
		common.Stdout("Configuration file: %s\n", common.ConfigFile())
		common.Stdout("%s", string(blob))
		return nil
	},
}

var configurationSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one configuration value.",
	Long: `Persist one configuration value. Known keys:
  audit.resolver.command   default external license lookup command`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		xviper.Set(args[0], args[1])
		return pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(configurationCmd)
	configurationCmd.AddCommand(configurationSetCmd)
}
