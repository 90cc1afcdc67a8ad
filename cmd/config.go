package cmd

import (
	"github.com/marcus/wingsfly/internal/config"
	"github.com/marcus/wingsfly/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as JSON",
	Long: `Print the configuration after defaults, config file and WINGSFLY_*
environment overrides are applied. Invalid values are reported as errors.

With --check only the validation result is printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := config.Resolve(getBaseDir(), configPath)
		if err != nil {
			return err
		}
		if check, _ := cmd.Flags().GetBool("check"); check {
			if used == "" {
				output.Warning("no config file found, using defaults")
				return nil
			}
			output.Success("%s is valid", used)
			return nil
		}
		return output.JSON(cfg)
	},
}

func init() {
	configCmd.Flags().Bool("check", false, "validate the config and report which file was used")
	rootCmd.AddCommand(configCmd)
}
