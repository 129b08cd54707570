package cmd

import (
	"github.com/spf13/cobra"

	"github.com/velachain/vela-cli/command"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Network profile configuration",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured network profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, command.Tool{Profiles: &command.ShowProfiles{
			Profile: profileOptions(),
		}})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd)
}
