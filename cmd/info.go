package cmd

import (
	"github.com/spf13/cobra"

	"github.com/velachain/vela-cli/command"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show build information about the CLI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, command.Tool{Info: &command.ShowBuildInfo{}})
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
