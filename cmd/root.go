package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velachain/vela-cli/command"
	"github.com/velachain/vela-cli/logx"
)

var globalFlags struct {
	Profile   string
	ConfigDir string
	RestURL   string
	FaucetURL string
}

var rootCmd = &cobra.Command{
	Use:   "vela",
	Short: "Vela blockchain CLI",
	Long:  "Command line interface for interacting with a Vela blockchain network.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed: ", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.Profile, "profile", "", "Network profile to use (defaults to the configured default profile)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigDir, "config-dir", "", "Directory holding config.yaml and cli.ini (default ~/.vela)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.RestURL, "rest-url", "", "Node REST endpoint, overrides the profile")
	rootCmd.PersistentFlags().StringVar(&globalFlags.FaucetURL, "faucet-url", "", "Faucet endpoint, overrides the profile")
}

func profileOptions() command.ProfileOptions {
	return command.ProfileOptions{
		Name:      globalFlags.Profile,
		ConfigDir: globalFlags.ConfigDir,
	}
}

// runTool dispatches the selected command variant and prints its serialized
// result. Errors bubble back to cobra, which reports them on stderr.
func runTool(cmd *cobra.Command, tool command.Tool) error {
	out, err := tool.Dispatch(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
