package cmd

import (
	"github.com/spf13/cobra"

	"github.com/velachain/vela-cli/command"
	"github.com/velachain/vela-cli/config"
	"github.com/velachain/vela-cli/types"
)

var fundFlags struct {
	Account  string
	NumCoins string
}

var balanceFlags struct {
	Account string
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account operations",
}

var accountFundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Fund an account with coins from the faucet",
	Long: `Requests coins from the configured faucet and waits until every funding
transaction is confirmed on chain.

Examples:
  # Fund with the default amount
  vela account fund --account 0xABC

  # Fund 1000000 coins on the testnet profile
  vela account fund --account 0xABC --num-coins 1_000_000 --profile testnet`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := types.ParseAccountAddress(fundFlags.Account)
		if err != nil {
			return err
		}
		numCoins := config.DefaultFundedCoins
		if fundFlags.NumCoins != "" {
			numCoins, err = types.ParseCoinAmount(fundFlags.NumCoins)
			if err != nil {
				return err
			}
		}
		return runTool(cmd, command.Tool{Fund: &command.FundAccount{
			Account:  addr,
			NumCoins: numCoins,
			Profile:  profileOptions(),
			Faucet:   command.FaucetOptions{URL: globalFlags.FaucetURL},
			Rest:     command.RestOptions{URL: globalFlags.RestURL},
		}})
	},
}

var accountBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the balance and sequence number of an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := types.ParseAccountAddress(balanceFlags.Account)
		if err != nil {
			return err
		}
		return runTool(cmd, command.Tool{Balance: &command.AccountBalance{
			Account: addr,
			Profile: profileOptions(),
			Rest:    command.RestOptions{URL: globalFlags.RestURL},
		}})
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountFundCmd)
	accountCmd.AddCommand(accountBalanceCmd)

	accountFundCmd.Flags().StringVar(&fundFlags.Account, "account", "", "Address to fund (hex, 0x prefix optional)")
	accountFundCmd.Flags().StringVar(&fundFlags.NumCoins, "num-coins", "", "Coins to request, underscores allowed (default 50_000)")
	accountFundCmd.MarkFlagRequired("account")

	accountBalanceCmd.Flags().StringVar(&balanceFlags.Account, "account", "", "Address to look up (hex, 0x prefix optional)")
	accountBalanceCmd.MarkFlagRequired("account")
}
