package command

import (
	"context"

	"github.com/velachain/vela-cli/rest"
	"github.com/velachain/vela-cli/types"
)

// AccountLookup fetches the node's current view of an account.
type AccountLookup interface {
	GetAccount(ctx context.Context, addr types.AccountAddress) (*rest.Account, error)
}

// AccountBalance reports the balance and sequence number of an account.
type AccountBalance struct {
	Account types.AccountAddress
	Profile ProfileOptions
	Rest    RestOptions

	lookup AccountLookup // test seam
}

// BalancePayload is the typed result of AccountBalance.
type BalancePayload struct {
	Account        string `json:"account"`
	Balance        string `json:"balance"`
	SequenceNumber uint64 `json:"sequence_number"`
}

func (c *AccountBalance) Name() string {
	return "AccountBalance"
}

func (c *AccountBalance) Execute(ctx context.Context) (interface{}, error) {
	lookup := c.lookup
	if lookup == nil {
		client, err := c.Rest.Client(c.Profile)
		if err != nil {
			return nil, err
		}
		lookup = client
	}

	account, err := lookup.GetAccount(ctx, c.Account)
	if err != nil {
		return nil, err
	}
	return BalancePayload{
		Account:        c.Account.String(),
		Balance:        account.Balance.String(),
		SequenceNumber: account.SequenceNumber,
	}, nil
}
