package command

import (
	"context"
	"fmt"
	"time"

	"github.com/velachain/vela-cli/config"
	"github.com/velachain/vela-cli/faucet"
	"github.com/velachain/vela-cli/logx"
	"github.com/velachain/vela-cli/types"
)

// FundsRequester asks a faucet to submit funding transactions for an address
// and returns the pending hashes in submission order.
type FundsRequester interface {
	RequestFunds(ctx context.Context, amount uint64, addr types.AccountAddress) ([]types.TxHash, error)
}

// TransactionWaiter blocks until a submitted transaction is finalized or the
// absolute deadline passes.
type TransactionWaiter interface {
	WaitForTransaction(ctx context.Context, hash types.TxHash, deadlineUnixSecs uint64) error
}

// FundAccount credits an account with coins from the faucet and waits for the
// funding transactions to land on chain.
type FundAccount struct {
	Account  types.AccountAddress
	NumCoins uint64
	Profile  ProfileOptions
	Faucet   FaucetOptions
	Rest     RestOptions

	// test seams; nil means build real clients from the options above
	requester FundsRequester
	waiter    TransactionWaiter
	now       func() time.Time
}

func (c *FundAccount) Name() string {
	return "FundAccount"
}

func (c *FundAccount) Execute(ctx context.Context) (interface{}, error) {
	requester := c.requester
	if requester == nil {
		faucetURL, err := c.Faucet.FaucetURL(c.Profile)
		if err != nil {
			return nil, err
		}
		requester = faucet.NewClient(faucetURL)
	}

	hashes, err := requester.RequestFunds(ctx, c.NumCoins, c.Account)
	if err != nil {
		return nil, err
	}
	logx.Info("FUND", fmt.Sprintf("Faucet submitted %d transaction(s) for %s", len(hashes), c.Account))

	// One deadline for the whole batch, computed before the first poll. The
	// grace window bounds the total wait of the funding operation, not each
	// transaction; it is never reset between hashes.
	deadline := uint64(c.clock()().Unix()) + config.FundTimeoutSeconds

	waiter := c.waiter
	if waiter == nil {
		client, err := c.Rest.Client(c.Profile)
		if err != nil {
			return nil, err
		}
		waiter = client
	}

	// Hashes are confirmed strictly in submission order: a later transaction
	// may depend on an earlier one being mined first.
	for _, hash := range hashes {
		if err := waiter.WaitForTransaction(ctx, hash, deadline); err != nil {
			return nil, err
		}
	}

	return fmt.Sprintf("Added %d coins to account %s", c.NumCoins, c.Account), nil
}

func (c *FundAccount) clock() func() time.Time {
	if c.now != nil {
		return c.now
	}
	return time.Now
}
