// Package rest is the client for a Vela node's public REST API.
package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/holiman/uint256"

	"github.com/velachain/vela-cli/config"
	"github.com/velachain/vela-cli/errors"
	"github.com/velachain/vela-cli/jsonx"
	"github.com/velachain/vela-cli/types"
)

const (
	routeAccounts     = "/v1/accounts/{address}"
	routeTransactions = "/v1/transactions/{hash}"

	requestTimeout = 30 * time.Second
)

type Config struct {
	Endpoint     string
	PollInterval time.Duration
}

// Account is the node's view of one account.
type Account struct {
	SequenceNumber uint64
	Balance        *uint256.Int
}

// TransactionInfo is the node's view of one transaction. Pending means the
// transaction is known but not yet finalized.
type TransactionInfo struct {
	Hash     string `json:"hash"`
	Pending  bool   `json:"pending"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
}

type accountPayload struct {
	SequenceNumber uint64 `json:"sequence_number"`
	Balance        string `json:"balance"`
}

type Client struct {
	cfg  Config
	http *resty.Client
}

func NewClient(cfg Config) *Client {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = config.DefaultPollIntervalMs * time.Millisecond
	}
	rc := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(requestTimeout)
	rc.JSONMarshal = jsonx.Marshal
	rc.JSONUnmarshal = jsonx.Unmarshal

	return &Client{cfg: cfg, http: rc}
}

func (c *Client) GetAccount(ctx context.Context, addr types.AccountAddress) (*Account, error) {
	var payload accountPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("address", addr.String()).
		SetResult(&payload).
		Get(routeAccounts)
	if err != nil {
		return nil, errors.Transportf("account lookup at %s failed: %v", c.cfg.Endpoint, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, errors.Transportf("account %s does not exist on chain", addr)
	}
	if resp.IsError() {
		return nil, errors.Transportf("node %s returned status %d: %s", c.cfg.Endpoint, resp.StatusCode(), resp.String())
	}

	balance, err := parseBalance(payload.Balance)
	if err != nil {
		return nil, errors.Unexpectedf("node returned malformed balance for %s: %v", addr, err)
	}
	return &Account{SequenceNumber: payload.SequenceNumber, Balance: balance}, nil
}

// GetTransactionByHash looks up one transaction. found is false while the
// node has not seen the hash yet, which is normal right after submission.
func (c *Client) GetTransactionByHash(ctx context.Context, hash types.TxHash) (info *TransactionInfo, found bool, err error) {
	var payload TransactionInfo
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("hash", hash.String()).
		SetResult(&payload).
		Get(routeTransactions)
	if err != nil {
		return nil, false, errors.Transportf("transaction lookup at %s failed: %v", c.cfg.Endpoint, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.IsError() {
		return nil, false, errors.Transportf("node %s returned status %d: %s", c.cfg.Endpoint, resp.StatusCode(), resp.String())
	}
	return &payload, true, nil
}

// WaitForTransaction polls hash until it is finalized or deadlineUnixSecs
// passes. The deadline is absolute and owned by the caller: one funding
// operation hands the same deadline to every wait, so the first check happens
// before any network call and an already-expired deadline fails immediately.
func (c *Client) WaitForTransaction(ctx context.Context, hash types.TxHash, deadlineUnixSecs uint64) error {
	for {
		if uint64(time.Now().Unix()) >= deadlineUnixSecs {
			return errors.Timeoutf("transaction %s was not confirmed before the deadline", hash)
		}

		info, found, err := c.GetTransactionByHash(ctx, hash)
		if err != nil {
			return err
		}
		if found && !info.Pending {
			if !info.Success {
				return errors.Transportf("transaction %s failed on chain: %s", hash, info.VMStatus)
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Transportf("confirmation wait for %s interrupted: %v", hash, ctx.Err())
		case <-time.After(c.cfg.PollInterval):
		}
	}
}

func parseBalance(s string) (*uint256.Int, error) {
	if s == "" {
		return uint256.NewInt(0), nil
	}
	balance, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q: %w", s, err)
	}
	return balance, nil
}
