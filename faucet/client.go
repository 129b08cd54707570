// Package faucet is the HTTP client for a Vela faucet service. The faucet
// signs and submits the funding transactions itself; the CLI only asks for
// them and gets back the pending transaction hashes.
package faucet

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/velachain/vela-cli/errors"
	"github.com/velachain/vela-cli/jsonx"
	"github.com/velachain/vela-cli/types"
)

const (
	routeMint      = "/mint"
	requestTimeout = 30 * time.Second
)

type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)
	rc.JSONMarshal = jsonx.Marshal
	rc.JSONUnmarshal = jsonx.Unmarshal

	return &Client{http: rc, baseURL: baseURL}
}

// RequestFunds asks the faucet to credit amount coins to addr. The faucet may
// chain several transactions per request; the returned hashes are in
// submission order and callers must confirm them in that order.
func (c *Client) RequestFunds(ctx context.Context, amount uint64, addr types.AccountAddress) ([]types.TxHash, error) {
	var hashes []string
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("amount", strconv.FormatUint(amount, 10)).
		SetQueryParam("address", addr.String()).
		SetResult(&hashes).
		Post(routeMint)
	if err != nil {
		return nil, errors.Transportf("faucet request to %s failed: %v", c.baseURL, err)
	}
	if resp.IsError() {
		return nil, errors.Transportf("faucet %s returned status %d: %s", c.baseURL, resp.StatusCode(), resp.String())
	}

	pending := make([]types.TxHash, len(hashes))
	for i, h := range hashes {
		pending[i] = types.TxHash(h)
	}
	return pending, nil
}
