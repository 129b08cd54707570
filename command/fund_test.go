package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/velachain/vela-cli/config"
	"github.com/velachain/vela-cli/errors"
	"github.com/velachain/vela-cli/types"
)

type fakeFaucet struct {
	hashes []types.TxHash
	err    error

	calls     int
	gotAmount uint64
	gotAddr   types.AccountAddress
}

func (f *fakeFaucet) RequestFunds(ctx context.Context, amount uint64, addr types.AccountAddress) ([]types.TxHash, error) {
	f.calls++
	f.gotAmount = amount
	f.gotAddr = addr
	if f.err != nil {
		return nil, f.err
	}
	return f.hashes, nil
}

type fakeWaiter struct {
	failAt   int // 1-based call index that fails; 0 = never
	failWith error

	polled    []types.TxHash
	deadlines []uint64
}

func (w *fakeWaiter) WaitForTransaction(ctx context.Context, hash types.TxHash, deadlineUnixSecs uint64) error {
	w.polled = append(w.polled, hash)
	w.deadlines = append(w.deadlines, deadlineUnixSecs)
	if w.failAt == len(w.polled) {
		return w.failWith
	}
	return nil
}

func mustAddr(t *testing.T, s string) types.AccountAddress {
	t.Helper()
	addr, err := types.ParseAccountAddress(s)
	require.NoError(t, err)
	return addr
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFundAccountSuccess(t *testing.T) {
	requester := &fakeFaucet{hashes: []types.TxHash{"T1", "T2"}}
	waiter := &fakeWaiter{}
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	cmd := &FundAccount{
		Account:   mustAddr(t, "0xABC"),
		NumCoins:  100,
		requester: requester,
		waiter:    waiter,
		now:       fixedClock(at),
	}
	out, err := cmd.Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Added 100 coins to account 0xABC", out)

	require.Equal(t, 1, requester.calls)
	require.Equal(t, uint64(100), requester.gotAmount)
	require.Equal(t, "0xABC", requester.gotAddr.String())

	// polled strictly in submission order
	require.Equal(t, []types.TxHash{"T1", "T2"}, waiter.polled)

	// one shared deadline across the whole batch, computed once
	want := uint64(at.Unix()) + config.FundTimeoutSeconds
	require.Equal(t, []uint64{want, want}, waiter.deadlines)
}

func TestFundAccountEmptyBatchSucceedsImmediately(t *testing.T) {
	requester := &fakeFaucet{hashes: nil}
	waiter := &fakeWaiter{}

	cmd := &FundAccount{
		Account:   mustAddr(t, "0xABC"),
		NumCoins:  0,
		requester: requester,
		waiter:    waiter,
	}
	out, err := cmd.Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Added 0 coins to account 0xABC", out)
	require.Empty(t, waiter.polled)
}

func TestFundAccountTimeoutAbandonsRemaining(t *testing.T) {
	requester := &fakeFaucet{hashes: []types.TxHash{"T1", "T2", "T3"}}
	waiter := &fakeWaiter{failAt: 1, failWith: errors.Timeoutf("transaction T1 was not confirmed before the deadline")}

	cmd := &FundAccount{
		Account:   mustAddr(t, "0xABC"),
		NumCoins:  100,
		requester: requester,
		waiter:    waiter,
	}
	_, err := cmd.Execute(context.Background())
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeTimeout, errors.CodeOf(err))
	// T2 and T3 are abandoned, not polled
	require.Equal(t, []types.TxHash{"T1"}, waiter.polled)
}

func TestFundAccountNoPartialSuccessReport(t *testing.T) {
	// T1 confirms, T2 times out: the result is a timeout, never a
	// "1 of 2 funded" style message.
	requester := &fakeFaucet{hashes: []types.TxHash{"T1", "T2"}}
	waiter := &fakeWaiter{failAt: 2, failWith: errors.Timeoutf("transaction T2 was not confirmed before the deadline")}

	cmd := &FundAccount{
		Account:   mustAddr(t, "0xABC"),
		NumCoins:  100,
		requester: requester,
		waiter:    waiter,
	}
	out, err := cmd.Execute(context.Background())
	require.Nil(t, out)
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeTimeout, errors.CodeOf(err))
	require.Equal(t, []types.TxHash{"T1", "T2"}, waiter.polled)
}

func TestFundAccountTransportErrorAborts(t *testing.T) {
	requester := &fakeFaucet{hashes: []types.TxHash{"T1", "T2"}}
	waiter := &fakeWaiter{failAt: 1, failWith: errors.Transportf("connection refused")}

	cmd := &FundAccount{
		Account:   mustAddr(t, "0xABC"),
		NumCoins:  100,
		requester: requester,
		waiter:    waiter,
	}
	_, err := cmd.Execute(context.Background())
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeTransport, errors.CodeOf(err))
	require.Len(t, waiter.polled, 1)
}

func TestFundAccountFaucetErrorSkipsPolling(t *testing.T) {
	requester := &fakeFaucet{err: errors.Transportf("faucet dry")}
	waiter := &fakeWaiter{}

	cmd := &FundAccount{
		Account:   mustAddr(t, "0xABC"),
		NumCoins:  100,
		requester: requester,
		waiter:    waiter,
	}
	_, err := cmd.Execute(context.Background())
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeTransport, errors.CodeOf(err))
	require.Empty(t, waiter.polled)
}

func TestFundAccountSerializedResult(t *testing.T) {
	requester := &fakeFaucet{hashes: []types.TxHash{"T1"}}
	waiter := &fakeWaiter{}

	tool := Tool{Fund: &FundAccount{
		Account:   mustAddr(t, "0xABC"),
		NumCoins:  100,
		requester: requester,
		waiter:    waiter,
	}}
	out, err := tool.Dispatch(context.Background())
	require.NoError(t, err)
	require.Contains(t, out, `"Result": "Added 100 coins to account 0xABC"`)
}
