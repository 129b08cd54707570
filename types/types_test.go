package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velachain/vela-cli/jsonx"
)

func TestParseAccountAddress(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0xABC", "0xABC"},
		{"0xabc", "0xABC"},
		{"abc", "0xABC"},
		{"0x0abc", "0xABC"},
		{"0x000000000000000000000000000000000000000000000000000000000000000a", "0xA"},
		{"0x0", "0x0"},
	}
	for _, c := range cases {
		addr, err := ParseAccountAddress(c.in)
		require.NoError(t, err, "input %q", c.in)
		require.Equal(t, c.want, addr.String(), "input %q", c.in)
	}
}

func TestParseAccountAddressRejectsBadInput(t *testing.T) {
	for _, in := range []string{
		"",
		"0x",
		"0xZZ",
		"12 34",
		"0x" + "ff00ff00ff00ff00ff00ff00ff00ff00ff00ff00ff00ff00ff00ff00ff00ff00ab", // 66 chars
	} {
		_, err := ParseAccountAddress(in)
		require.ErrorIs(t, err, ErrInvalidAddress, "input %q", in)
	}
}

func TestAccountAddressJSONRoundTrip(t *testing.T) {
	addr, err := ParseAccountAddress("0xabc")
	require.NoError(t, err)

	data, err := jsonx.Marshal(addr)
	require.NoError(t, err)
	require.Equal(t, `"0xABC"`, string(data))

	var decoded AccountAddress
	require.NoError(t, jsonx.Unmarshal(data, &decoded))
	require.Equal(t, addr, decoded)
}

func TestParseCoinAmount(t *testing.T) {
	n, err := ParseCoinAmount("1_000_000")
	require.NoError(t, err)
	require.Equal(t, uint64(1000000), n)

	n, err = ParseCoinAmount("0")
	require.NoError(t, err)
	require.Equal(t, uint64(0), n)

	for _, in := range []string{"", "_", "-5", "12.5", "abc"} {
		_, err := ParseCoinAmount(in)
		require.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}
