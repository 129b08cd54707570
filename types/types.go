package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const addressMaxHexLength = 64

var (
	ErrInvalidAddress = errors.New("invalid account address")
	ErrInvalidAmount  = errors.New("invalid coin amount")
)

// AccountAddress is a validated on-chain account address. The zero value is
// not a usable address; construct through ParseAccountAddress.
type AccountAddress struct {
	hex string
}

// ParseAccountAddress accepts an optionally 0x-prefixed hex string and
// canonicalizes it: uppercase, leading zeros stripped. "0xabc", "ABC" and
// "0x0ABC" all resolve to the same address.
func ParseAccountAddress(s string) (AccountAddress, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if h == "" {
		return AccountAddress{}, fmt.Errorf("%w: empty input", ErrInvalidAddress)
	}
	if len(h) > addressMaxHexLength {
		return AccountAddress{}, fmt.Errorf("%w: expected at most %d hex characters, got %d", ErrInvalidAddress, addressMaxHexLength, len(h))
	}
	for i, c := range h {
		if !((c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'f') ||
			(c >= 'A' && c <= 'F')) {
			return AccountAddress{}, fmt.Errorf("%w: invalid character '%c' at position %d", ErrInvalidAddress, c, i)
		}
	}
	h = strings.ToUpper(strings.TrimLeft(h, "0"))
	if h == "" {
		h = "0"
	}
	return AccountAddress{hex: h}, nil
}

func (a AccountAddress) String() string {
	return "0x" + a.hex
}

func (a AccountAddress) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

func (a *AccountAddress) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	parsed, err := ParseAccountAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// TxHash is an opaque handle to a submitted, not yet confirmed transaction.
// The CLI never inspects it; it only hands it back to the node.
type TxHash string

func (h TxHash) String() string {
	return string(h)
}

// ParseCoinAmount parses a decimal coin amount. Underscore separators are
// allowed, e.g. "1_000_000".
func ParseCoinAmount(s string) (uint64, error) {
	cleaned := strings.ReplaceAll(s, "_", "")
	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	n, err := strconv.ParseUint(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return n, nil
}
