package command

import (
	"context"

	"github.com/velachain/vela-cli/errors"
)

// Tool is the closed set of command variants. Argument parsing populates
// exactly one field per invocation; Dispatch routes to it and forwards its
// result or error unchanged. Every field must have a case in Dispatch —
// TestDispatchCoversEveryVariant enumerates the fields to keep the switch
// honest when a variant is added.
type Tool struct {
	Fund     *FundAccount
	Balance  *AccountBalance
	Info     *ShowBuildInfo
	Profiles *ShowProfiles
}

// Dispatch runs the selected variant and returns its serialized result.
func (t Tool) Dispatch(ctx context.Context) (string, error) {
	switch {
	case t.Fund != nil:
		return ExecuteSerialized(ctx, t.Fund)
	case t.Balance != nil:
		return ExecuteSerialized(ctx, t.Balance)
	case t.Info != nil:
		return ExecuteSerialized(ctx, t.Info)
	case t.Profiles != nil:
		return ExecuteSerialized(ctx, t.Profiles)
	default:
		return "", errors.Unexpectedf("no command selected")
	}
}
