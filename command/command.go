// Package command defines the CLI's command contract and the closed set of
// command variants the tool can run.
package command

import (
	"context"

	"github.com/velachain/vela-cli/errors"
	"github.com/velachain/vela-cli/jsonx"
	"github.com/velachain/vela-cli/logx"
)

// Command is implemented by every command variant. A value is constructed
// once from parsed arguments and executed exactly once; variants own their
// inputs and share nothing across executions.
type Command interface {
	// Name is a stable identifier for logging. No side effects.
	Name() string

	// Execute runs the command, returning its typed payload. It may perform
	// network I/O but never touches the filesystem or global state.
	Execute(ctx context.Context) (interface{}, error)
}

type resultEnvelope struct {
	Result interface{} `json:"Result"`
}

// ExecuteSerialized runs c and renders its payload as indented JSON inside a
// Result envelope. Failures pass through with their classification untouched.
func ExecuteSerialized(ctx context.Context, c Command) (string, error) {
	logx.Info("CLI", "Running ", c.Name())
	payload, err := c.Execute(ctx)
	if err != nil {
		logx.Error("CLI", c.Name(), " failed: ", err)
		return "", err
	}

	out, mErr := jsonx.MarshalIndent(resultEnvelope{Result: payload}, "", "  ")
	if mErr != nil {
		return "", errors.Unexpectedf("unable to serialize %s output: %v", c.Name(), mErr)
	}
	return string(out), nil
}
