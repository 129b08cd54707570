package command

import (
	"context"

	"github.com/velachain/vela-cli/buildinfo"
)

// ShowBuildInfo reports build diagnostics about the CLI binary itself.
// Serialization sorts the keys, so repeated runs diff cleanly.
type ShowBuildInfo struct{}

func (ShowBuildInfo) Name() string {
	return "ShowBuildInfo"
}

func (ShowBuildInfo) Execute(ctx context.Context) (interface{}, error) {
	return buildinfo.Collect(), nil
}
