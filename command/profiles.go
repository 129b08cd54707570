package command

import (
	"context"
	"path/filepath"

	"github.com/velachain/vela-cli/config"
)

// ShowProfiles lists every configured network profile with its resolved
// endpoints.
type ShowProfiles struct {
	Profile ProfileOptions
}

func (c *ShowProfiles) Name() string {
	return "ShowProfiles"
}

func (c *ShowProfiles) Execute(ctx context.Context) (interface{}, error) {
	dir := c.Profile.ConfigDir
	if dir == "" {
		dir = config.DefaultConfigDir()
	}
	profiles, err := config.LoadProfiles(filepath.Join(dir, config.ProfileFileName))
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
