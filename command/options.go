package command

import (
	"path/filepath"
	"time"

	"github.com/velachain/vela-cli/config"
	"github.com/velachain/vela-cli/rest"
)

// ProfileOptions selects which configured network profile a command runs
// against. Resolved before command construction and read-only afterwards.
type ProfileOptions struct {
	// Name of the profile; empty means the settings file's default.
	Name string
	// ConfigDir overrides where profile and settings files are read from.
	ConfigDir string
}

func (p ProfileOptions) configDir() string {
	if p.ConfigDir != "" {
		return p.ConfigDir
	}
	return config.DefaultConfigDir()
}

// Resolve returns the selected profile. An unconfigured profile name resolves
// to an empty Profile so the built-in endpoint defaults apply; only unreadable
// config is an error.
func (p ProfileOptions) Resolve() (config.Profile, error) {
	dir := p.configDir()

	name := p.Name
	if name == "" {
		settings, err := config.LoadSettings(filepath.Join(dir, config.SettingsFileName))
		if err != nil {
			return config.Profile{}, err
		}
		name = settings.DefaultProfile
	}

	profiles, err := config.LoadProfiles(filepath.Join(dir, config.ProfileFileName))
	if err != nil {
		return config.Profile{}, err
	}
	return profiles[name], nil
}

func (p ProfileOptions) pollInterval() time.Duration {
	settings, err := config.LoadSettings(filepath.Join(p.configDir(), config.SettingsFileName))
	if err != nil {
		return config.DefaultPollIntervalMs * time.Millisecond
	}
	return time.Duration(settings.PollIntervalMs) * time.Millisecond
}

// FaucetOptions carries the faucet endpoint override flag.
type FaucetOptions struct {
	URL string
}

// FaucetURL resolves the faucet endpoint: flag, then profile, then default.
func (f FaucetOptions) FaucetURL(p ProfileOptions) (string, error) {
	if f.URL != "" {
		return f.URL, nil
	}
	profile, err := p.Resolve()
	if err != nil {
		return "", err
	}
	if profile.FaucetURL != "" {
		return profile.FaucetURL, nil
	}
	return config.DefaultFaucetURL, nil
}

// RestOptions carries the node REST endpoint override flag.
type RestOptions struct {
	URL string
}

// RestURL resolves the node endpoint: flag, then profile, then default.
func (r RestOptions) RestURL(p ProfileOptions) (string, error) {
	if r.URL != "" {
		return r.URL, nil
	}
	profile, err := p.Resolve()
	if err != nil {
		return "", err
	}
	if profile.RestURL != "" {
		return profile.RestURL, nil
	}
	return config.DefaultRestURL, nil
}

// Client builds a REST client for the resolved endpoint.
func (r RestOptions) Client(p ProfileOptions) (*rest.Client, error) {
	url, err := r.RestURL(p)
	if err != nil {
		return nil, err
	}
	return rest.NewClient(rest.Config{Endpoint: url, PollInterval: p.pollInterval()}), nil
}
