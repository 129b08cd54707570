package config

// Profile names the endpoints of one network the CLI can talk to.
type Profile struct {
	RestURL   string `yaml:"rest_url" json:"rest_url"`
	FaucetURL string `yaml:"faucet_url" json:"faucet_url"`
}

// ConfigFile is the on-disk shape of the profile config.
type ConfigFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Settings are tool-wide knobs kept separate from network profiles.
type Settings struct {
	DefaultProfile string `ini:"default_profile"`
	PollIntervalMs int    `ini:"poll_interval_ms"`
}
