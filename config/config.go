package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// DefaultConfigDir is where profiles and settings live unless --config-dir
// overrides it.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vela"
	}
	return filepath.Join(home, ".vela")
}

// LoadProfiles reads and parses the profile config file. A missing file is
// not an error: first-time users get an empty profile set and the built-in
// endpoint defaults apply.
func LoadProfiles(path string) (map[string]Profile, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open profile config %s: %w", path, err)
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		return nil, fmt.Errorf("unable to parse profile config %s: %w", path, err)
	}
	if cfgFile.Profiles == nil {
		cfgFile.Profiles = map[string]Profile{}
	}
	return cfgFile.Profiles, nil
}

// LoadSettings reads the INI settings file, falling back to defaults for a
// missing file or missing keys.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{
		DefaultProfile: DefaultProfileName,
		PollIntervalMs: DefaultPollIntervalMs,
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("unable to parse settings %s: %w", path, err)
	}
	if err := cfg.Section("").MapTo(settings); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	if settings.DefaultProfile == "" {
		settings.DefaultProfile = DefaultProfileName
	}
	if settings.PollIntervalMs <= 0 {
		settings.PollIntervalMs = DefaultPollIntervalMs
	}
	return settings, nil
}
