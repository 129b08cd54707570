package config

const (
	// DefaultProfileName is used when neither the --profile flag nor the
	// settings file selects one.
	DefaultProfileName = "default"

	// DefaultFundedCoins is the faucet amount when --num-coins is omitted.
	DefaultFundedCoins uint64 = 50000

	// FundTimeoutSeconds bounds the total confirmation wait of one funding
	// operation. The deadline is computed once per invocation and shared by
	// every transaction in the faucet's batch, so large batches do not
	// extend the wait.
	FundTimeoutSeconds uint64 = 10

	// DefaultPollIntervalMs is the pause between confirmation polls.
	DefaultPollIntervalMs = 500

	DefaultRestURL   = "http://localhost:8080"
	DefaultFaucetURL = "http://localhost:8081"
)

const (
	ProfileFileName  = "config.yaml"
	SettingsFileName = "cli.ini"
)
