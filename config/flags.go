// Package config holds the CLI flag names shared by the talentstake commands.
package config

// Flag constants for CLI commands.
const (
	// LogLevelFlag is the flag for setting log level.
	LogLevelFlag      = "log-level"
	ShortLogLevelFlag = "l"

	// ConfigFileFlag is the flag for specifying config file.
	ConfigFileFlag      = "config"
	ShortConfigFileFlag = "c"

	// OutputTypeFlag is the flag for output format.
	OutputTypeFlag      = "output"
	ShortOutputTypeFlag = "o"

	// PrincipalFlag is the address the command acts as.
	PrincipalFlag      = "principal"
	ShortPrincipalFlag = "p"

	// OnchainFlag reads balances from the configured ERC-20 token instead of the ledger.
	OnchainFlag = "onchain"
)
