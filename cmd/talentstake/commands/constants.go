// Package commands provides CLI command implementations for the talentstake tool.
package commands

// Output format constants.
const (
	// OutputFormatJSON represents JSON output format.
	OutputFormatJSON = "json"
	// OutputFormatYAML represents YAML output format.
	OutputFormatYAML = "yaml"
	// OutputFormatTable renders aligned columns for reading in a terminal.
	OutputFormatTable = "table"
)

// PrincipalEnv supplies the principal when the flag is not set.
const PrincipalEnv = "TALENT_PRINCIPAL"
