package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormatter renders command results as JSON, YAML or an aligned table.
type OutputFormatter struct {
	format string
	out    io.Writer
}

// NewOutputFormatter creates a new output formatter writing to out.
func NewOutputFormatter(format string, out io.Writer) *OutputFormatter {
	return &OutputFormatter{
		format: format,
		out:    out,
	}
}

// Print renders data in the configured format.
func (f *OutputFormatter) Print(data interface{}) error {
	switch f.format {
	case OutputFormatJSON:
		return f.printJSON(data)
	case OutputFormatYAML:
		return f.printYAML(data)
	case OutputFormatTable:
		return printTable(f.out, data)
	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

func (f *OutputFormatter) printJSON(data interface{}) error {
	generic, err := toGeneric(data)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(f.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(generic)
}

// printYAML goes through the JSON encoding so amounts, hashes and addresses
// look the same in both formats.
func (f *OutputFormatter) printYAML(data interface{}) error {
	generic, err := toGeneric(data)
	if err != nil {
		return err
	}
	yamlBytes, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	_, err = f.out.Write(yamlBytes)
	return err
}

// toGeneric round-trips data through JSON into maps, slices and scalars.
func toGeneric(data interface{}) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return generic, nil
}

// ValidateFormat checks if the output format is valid.
func ValidateFormat(format string) error {
	switch format {
	case OutputFormatJSON, OutputFormatYAML, OutputFormatTable:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (supported: json, yaml, table)", format)
	}
}
