package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
)

func TestOutputFormatter(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		data     interface{}
		expected string
	}{
		{
			name:   "JSON output",
			format: OutputFormatJSON,
			data: map[string]interface{}{
				"name":  "test",
				"value": 123,
			},
			expected: `{
  "name": "test",
  "value": 123
}
`,
		},
		{
			name:   "YAML output",
			format: OutputFormatYAML,
			data: map[string]interface{}{
				"name":  "test",
				"value": 123,
			},
			expected: `name: test
value: 123
`,
		},
		{
			name:   "amounts print as decimal strings",
			format: OutputFormatYAML,
			data: map[string]interface{}{
				"bounty": entities.NewAmount(5_000_000),
			},
			expected: `bounty: "5000000"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter := NewOutputFormatter(tt.format, &buf)
			require.NotNil(t, formatter)

			require.NoError(t, formatter.Print(tt.data))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestOutputFormatter_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := NewOutputFormatter("xml", &buf).Print(map[string]string{"a": "b"})
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{
			name:    "valid JSON format",
			format:  OutputFormatJSON,
			wantErr: false,
		},
		{
			name:    "valid YAML format",
			format:  OutputFormatYAML,
			wantErr: false,
		},
		{
			name:    "valid table format",
			format:  OutputFormatTable,
			wantErr: false,
		},
		{
			name:    "invalid format",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
