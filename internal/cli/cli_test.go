package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathscope/internal/mapping"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Options
	}{
		{
			name:     "analyze",
			args:     []string{"analyze", "--example", "resp.json"},
			expected: &Options{Command: CommandAnalyze, ExamplePath: "resp.json"},
		},
		{
			name: "validate with short flags",
			args: []string{"validate", "-e", "resp.xml.json", "-p", "Body[*].x", "-d", "Response"},
			expected: &Options{
				Command:     CommandValidate,
				ExamplePath: "resp.xml.json",
				SourcePath:  "Body[*].x",
				Direction:   mapping.DirectionResponse,
			},
		},
		{
			name: "suggest with config and env files",
			args: []string{"suggest", "--path", "data.name", "--config", "c.yaml", "--env-file", "a.env, b.env", "--log-level", "debug"},
			expected: &Options{
				Command:    CommandSuggest,
				SourcePath: "data.name",
				ConfigPath: "c.yaml",
				EnvFiles:   []string{"a.env", "b.env"},
				LogLevel:   "debug",
			},
		},
		{
			name:     "check",
			args:     []string{"check", "-m", "map.yaml"},
			expected: &Options{Command: CommandCheck, MappingsPath: "map.yaml"},
		},
		{
			name:     "version without command",
			args:     []string{"--version"},
			expected: &Options{ShowVersion: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no command", nil, "usage"},
		{"unknown command", []string{"gen"}, `unknown command "gen"`},
		{"analyze without example", []string{"analyze"}, "--example is required"},
		{"validate without path", []string{"validate", "-e", "x.json"}, "--path is required"},
		{"suggest without path", []string{"suggest"}, "--path is required"},
		{"check without mappings", []string{"check"}, "--mappings is required"},
		{"bad direction", []string{"validate", "-p", "a", "-d", "up"}, "--direction"},
		{"unknown flag", []string{"analyze", "--nope"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := ParseArgs([]string{"gen"})
	assert.ErrorIs(t, err, ErrUsage)

	_, err = ParseArgs([]string{"analyze", "--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}
