package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"pathscope/internal/mapping"
)

// ErrUsage is returned for a missing or unknown subcommand.
var ErrUsage = errors.New("usage: pathscope <" + strings.Join(Commands, "|") + "> [flags]")

// ParseArgs parses command line arguments into Options. The first argument
// names the subcommand; --version is accepted without one.
func ParseArgs(args []string) (*Options, error) {
	opts := &Options{}

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		opts.Command = args[0]
		args = args[1:]
	}

	var direction, envFiles string

	fs := pflag.NewFlagSet("pathscope "+opts.Command, pflag.ContinueOnError)
	fs.StringVarP(&opts.ExamplePath, "example", "e", "", "example response file (.json, .yaml)")
	fs.StringVarP(&opts.MappingsPath, "mappings", "m", "", "mapping history file (.yaml)")
	fs.StringVarP(&opts.SourcePath, "path", "p", "", "source path to validate or suggest a target for")
	fs.StringVarP(&direction, "direction", "d", "", "mapping direction: request or response")
	fs.StringVarP(&opts.ConfigPath, "config", "c", "", "configuration file (.yaml)")
	fs.StringVar(&envFiles, "env-file", "", "comma-separated .env files to load")
	fs.StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	fs.BoolVarP(&opts.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.ShowVersion {
		return opts, nil
	}

	if !slices.Contains(Commands, opts.Command) {
		if opts.Command == "" {
			return nil, ErrUsage
		}

		return nil, fmt.Errorf("unknown command %q: %w", opts.Command, ErrUsage)
	}

	if direction != "" {
		d, err := mapping.ParseDirection(direction)
		if err != nil {
			return nil, fmt.Errorf("--direction: %w", err)
		}

		opts.Direction = d
	}

	opts.EnvFiles = splitCommaList(envFiles)

	if err := opts.requireFlags(); err != nil {
		return nil, err
	}

	return opts, nil
}

func (o *Options) requireFlags() error {
	switch o.Command {
	case CommandAnalyze:
		if strings.TrimSpace(o.ExamplePath) == "" {
			return fmt.Errorf("%s: --example is required", o.Command)
		}
	case CommandValidate, CommandSuggest:
		if strings.TrimSpace(o.SourcePath) == "" {
			return fmt.Errorf("%s: --path is required", o.Command)
		}
	case CommandCheck:
		if strings.TrimSpace(o.MappingsPath) == "" {
			return fmt.Errorf("%s: --mappings is required", o.Command)
		}
	}

	return nil
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
