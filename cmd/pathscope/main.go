// Package main provides the CLI entrypoint for pathscope.
//
// pathscope inspects captured API example responses for field mapping:
//   - analyze lists every addressable path with its type and sample value
//   - validate checks a source path, with SOAP and namespace tolerant matching
//   - suggest proposes a target path from the source path and mapping history
//   - check validates a whole mapping history file against the example
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"pathscope/internal/cli"
	"pathscope/internal/config"
	"pathscope/internal/structure"
)

var version = "dev"

func main() {
	opts, err := cli.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if opts.ShowVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(opts.ConfigPath, opts.EnvFiles...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}

	defer func() { _ = logger.Sync() }()

	svc, err := structure.NewService(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create service", zap.Error(err))
	}

	runner := cli.NewRunner(svc, os.Stdout, logger)
	if err := runner.Run(opts); err != nil {
		if errors.Is(err, cli.ErrCheckFailed) {
			logger.Error("check failed", zap.Error(err))
			_ = logger.Sync()
			os.Exit(1)
		}

		logger.Fatal("command failed", zap.String("command", opts.Command), zap.Error(err))
	}
}
