package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys; flags, CMATGEN_* environment variables and the config
// file all resolve through these names.
const (
	keyConfig   = "config"
	keySeed     = "seed"
	keyTrials   = "trials"
	keyWorkers  = "workers"
	keyRetryCap = "retry-cap"
	keyOutDir   = "out-dir"
	keyLogLevel = "log-level"
	keyProgress = "progress"
)

// app carries the resolved configuration shared by subcommands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "cmatgen",
		Short:         "Generate oracle-verified matrix fixtures as C headers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (yaml, toml or json)")
	pf.String(keyLogLevel, "warn", "log level: debug, info, warn, error")

	root.AddCommand(newGenerateCmd(a), newFamiliesCmd())

	return root
}

// load binds flags and environment into viper, reads the optional config
// file, and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("CMATGEN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

// newLogger builds a text slog logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
