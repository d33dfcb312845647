package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/clinia/featuretoggles/configx"
	"github.com/clinia/featuretoggles/errorx"
	"github.com/clinia/featuretoggles/featureflagx"
	"github.com/clinia/featuretoggles/loggerx"
)

const logLevelFlagName = "log-level"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "featuretoggles",
		Short:        "Inspect feature flags and the decisions built on them",
		SilenceUsage: true,
	}
	configx.RegisterFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().String(logLevelFlagName, "warn", "Log level: debug, info, warn or error")

	cmd.AddCommand(newCheckCmd(), newEmailCmd())
	return cmd
}

func newLogger(cmd *cobra.Command) (*loggerx.Logger, error) {
	raw, err := cmd.Flags().GetString(logLevelFlagName)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return nil, errorx.InvalidArgumentErrorf("invalid --%s %q", logLevelFlagName, raw)
	}
	return loggerx.New(cmd.ErrOrStderr(), level), nil
}

// loadRouter builds the flag table once per command invocation.
func loadRouter(cmd *cobra.Command) (*featureflagx.Router, *loggerx.Logger, error) {
	l, err := newLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	r, err := configx.NewRouter(cmd.Context(),
		configx.WithFlags(cmd.Flags()),
		configx.WithLogger(l),
	)
	if err != nil {
		return nil, nil, err
	}
	return r, l, nil
}
