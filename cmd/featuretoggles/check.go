package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinia/featuretoggles/featureflagx"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <flag>",
		Short: "Print whether a feature flag is enabled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := loadRouter(cmd)
			if err != nil {
				return err
			}

			ff := featureflagx.FeatureFlag(args[0])
			isEnabled, err := r.IsEnabled(ff)
			if err != nil {
				return err
			}

			state := "disabled"
			if isEnabled {
				state = "enabled"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", ff, state)
			return err
		},
	}
}
