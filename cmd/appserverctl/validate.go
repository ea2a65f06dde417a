package main

import (
	"fmt"

	"github.com/appserver-io/confnode/config"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var validateCmd = cobra.Command{
	Use:   "validate",
	Short: "Load the configuration and report errors and unbound nodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := control.loader(config.WithoutValidation()).Load()
		if err != nil {
			return err
		}

		if err := config.Validate(root); err != nil {
			errs := multierr.Errors(err)
			for _, e := range errs {
				zap.L().Error("Invalid configuration", zap.Error(e))
			}
			return fmt.Errorf("%d configuration errors", len(errs))
		}

		for _, w := range config.Unbound(root) {
			zap.L().Warn("Unbound node", zap.String("node", w))
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", control.Configuration)
		return nil
	},
}
