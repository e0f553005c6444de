package cli

import (
	"fmt"
	"saapadu/config"
	"saapadu/helper"
	"saapadu/shared/constant"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	validArgs := make([]string, 0, len(helper.Actions))
	for _, action := range helper.Actions {
		validArgs = append(validArgs, string(action))
	}

	return &cobra.Command{
		Use:       "migrate {up|step-up|down|drop}",
		Short:     "Move the postgres storage schema",
		ValidArgs: validArgs,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := config.Get()
			if cfg.Storage.Driver != constant.StorageDriverPostgres {
				return fmt.Errorf("migrations need STORAGE_DRIVER=%s, got %q", constant.StorageDriverPostgres, cfg.Storage.Driver)
			}

			return helper.Migrate(cfg, helper.Action(args[0]))
		},
	}
}
