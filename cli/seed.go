package cli

import (
	"errors"
	"os"
	"saapadu/shared/constant"
	"saapadu/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	file   string
	fake   bool
	seed   int64
	counts Counts
}

func newSeedCommand() *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Append records from a yaml/json file or generated demo data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var data SeedData

			switch {
			case opts.file != constant.Empty:
				loaded, err := LoadSeedFile(opts.file)
				if err != nil {
					return err
				}

				data = loaded
			case opts.fake:
				data = Fake(opts.seed, opts.counts, timezone.Now())
			default:
				return errors.New("either --file or --fake is required")
			}

			app := loadApp(cmd.Context())
			defer app.Shutdown(cmd.Context())

			seeder := Seeder{
				Hotels:    app.Services.Hotel,
				Reviews:   app.Services.Review,
				Promos:    app.Services.Promo,
				Orders:    app.Repositories.Orders,
				Donations: app.Repositories.Donations,
				Users:     app.Repositories.Users,
				Store:     app.Store,
			}

			summary, err := seeder.Seed(cmd.Context(), data, os.Stderr)
			if err != nil {
				log.Error().Err(err).Msg("failed to seed")

				return err
			}

			log.Info().
				Int("hotels", summary.Hotels).
				Int("orders", summary.Orders).
				Int("donations", summary.Donations).
				Int("reviews", summary.Reviews).
				Int("promoCodes", summary.PromoCodes).
				Int("users", summary.Users).
				Msg("Seeding completed.")

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", constant.Empty, "seed file (yaml or json)")
	flags.BoolVar(&opts.fake, "fake", false, "generate demo data")
	flags.Int64Var(&opts.seed, "seed", 42, "random seed for --fake")
	flags.IntVar(&opts.counts.Hotels, "hotels", 5, "hotels to generate")
	flags.IntVar(&opts.counts.Orders, "orders", 40, "orders to generate")
	flags.IntVar(&opts.counts.Donations, "donations", 8, "donations to generate")
	flags.IntVar(&opts.counts.Reviews, "reviews", 15, "reviews to generate")
	flags.IntVar(&opts.counts.PromoCodes, "promo-codes", 3, "promo codes to generate")
	flags.IntVar(&opts.counts.Users, "users", 12, "registered users to generate")

	cmd.MarkFlagsMutuallyExclusive("file", "fake")

	return cmd
}
