package seed

import (
	"log/slog"

	"github.com/marchand/storefront/internal/config"
	"github.com/marchand/storefront/internal/fixtures"
	"github.com/marchand/storefront/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "Manage yaml fixture files",
		Subcommands: []*cli.Command{
			{
				Name:      "load",
				Usage:     "Load a yaml fixture file into the database",
				ArgsUsage: "<file>",
				Action: func(ctx *cli.Context) error {
					filename := ctx.Args().First()
					if filename == "" {
						return errors.New("missing fixture file argument")
					}

					conf, err := config.Parse()
					if err != nil {
						return errors.Wrap(err, "could not parse config")
					}

					db, err := setup.DatabaseFromConfig(ctx.Context, conf)
					if err != nil {
						return errors.Wrap(err, "could not open database")
					}

					set, err := fixtures.Load(ctx.Context, fixtures.NewStores(db), filename)
					if err != nil {
						return errors.Wrapf(err, "could not load fixtures from '%s'", filename)
					}

					slog.InfoContext(ctx.Context, "fixtures loaded",
						slog.String("file", filename),
						slog.Int("products", len(set.Products)),
						slog.Int("authors", len(set.Authors)),
						slog.Int("posts", len(set.Posts)),
					)

					return nil
				},
			},
		},
	}
}
