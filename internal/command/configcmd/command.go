package configcmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/marchand/storefront/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Dump the resolved configuration",
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			spew.Dump(conf)

			return nil
		},
	}
}
