package routes

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/marchand/storefront/internal/http/handler/api"
	"github.com/marchand/storefront/internal/http/handler/web"
	"github.com/marchand/storefront/internal/http/middleware/session"
	httpRoutes "github.com/marchand/storefront/internal/http/routes"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "routes",
		Usage: "List the named routes exposed by the server",
		Action: func(ctx *cli.Context) error {
			// Constructing the handlers is what registers their routes;
			// none of them touches storage before serving a request.
			api.NewHandler(nil, nil)
			web.NewHandler(nil, nil)
			session.NewAuthenticator("")

			nameColor := color.New(color.FgCyan)
			methodColor := color.New(color.FgYellow)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)

			for _, name := range httpRoutes.Names() {
				pattern, _ := httpRoutes.Pattern(name)

				method, path, found := strings.Cut(pattern, " ")
				if !found {
					method, path = "*", pattern
				}

				fmt.Fprintf(w, "%s\t%s\t%s\n", nameColor.Sprint(name), methodColor.Sprint(method), path)
			}

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
