package main

import (
	"github.com/marchand/storefront/internal/command"
	"github.com/marchand/storefront/internal/command/configcmd"
	"github.com/marchand/storefront/internal/command/routes"
	"github.com/marchand/storefront/internal/command/seed"
	"github.com/marchand/storefront/internal/command/serve"
)

func main() {
	command.Main(
		"storefront", "a demonstration storefront and blog server",
		serve.Command(),
		routes.Command(),
		seed.Command(),
		configcmd.Command(),
	)
}
