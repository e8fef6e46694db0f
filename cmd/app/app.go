package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/casalista/backend/cmd/app/cli/migrate"
	"github.com/casalista/backend/cmd/app/server"
	"github.com/casalista/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "casalista",
		Description: "The Casalista rental catalog backend. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			migrate.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
