package migrate

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/casalista/backend/cmd/app/cli"
	"github.com/uptrace/bun"
)

type CommandDeps struct {
	fx.In

	DB *bun.DB
}

func depsFn() func() CommandDeps {
	return func() CommandDeps {
		var deps CommandDeps
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Command() *cli.Command {
	deps := depsFn()
	return &cli.Command{
		Name:        "migrate",
		Description: "create the catalog tables if they do not exist",
		Action: func(ctx *cli.Context) error {
			return run(ctx, deps())
		},
	}
}
