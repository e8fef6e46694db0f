package migrate

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/casalista/backend/internal/model"
)

// tables in dependency order: properties reference owners, enquiries
// reference properties
var tables = []any{
	(*model.Owner)(nil),
	(*model.Property)(nil),
	(*model.Enquiry)(nil),
}

func run(ctx *cli.Context, deps CommandDeps) error {
	for _, table := range tables {
		if _, err := deps.DB.NewCreateTable().
			Model(table).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx.Context); err != nil {
			return errors.Wrapf(err, "failed to create table for %T", table)
		}
		log.Info().Msgf("ensured table for %T", table)
	}

	log.Info().Msg("migration finished")

	return nil
}
