package test

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/casalista/backend/internal/app"
	"github.com/casalista/backend/internal/app/appcontext"
)

func populate(t *testing.T, targets ...interface{}) {
	t.Helper()

	// for testing, logger is too annoying. therefore we use a NopLogger here
	opts := app.Options(appcontext.Declare(appcontext.EnvServer), fx.NopLogger, fx.Populate(targets...))

	fxtest.New(t, opts...).RequireStart()
}
