package service

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/casalista/backend/internal/app/appconfig"
	"github.com/casalista/backend/internal/pkg/apperr"
)

// ErrUnauthorized is returned when a mutation is attempted without the
// required credential.
var ErrUnauthorized = apperr.New(fiber.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid credentials")

type tokenKey struct{}

// CtxWithToken attaches the caller's credential to the context; the
// transport layer calls this before handing the context to a service.
func CtxWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Authorizer is the capability guarding mutations. It is supplied from the
// outside rather than hardcoded, so deployments can swap the policy.
type Authorizer interface {
	// CanMutate reports whether the caller behind ctx may perform mutations.
	CanMutate(ctx context.Context) error
}

// tokenAuthorizer admits every caller when no admin token is configured,
// and otherwise requires the matching bearer token.
type tokenAuthorizer struct {
	token string
}

func NewAuthorizer(conf *appconfig.Config) Authorizer {
	return &tokenAuthorizer{token: conf.AdminToken}
}

func (a *tokenAuthorizer) CanMutate(ctx context.Context) error {
	if a.token == "" {
		return nil
	}
	if tokenFromCtx(ctx) != a.token {
		return ErrUnauthorized
	}
	return nil
}
