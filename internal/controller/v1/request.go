package v1

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/casalista/backend/internal/constant"
	"github.com/casalista/backend/internal/service"
)

// mutationContext carries the caller's bearer credential, if any, into the
// context handed to a mutating service.
func mutationContext(ctx *fiber.Ctx) context.Context {
	header := ctx.Get(fiber.HeaderAuthorization)
	token := strings.TrimSpace(strings.TrimPrefix(header, constant.AuthorizationRealm))
	if token == "" {
		return ctx.UserContext()
	}
	return service.CtxWithToken(ctx.UserContext(), token)
}

// filePart returns an optional multipart file part; an absent part is nil.
func filePart(ctx *fiber.Ctx, name string) *multipart.FileHeader {
	fh, err := ctx.FormFile(name)
	if err != nil {
		return nil
	}
	return fh
}
