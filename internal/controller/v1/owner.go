package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/casalista/backend/internal/model/types"
	"github.com/casalista/backend/internal/server/svr"
	"github.com/casalista/backend/internal/service"
	"github.com/casalista/backend/internal/util/rekuest"
)

type Owner struct {
	fx.In

	OwnerService *service.Owner
}

func RegisterOwner(v1 *svr.V1, c Owner) {
	owners := v1.Group("/owners")
	owners.Get("", c.GetOwners)
	owners.Get("/:ownerId", c.GetOwnerByID)
	owners.Post("", c.CreateOwner)
	owners.Put("/:ownerId", c.UpdateOwner)
	owners.Delete("/:ownerId", c.DeleteOwner)
}

func (c Owner) GetOwners(ctx *fiber.Ctx) error {
	owners, err := c.OwnerService.GetOwners(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(owners)
}

func (c Owner) GetOwnerByID(ctx *fiber.Ctx) error {
	owner, err := c.OwnerService.GetOwnerByID(ctx.UserContext(), ctx.Params("ownerId"))
	if err != nil {
		return err
	}
	return ctx.JSON(owner)
}

func (c Owner) CreateOwner(ctx *fiber.Ctx) error {
	submission, err := c.parseSubmission(ctx)
	if err != nil {
		return err
	}

	owner, err := c.OwnerService.CreateOwner(mutationContext(ctx), submission)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(owner)
}

func (c Owner) UpdateOwner(ctx *fiber.Ctx) error {
	submission, err := c.parseSubmission(ctx)
	if err != nil {
		return err
	}

	owner, err := c.OwnerService.UpdateOwner(mutationContext(ctx), ctx.Params("ownerId"), submission)
	if err != nil {
		return err
	}
	return ctx.JSON(owner)
}

func (c Owner) DeleteOwner(ctx *fiber.Ctx) error {
	if err := c.OwnerService.DeleteOwner(mutationContext(ctx), ctx.Params("ownerId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c Owner) parseSubmission(ctx *fiber.Ctx) (*types.OwnerSubmission, error) {
	var submission types.OwnerSubmission
	if err := rekuest.ValidBody(ctx, &submission); err != nil {
		return nil, err
	}

	submission.Image = filePart(ctx, "image")

	return &submission, nil
}
