package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/casalista/backend/internal/model/types"
	"github.com/casalista/backend/internal/server/svr"
	"github.com/casalista/backend/internal/service"
	"github.com/casalista/backend/internal/util/rekuest"
)

type Property struct {
	fx.In

	PropertyService *service.Property
}

func RegisterProperty(v1 *svr.V1, c Property) {
	properties := v1.Group("/properties")
	properties.Get("", c.GetProperties)
	properties.Get("/:propertyId", c.GetPropertyByID)
	properties.Post("", c.CreateProperty)
	properties.Put("/:propertyId", c.UpdateProperty)
	properties.Delete("/:propertyId", c.DeleteProperty)
}

func (c Property) GetProperties(ctx *fiber.Ctx) error {
	properties, err := c.PropertyService.GetProperties(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(properties)
}

func (c Property) GetPropertyByID(ctx *fiber.Ctx) error {
	property, err := c.PropertyService.GetPropertyByID(ctx.UserContext(), ctx.Params("propertyId"))
	if err != nil {
		return err
	}
	return ctx.JSON(property)
}

func (c Property) CreateProperty(ctx *fiber.Ctx) error {
	submission, err := c.parseSubmission(ctx)
	if err != nil {
		return err
	}

	property, err := c.PropertyService.CreateProperty(mutationContext(ctx), submission)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(property)
}

func (c Property) UpdateProperty(ctx *fiber.Ctx) error {
	submission, err := c.parseSubmission(ctx)
	if err != nil {
		return err
	}

	property, err := c.PropertyService.UpdateProperty(mutationContext(ctx), ctx.Params("propertyId"), submission)
	if err != nil {
		return err
	}
	return ctx.JSON(property)
}

func (c Property) DeleteProperty(ctx *fiber.Ctx) error {
	if err := c.PropertyService.DeleteProperty(mutationContext(ctx), ctx.Params("propertyId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c Property) parseSubmission(ctx *fiber.Ctx) (*types.PropertySubmission, error) {
	var submission types.PropertySubmission
	if err := rekuest.ValidBody(ctx, &submission); err != nil {
		return nil, err
	}

	submission.Image = filePart(ctx, "image")
	submission.OwnerImage = filePart(ctx, "ownerImage")

	return &submission, nil
}
