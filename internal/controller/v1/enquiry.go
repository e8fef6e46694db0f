package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/casalista/backend/internal/model/types"
	"github.com/casalista/backend/internal/server/svr"
	"github.com/casalista/backend/internal/service"
	"github.com/casalista/backend/internal/util/rekuest"
)

type Enquiry struct {
	fx.In

	EnquiryService *service.Enquiry
}

func RegisterEnquiry(v1 *svr.V1, c Enquiry) {
	enquiries := v1.Group("/enquiries")
	enquiries.Get("", c.GetEnquiries)
	enquiries.Post("", c.CreateEnquiry)
}

func (c Enquiry) GetEnquiries(ctx *fiber.Ctx) error {
	enquiries, err := c.EnquiryService.GetEnquiries(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(enquiries)
}

func (c Enquiry) CreateEnquiry(ctx *fiber.Ctx) error {
	var submission types.EnquirySubmission
	if err := rekuest.ValidBody(ctx, &submission); err != nil {
		return err
	}

	enquiry, err := c.EnquiryService.CreateEnquiry(ctx.UserContext(), &submission)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(enquiry)
}
