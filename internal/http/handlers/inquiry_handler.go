package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travelnest/internal/domain"
	applog "travelnest/internal/log"
	"travelnest/internal/services"
	"travelnest/internal/validate"
)

type InquiryHandler struct {
	Inquiries *services.InquiryService
}

// Create handles POST /api/inquiries. The referenced package id is typed but
// its existence is deliberately not checked (inquiries about withdrawn
// promotions are still worth a callback).
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var in domain.InquiryInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "inquiry.create.badbody", map[string]any{"err": err.Error()})
		return badRequest(c, "invalid request body")
	}
	if fe := validate.InquiryInput(in); fe != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": fe.Field})
		return validationFailed(c, fe)
	}
	inq, err := h.Inquiries.Create(in)
	if err != nil {
		return err
	}
	applog.Info(c, "inquiry.create", map[string]any{"id": inq.ID, "package_id": inq.PackageID})
	return c.Status(fiber.StatusCreated).JSON(inq)
}
