package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"travelnest/internal/domain"
	applog "travelnest/internal/log"
	"travelnest/internal/services"
	"travelnest/internal/validate"
)

type PackageHandler struct {
	Catalog *services.CatalogService
}

// List handles GET /api/packages. The optional category query value is passed
// through to storage unchanged.
func (h *PackageHandler) List(c *fiber.Ctx) error {
	pkgs, err := h.Catalog.List(c.Query("category"))
	if err != nil {
		return err
	}
	return c.JSON(pkgs)
}

// Get handles GET /api/packages/:id. A non-numeric id behaves like an unknown
// one: both are 404, never a server error.
func (h *PackageHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c, "Package not found")
	}
	p, err := h.Catalog.Get(id)
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c, "Package not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// Create handles POST /api/packages. Validation runs before any persistence;
// storage errors propagate to the app-level error handler.
func (h *PackageHandler) Create(c *fiber.Ctx) error {
	var in domain.PackageInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "package.create.badbody", map[string]any{"err": err.Error()})
		return badRequest(c, "invalid request body")
	}
	if fe := validate.PackageInput(in); fe != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": fe.Field})
		return validationFailed(c, fe)
	}
	p, err := h.Catalog.Create(in)
	if err != nil {
		return err
	}
	applog.Info(c, "package.create", map[string]any{"id": p.ID, "category": p.Category})
	return c.Status(fiber.StatusCreated).JSON(p)
}
