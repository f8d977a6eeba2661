package civic

import (
	"errors"
	"strings"

	"civic-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for synced records.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inspection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/people/*", h.HandlePerson)
	app.Get("/organizations/*", h.HandleOrganization)
	app.Get("/jurisdictions/*", h.HandleJurisdiction)
}

// HandlePerson returns one person.
// @Summary Get Person
// @Description Returns a person with other names, links, sources, identifiers, contact details and memberships.
// @Tags records
// @Produce json
// @Param id path string true "Person id, e.g. ocd-person/0a1b"
// @Success 200 {object} models.Person
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /people/{id} [get]
func (h *Handler) HandlePerson(c *fiber.Ctx) error {
	p, err := h.service.Person(c.Context(), id(c))
	if err != nil {
		return h.fail(c, "person", err)
	}
	return c.JSON(p)
}

// HandleOrganization returns one organization.
// @Summary Get Organization
// @Description Returns an organization with links, sources, identifiers, posts and memberships.
// @Tags records
// @Produce json
// @Param id path string true "Organization id, e.g. ocd-organization/0a1b"
// @Success 200 {object} models.Organization
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /organizations/{id} [get]
func (h *Handler) HandleOrganization(c *fiber.Ctx) error {
	o, err := h.service.Organization(c.Context(), id(c))
	if err != nil {
		return h.fail(c, "organization", err)
	}
	return c.JSON(o)
}

// HandleJurisdiction summarizes one jurisdiction.
// @Summary Jurisdiction Summary
// @Description Counts the organizations (by classification), posts and people stored for a jurisdiction.
// @Tags records
// @Produce json
// @Param id path string true "Jurisdiction id"
// @Success 200 {object} JurisdictionSummary
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /jurisdictions/{id} [get]
func (h *Handler) HandleJurisdiction(c *fiber.Ctx) error {
	s, err := h.service.Summary(c.Context(), id(c))
	if err != nil {
		return h.fail(c, "jurisdiction", err)
	}
	return c.JSON(s)
}

// id is the wildcard remainder of the path; record ids contain slashes.
func id(c *fiber.Ctx) string {
	return strings.TrimSuffix(c.Params("*"), "/")
}

func (h *Handler) fail(c *fiber.Ctx, what string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": what + " not found"})
	}
	logger.WithRayID(h.service.logger, c).Error("Lookup failed",
		zap.String("type", what),
		zap.String("id", id(c)),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
