package audit

import (
	"errors"

	"furnidata-manager/core/logger"
	"furnidata-manager/feature/catalog"
	"furnidata-manager/feature/emulator/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the emulator audit.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleAudit)
	group.Get("/schema", h.HandleSchema)
	group.Get("/:identifier", h.HandleItem)
}

// HandleAudit compares furnidata with the emulator furniture table.
// @Summary Audit Furnidata
// @Description Cross-check decoded furnidata against the emulator database by sprite id.
// @Tags audit
// @Produce json
// @Param source query string false "http(s) URL or storage object key"
// @Success 200 {object} Report "Audit report"
// @Failure 422 {object} map[string]string "Schema mismatch"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /audit [get]
func (h *Handler) HandleAudit(c *fiber.Ctx) error {
	report, err := h.service.Audit(c.UserContext(), c.Query("source"))
	if err != nil {
		return h.fail(c, "Audit failed", err)
	}
	return c.JSON(report)
}

// HandleSchema checks the emulator table columns.
// @Summary Emulator Schema
// @Description Verify the emulator furniture table has every column the audit reads.
// @Tags audit
// @Produce json
// @Success 200 {object} SchemaReport "Schema report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	report, err := h.service.Schema(c.UserContext())
	if err != nil {
		return h.fail(c, "Schema check failed", err)
	}
	return c.JSON(report)
}

// HandleItem compares a single item.
// @Summary Audit Item
// @Description Show the furnidata entries and emulator row of one identifier with their differences.
// @Tags audit
// @Produce json
// @Param identifier path string true "Sprite id, class name or public name"
// @Param source query string false "http(s) URL or storage object key"
// @Success 200 {object} ItemReport "Item report"
// @Failure 404 {object} map[string]any "Not found, with suggestions"
// @Router /audit/{identifier} [get]
func (h *Handler) HandleItem(c *fiber.Ctx) error {
	report, err := h.service.Item(c.UserContext(), c.Query("source"), c.Params("identifier"))
	if err != nil {
		return h.fail(c, "Audit item failed", err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := StatusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}

	body := fiber.Map{"error": err.Error()}
	var notFound *catalog.NotFoundError
	if errors.As(err, &notFound) {
		body["suggestions"] = notFound.Suggestions
	}
	return c.Status(status).JSON(body)
}

// StatusFor maps audit errors to HTTP status codes, deferring to the
// catalog mapping for source errors.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoDatabase):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, ErrSchemaMismatch):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, models.ErrUnsupportedEmulator):
		return fiber.StatusInternalServerError
	default:
		return catalog.StatusFor(err)
	}
}
