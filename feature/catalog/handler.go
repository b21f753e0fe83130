package catalog

import (
	"errors"

	"furnidata-manager/core/logger"
	"furnidata-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for furnidata.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the furnidata routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/furnidata")
	group.Get("/", h.HandleGetCatalog)
	group.Get("/summary", h.HandleGetSummary)
	group.Get("/sources", h.HandleGetSources)
	group.Get("/items/:identifier", h.HandleGetItem)
	group.Post("/decode", h.HandleDecode)
}

// HandleGetCatalog returns every decoded item of a payload.
// @Summary Decode Furnidata
// @Description Fetch and decode a furnidata payload (XML or chunked text), including alias clones.
// @Tags furnidata
// @Produce json
// @Param source query string false "http(s) URL or storage object key; defaults to the configured source"
// @Success 200 {object} Catalog "Decoded catalog"
// @Failure 400 {object} map[string]string "No source"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /furnidata [get]
func (h *Handler) HandleGetCatalog(c *fiber.Ctx) error {
	catalog, err := h.service.Load(c.UserContext(), c.Query("source"))
	if err != nil {
		return h.fail(c, "Furnidata load failed", err)
	}
	return c.JSON(catalog)
}

// HandleGetSummary returns item counts of a payload.
// @Summary Furnidata Summary
// @Description Decode a furnidata payload and return counts per kind, rares and furni lines.
// @Tags furnidata
// @Produce json
// @Param source query string false "http(s) URL or storage object key"
// @Success 200 {object} Summary "Summary"
// @Failure 400 {object} map[string]string "No source"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /furnidata/summary [get]
func (h *Handler) HandleGetSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext(), c.Query("source"))
	if err != nil {
		return h.fail(c, "Furnidata summary failed", err)
	}
	return c.JSON(summary)
}

// HandleGetSources lists payloads stored next to the default object.
// @Summary List Furnidata Sources
// @Description List storage object keys usable as source.
// @Tags furnidata
// @Produce json
// @Success 200 {array} string "Object keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /furnidata/sources [get]
func (h *Handler) HandleGetSources(c *fiber.Ctx) error {
	keys, err := h.service.Sources(c.UserContext())
	if err != nil {
		return h.fail(c, "Listing furnidata sources failed", err)
	}
	return c.JSON(keys)
}

// HandleGetItem returns the items matching an identifier.
// @Summary Get Furnidata Item
// @Description Look up items by id, class name, file name, alias or name. Misses return suggestions.
// @Tags furnidata
// @Produce json
// @Param identifier path string true "Item identifier (e.g. '13' or 'shelves_norja')"
// @Param source query string false "http(s) URL or storage object key"
// @Success 200 {object} LookupResult "Matches"
// @Failure 404 {object} map[string]any "Not found, with suggestions"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /furnidata/items/{identifier} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	result, err := h.service.Lookup(c.UserContext(), c.Query("source"), c.Params("identifier"))
	if err != nil {
		return h.fail(c, "Furnidata lookup failed", err)
	}
	return c.JSON(result)
}

// HandleDecode decodes the request body.
// @Summary Decode Posted Furnidata
// @Description Decode a furnidata payload sent as the request body.
// @Tags furnidata
// @Accept plain
// @Produce json
// @Param payload body string true "Raw furnidata"
// @Success 200 {object} Catalog "Decoded catalog"
// @Router /furnidata/decode [post]
func (h *Handler) HandleDecode(c *fiber.Ctx) error {
	return c.JSON(h.service.DecodeRaw(string(c.Body())))
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
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		body["suggestions"] = notFound.Suggestions
	}
	return c.Status(status).JSON(body)
}

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmptySource):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrItemNotFound), errors.Is(err, storage.ErrObjectNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrSourceUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
