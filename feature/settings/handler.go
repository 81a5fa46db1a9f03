package settings

import (
	"data-verifier/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpdateRequest is the PUT /settings payload.
type UpdateRequest struct {
	SourceColumns     []string `json:"source_columns"`
	TargetColumns     []string `json:"target_columns"`
	KeyColumns        int      `json:"key_columns"`
	IncludeDuplicates bool     `json:"include_duplicates"`
}

// Handler handles HTTP requests for mapping profiles.
type Handler struct {
	repo   *Repository
	cache  *CachedSource
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, cache *CachedSource, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, cache: cache, logger: logger}
}

// RegisterRoutes registers the settings routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/settings")
	group.Get("/", h.HandleGetSettings)
	group.Put("/", h.HandleUpdateSettings)
}

// HandleGetSettings returns the active mapping profile.
// @Summary Get Mapping Profile
// @Description Get the active column mapping profile, creating the default on first use.
// @Tags settings
// @Produce json
// @Success 200 {object} MappingProfile "Active Profile"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /settings [get]
func (h *Handler) HandleGetSettings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	profile, err := h.repo.Active(c.Context())
	if err != nil {
		l.Error("Failed to load mapping profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(profile)
}

// HandleUpdateSettings replaces the active mapping profile.
// @Summary Update Mapping Profile
// @Description Replace the column lists, key column count, and duplicate policy of the active profile.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body UpdateRequest true "Profile fields"
// @Success 200 {object} MappingProfile "Updated Profile"
// @Failure 400 {object} map[string]string "Invalid Payload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /settings [put]
func (h *Handler) HandleUpdateSettings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	update := &MappingProfile{
		KeyColumns:        req.KeyColumns,
		IncludeDuplicates: req.IncludeDuplicates,
	}
	if err := update.SetColumns(req.SourceColumns, req.TargetColumns); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if req.KeyColumns > len(req.SourceColumns) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "key_columns exceeds the number of mapped pairs",
		})
	}

	profile, err := h.repo.Update(c.Context(), update)
	if err != nil {
		l.Error("Failed to update mapping profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.cache.Invalidate()
	l.Info("Mapping profile updated", zap.Int("pairs", len(req.SourceColumns)))
	return c.JSON(profile)
}
