package history

import (
	"errors"

	"data-verifier/core/logger"
	"data-verifier/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResultPrefix is the object storage prefix for exported workbooks.
const ResultPrefix = "results/"

// Handler handles HTTP requests for verification history.
type Handler struct {
	repo   *Repository
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, client storage.Client, bucket string, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, client: client, bucket: bucket, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleListHistory)
	group.Delete("/:id", h.HandleDeleteHistory)
}

// HandleListHistory returns past verification runs, newest first.
// @Summary List Verification History
// @Description List completed verification runs with their summary counts.
// @Tags history
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {array} Entry "History Entries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleListHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	entries, err := h.repo.List(c.Context(), c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	if err != nil {
		l.Error("Failed to list history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(entries)
}

// HandleDeleteHistory removes a run and its exported workbook.
// @Summary Delete Verification Run
// @Description Delete a history entry and remove its result workbook from storage.
// @Tags history
// @Produce json
// @Param id path int true "History Entry ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/{id} [delete]
func (h *Handler) HandleDeleteHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown history entry",
		})
	}

	entry, err := h.repo.Get(c.Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown history entry",
		})
	}
	if err != nil {
		l.Error("Failed to load history entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if entry.ResultObject != "" {
		object := ResultPrefix + entry.ResultObject
		if err := h.client.RemoveObject(c.Context(), h.bucket, object, minio.RemoveObjectOptions{}); err != nil {
			// The DB row still goes away; an orphaned object is preferable
			// to a history entry pointing at a deleted row.
			l.Warn("Failed to remove result object", zap.String("object", object), zap.Error(err))
		}
	}

	if err := h.repo.Delete(c.Context(), uint(id)); err != nil {
		l.Error("Failed to delete history entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
