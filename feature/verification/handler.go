package verification

import (
	"errors"

	"data-verifier/core/logger"
	"data-verifier/core/reconcile"
	"data-verifier/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for verification runs.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the verification routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/compare", h.HandleCompare)
	app.Get("/download/:filename", h.HandleDownload)
}

// HandleCompare runs a verification on two uploaded extracts.
// @Summary Compare Two Extracts
// @Description Upload a source and a target extract, reconcile them with the active mapping profile, and get the summary plus a result preview. The full highlighted workbook is stored for download.
// @Tags verification
// @Accept multipart/form-data
// @Produce json
// @Param source_file formData file true "Source extract (.xlsx, .csv, .txt)"
// @Param target_file formData file true "Target extract (.xlsx, .csv, .txt)"
// @Param include_duplicates formData string false "Override the profile's duplicate policy (true/false)"
// @Success 200 {object} CompareOutput "Run Result"
// @Failure 400 {object} map[string]string "Invalid Upload or Mapping"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	sourceHeader, err := c.FormFile("source_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "source_file is required",
		})
	}
	targetHeader, err := c.FormFile("target_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "target_file is required",
		})
	}

	sourceFile, err := sourceHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to open source_file",
		})
	}
	defer sourceFile.Close()
	targetFile, err := targetHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to open target_file",
		})
	}
	defer targetFile.Close()

	var includeOverride *bool
	if v := c.FormValue("include_duplicates"); v != "" {
		b := utils.ToBool(v)
		includeOverride = &b
	}

	out, err := h.service.Compare(c.Context(), CompareInput{
		SourceName:        sourceHeader.Filename,
		Source:            sourceFile,
		TargetName:        targetHeader.Filename,
		Target:            targetFile,
		IncludeDuplicates: includeOverride,
	})
	if err != nil {
		var cfgErr *reconcile.ConfigurationError
		if errors.As(err, &cfgErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": cfgErr.Error(),
			})
		}
		l.Error("Comparison failed",
			zap.String("source", sourceHeader.Filename),
			zap.String("target", targetHeader.Filename),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Comparison completed",
		zap.String("result", out.ResultObject),
		zap.Int("total_keys", out.Summary.TotalKeysCompared),
		zap.Int("mismatches", out.Summary.Mismatches))
	return c.JSON(out)
}

// HandleDownload streams a stored result workbook.
// @Summary Download Result Workbook
// @Description Download the highlighted XLSX workbook produced by an earlier comparison.
// @Tags verification
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param filename path string true "Result filename"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} map[string]string "Invalid Filename"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /download/{filename} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	filename := c.Params("filename")
	reader, err := h.service.Download(c.Context(), filename)
	if err != nil {
		l.Warn("Result download rejected", zap.String("filename", filename), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// fasthttp closes the stream once the body is fully written.
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment(filename)
	return c.SendStream(reader)
}
