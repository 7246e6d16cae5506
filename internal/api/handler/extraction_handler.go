package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/api/metrics"
	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// MaxImageBytes bounds the uploaded document photo.
const MaxImageBytes = 10 << 20

// ExtractionHandler reads identity fields from a document photo so the new
// appointment form can be pre-filled.
type ExtractionHandler struct {
	service ports.ExtractionService
}

func NewExtractionHandler(service ports.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{service: service}
}

// Extract handles POST /v1/extractions.
//
// @Summary      Extract identity fields from a document photo
// @Tags         extractions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Document photo"
// @Success      200    {object}  domain.DocumentFields
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      413    {object}  map[string]string
// @Failure      415    {object}  map[string]string
// @Failure      502    {object}  map[string]string
// @Failure      503    {object}  map[string]string
// @Router       /v1/extractions [post]
func (h *ExtractionHandler) Extract(c echo.Context) error {
	if !h.service.Enabled() {
		metrics.ExtractionsTotal.WithLabelValues("unavailable").Inc()
		return domain.ErrExtractionUnavailable
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image is required"})
	}
	if fh.Size > MaxImageBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "image is too large"})
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	image, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		return err
	}
	if len(image) > MaxImageBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "image is too large"})
	}

	start := time.Now()
	fields, err := h.service.Extract(c.Request().Context(), image)
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues(extractionResult(err)).Inc()
		return err
	}

	metrics.ExtractionsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, fields)
}

func extractionResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedImage):
		return "unsupported"
	case errors.Is(err, domain.ErrExtractionUnavailable):
		return "unavailable"
	default:
		return "failed"
	}
}
