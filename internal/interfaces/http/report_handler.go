package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/application/reports"
)

// ReportHandler serves the movement history PDF (protected).
type ReportHandler struct {
	uc *reports.MovementReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reports.MovementReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MovementReport godoc
// @Summary      Download the movement history as PDF
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "RFC 3339 lower bound (default: 30 days ago)"
// @Param        to    query  string  false  "RFC 3339 upper bound (default: now)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/report [get]
func (h *ReportHandler) MovementReport(c *fiber.Ctx) error {
	fromPtr, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be RFC 3339"})
	}
	toPtr, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be RFC 3339"})
	}
	to := time.Now()
	if toPtr != nil {
		to = *toPtr
	}
	from := to.AddDate(0, 0, -30)
	if fromPtr != nil {
		from = *fromPtr
	}
	if from.After(to) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must not be after to"})
	}

	pdf, filename, err := h.uc.Download(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
