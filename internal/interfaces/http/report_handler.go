package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davidmtzc/inventra-api/internal/application/dto"
	"github.com/davidmtzc/inventra-api/internal/application/reports"
)

// ReportHandler maneja la generación del reporte de inventario.
type ReportHandler struct {
	uc *reports.InventoryReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.InventoryReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory genera el reporte de inventario. format=json (default) o format=pdf.
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	categoryID := c.Query("category_id")

	if c.Query("format", "json") == "pdf" {
		pdfBytes, err := h.uc.GeneratePDF(c.Context(), categoryID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		filename := "inventario_" + time.Now().Format("20060102_150405") + ".pdf"
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(pdfBytes)
	}

	report, err := h.uc.Generate(c.Context(), categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}
