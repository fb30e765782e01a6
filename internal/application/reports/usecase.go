package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidmtzc/inventra-api/internal/application/dto"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
)

// PDFGenerator puerto para renderizar el reporte de inventario como PDF.
type PDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report *dto.InventoryReport) ([]byte, error)
}

// InventoryReportUseCase genera el reporte de inventario actual: resumen
// (totales, valor, stock bajo, sin stock) más el detalle por producto.
type InventoryReportUseCase struct {
	productRepo  repository.ProductRepository
	pdfGenerator PDFGenerator
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(productRepo repository.ProductRepository, pdfGenerator PDFGenerator) *InventoryReportUseCase {
	return &InventoryReportUseCase{productRepo: productRepo, pdfGenerator: pdfGenerator}
}

// Generate construye el reporte sobre los productos activos, opcionalmente
// filtrado por categoría.
func (uc *InventoryReportUseCase) Generate(ctx context.Context, categoryID string) (*dto.InventoryReport, error) {
	products, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := &dto.InventoryReport{
		GeneratedAt: now,
		Summary:     dto.InventoryReportSummary{InventoryValue: decimal.Zero},
		Products:    make([]*dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		report.Summary.TotalProducts++
		report.Summary.InventoryValue = report.Summary.InventoryValue.Add(p.InventoryValue())
		if p.CurrentStock == 0 {
			report.Summary.OutOfStockCount++
		} else if p.NeedsRestock() {
			report.Summary.LowStockCount++
		}
		report.Products = append(report.Products, dto.ToProductResponse(p, now))
	}
	return report, nil
}

// GeneratePDF genera el reporte y lo renderiza como PDF.
func (uc *InventoryReportUseCase) GeneratePDF(ctx context.Context, categoryID string) ([]byte, error) {
	report, err := uc.Generate(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateInventoryPDF(ctx, report)
}
