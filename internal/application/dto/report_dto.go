package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryReportSummary totales del reporte de inventario.
type InventoryReportSummary struct {
	TotalProducts   int             `json:"total_products"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
}

// InventoryReport reporte de inventario actual (productos activos).
type InventoryReport struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Summary     InventoryReportSummary `json:"summary"`
	Products    []*ProductResponse     `json:"products"`
}

// CategoryResponse representación JSON de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
