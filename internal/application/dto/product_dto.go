package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	CategoryID    string           `json:"category_id"`
	MinStock      int              `json:"min_stock"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	UnitMeasure   string           `json:"unit_measure,omitempty"`
	Location      string           `json:"location,omitempty"`
	Batch         string           `json:"batch,omitempty"`
	ExpiryDate    *string          `json:"expiry_date,omitempty"` // YYYY-MM-DD
}

// UpdateProductRequest body para PUT /api/products/:id.
// El stock actual no se edita aquí: solo cambia vía movimientos.
type UpdateProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	CategoryID    string           `json:"category_id"`
	MinStock      int              `json:"min_stock"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	UnitMeasure   string           `json:"unit_measure,omitempty"`
	Location      string           `json:"location,omitempty"`
	Batch         string           `json:"batch,omitempty"`
	ExpiryDate    *string          `json:"expiry_date,omitempty"` // YYYY-MM-DD
}

// ProductResponse representación JSON de un producto, con los hechos
// derivados calculados al momento de responder.
type ProductResponse struct {
	ID             string           `json:"id"`
	Code           string           `json:"code"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	CategoryID     string           `json:"category_id"`
	CurrentStock   int              `json:"current_stock"`
	MinStock       int              `json:"min_stock"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice      *decimal.Decimal `json:"sale_price,omitempty"`
	UnitMeasure    string           `json:"unit_measure,omitempty"`
	Location       string           `json:"location,omitempty"`
	Batch          string           `json:"batch,omitempty"`
	ExpiryDate     *string          `json:"expiry_date,omitempty"`
	Active         bool             `json:"active"`
	NeedsRestock   bool             `json:"needs_restock"`
	DaysToExpiry   *int             `json:"days_to_expiry,omitempty"`
	IsExpired      bool             `json:"is_expired"`
	InventoryValue decimal.Decimal  `json:"inventory_value"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToProductResponse construye la respuesta calculando las derivaciones
// respecto a today.
func ToProductResponse(p *entity.Product, today time.Time) *ProductResponse {
	resp := &ProductResponse{
		ID:             p.ID,
		Code:           p.Code,
		Name:           p.Name,
		Description:    p.Description,
		CategoryID:     p.CategoryID,
		CurrentStock:   p.CurrentStock,
		MinStock:       p.MinStock,
		PurchasePrice:  p.PurchasePrice,
		SalePrice:      p.SalePrice,
		UnitMeasure:    p.UnitMeasure,
		Location:       p.Location,
		Batch:          p.Batch,
		Active:         p.Active,
		NeedsRestock:   p.NeedsRestock(),
		IsExpired:      p.IsExpired(today),
		InventoryValue: p.InventoryValue(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.ExpiryDate != nil {
		s := p.ExpiryDate.Format("2006-01-02")
		resp.ExpiryDate = &s
	}
	if days, ok := p.DaysUntilExpiry(today); ok {
		resp.DaysToExpiry = &days
	}
	return resp
}
