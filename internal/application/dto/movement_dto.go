package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

// ApplyMovementRequest body para POST /api/products/:id/stock.
type ApplyMovementRequest struct {
	Type      string           `json:"type"` // in, out, adjust
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Reason    string           `json:"reason,omitempty"`
	Reference string           `json:"reference,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// MovementResponse representación JSON de un movimiento.
type MovementResponse struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"product_id"`
	UserID      string           `json:"user_id"`
	Type        string           `json:"type"`
	Quantity    int              `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	ValueTotal  decimal.Decimal  `json:"value_total"`
	Reason      string           `json:"reason,omitempty"`
	Reference   string           `json:"reference,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	StockBefore int              `json:"stock_before"`
	StockAfter  int              `json:"stock_after"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ToMovementResponse construye la respuesta con el valor total derivado.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	return &MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		UserID:      m.UserID,
		Type:        string(m.Type),
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		ValueTotal:  m.ValueTotal(),
		Reason:      m.Reason,
		Reference:   m.Reference,
		Notes:       m.Notes,
		StockBefore: m.StockBefore,
		StockAfter:  m.StockAfter,
		CreatedAt:   m.CreatedAt,
	}
}

// MovementStatsResponse estadísticas de movimientos por tipo para un período.
type MovementStatsResponse struct {
	TotalMovements int             `json:"total_movements"`
	InCount        int             `json:"in_count"`
	InValue        decimal.Decimal `json:"in_value"`
	OutCount       int             `json:"out_count"`
	OutValue       decimal.Decimal `json:"out_value"`
	AdjustCount    int             `json:"adjust_count"`
	From           *string         `json:"from,omitempty"`
	To             *string         `json:"to,omitempty"`
}
