// Package stock implementa el libro de stock: la aritmética pura que
// determina el stock posterior de un movimiento y la aplicación de un
// movimiento sobre un producto. La atomicidad producto+movimiento la
// garantiza la capa de aplicación vía transacción con bloqueo de fila.
package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

// Request describe un movimiento solicitado, antes de validarse y aplicarse.
type Request struct {
	Type      entity.MovementType
	Quantity  int // para adjust es el stock objetivo
	UnitPrice *decimal.Decimal
	Reason    string
	Reference string
	Notes     string
}

// ComputeAfter calcula el stock posterior según el tipo de movimiento.
// Aritmética entera, sin redondeos:
//
//	in:     after = before + quantity   (quantity > 0)
//	out:    after = before - quantity   (quantity > 0, before >= quantity)
//	adjust: after = quantity            (quantity >= 0)
func ComputeAfter(t entity.MovementType, quantity, before int) (int, error) {
	switch t {
	case entity.MovementTypeIn:
		if quantity <= 0 {
			return 0, domain.ErrInvalidQuantity
		}
		return before + quantity, nil
	case entity.MovementTypeOut:
		if quantity <= 0 {
			return 0, domain.ErrInvalidQuantity
		}
		if quantity > before {
			return 0, domain.ErrInsufficientStock
		}
		return before - quantity, nil
	case entity.MovementTypeAdjust:
		if quantity < 0 {
			return 0, domain.ErrInvalidQuantity
		}
		return quantity, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

// Apply valida la solicitud contra el stock actual del producto, construye el
// movimiento inmutable con snapshot antes/después y actualiza CurrentStock.
// Valida-y-luego-aplica: si retorna error el producto no se modificó.
// El ID del movimiento lo asigna el caller.
func Apply(p *entity.Product, req Request, userID string, now time.Time) (*entity.Movement, error) {
	after, err := ComputeAfter(req.Type, req.Quantity, p.CurrentStock)
	if err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		ProductID:   p.ID,
		UserID:      userID,
		Type:        req.Type,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Reason:      req.Reason,
		Reference:   req.Reference,
		Notes:       req.Notes,
		StockBefore: p.CurrentStock,
		StockAfter:  after,
		CreatedAt:   now,
	}
	p.CurrentStock = after
	p.UpdatedAt = now
	return mov, nil
}
