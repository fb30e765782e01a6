package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de stock (enumeración cerrada).
type MovementType string

const (
	MovementTypeIn     MovementType = "in"     // entrada: suma al stock
	MovementTypeOut    MovementType = "out"    // salida: resta del stock
	MovementTypeAdjust MovementType = "adjust" // ajuste: Quantity es el stock objetivo
)

// Valid reporta si el tipo es uno de los conocidos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjust:
		return true
	}
	return false
}

// Movement registro inmutable de un cambio de stock, con snapshot del stock
// antes y después. StockAfter queda totalmente determinado por
// (Type, Quantity, StockBefore); ver stock.ComputeAfter.
type Movement struct {
	ID          string
	ProductID   string
	UserID      string
	Type        MovementType
	Quantity    int              // para adjust es el stock objetivo, no un delta
	UnitPrice   *decimal.Decimal // opcional
	Reason      string           // venta, compra, devolución, ajuste, etc.
	Reference   string           // número de factura, orden, etc.
	Notes       string
	StockBefore int
	StockAfter  int
	CreatedAt   time.Time
}

// ValueTotal valor monetario del movimiento: precio unitario * cantidad.
// Cero si el movimiento no registró precio.
func (m *Movement) ValueTotal() decimal.Decimal {
	if m.UnitPrice == nil {
		return decimal.Zero
	}
	return m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity)))
}
