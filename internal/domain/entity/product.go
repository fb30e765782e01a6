package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. CurrentStock es la cantidad
// autoritativa y siempre coincide con el StockAfter del último movimiento
// aplicado (0 si no hay movimientos); solo el libro de stock la modifica.
type Product struct {
	ID            string
	Code          string // código único
	Name          string
	Description   string
	CategoryID    string
	CurrentStock  int
	MinStock      int
	PurchasePrice *decimal.Decimal // precio de compra (opcional)
	SalePrice     *decimal.Decimal // precio de venta (opcional)
	UnitMeasure   string           // unidad, kg, litro, etc.
	Location      string           // ubicación física en almacén
	Batch         string           // lote
	ExpiryDate    *time.Time       // fecha de vencimiento (solo cuenta la parte fecha)
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NeedsRestock indica si el stock actual está en o por debajo del mínimo.
// Derivación pura sobre el snapshot: no se cachea en la entidad.
func (p *Product) NeedsRestock() bool {
	return p.CurrentStock <= p.MinStock
}

// DaysUntilExpiry devuelve los días de calendario hasta el vencimiento
// respecto a today. ok=false si el producto no tiene fecha de vencimiento.
// Negativo si ya venció.
func (p *Product) DaysUntilExpiry(today time.Time) (days int, ok bool) {
	if p.ExpiryDate == nil {
		return 0, false
	}
	exp := dateOnly(*p.ExpiryDate)
	ref := dateOnly(today)
	return int(exp.Sub(ref).Hours() / 24), true
}

// IsExpired indica si la fecha de vencimiento es anterior a today.
func (p *Product) IsExpired(today time.Time) bool {
	days, ok := p.DaysUntilExpiry(today)
	return ok && days < 0
}

// InventoryValue valor de inventario del producto
// (precio de compra * stock actual); cero si no hay precio de compra.
func (p *Product) InventoryValue() decimal.Decimal {
	if p.PurchasePrice == nil {
		return decimal.Zero
	}
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}

// dateOnly normaliza a medianoche UTC para comparar fechas de calendario.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
