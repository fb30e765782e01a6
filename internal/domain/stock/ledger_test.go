package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/stock"
)

func TestComputeAfter_Entrada(t *testing.T) {
	after, err := stock.ComputeAfter(entity.MovementTypeIn, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, after)
}

func TestComputeAfter_EntradaCantidadInvalida(t *testing.T) {
	for _, qty := range []int{0, -3} {
		_, err := stock.ComputeAfter(entity.MovementTypeIn, qty, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d", qty)
	}
}

func TestComputeAfter_Salida(t *testing.T) {
	after, err := stock.ComputeAfter(entity.MovementTypeOut, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, 6, after)
}

func TestComputeAfter_SalidaExacta_DejaCero(t *testing.T) {
	after, err := stock.ComputeAfter(entity.MovementTypeOut, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, after)
}

func TestComputeAfter_SalidaStockInsuficiente(t *testing.T) {
	_, err := stock.ComputeAfter(entity.MovementTypeOut, 11, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestComputeAfter_SalidaCantidadInvalida(t *testing.T) {
	_, err := stock.ComputeAfter(entity.MovementTypeOut, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestComputeAfter_Ajuste(t *testing.T) {
	// Un ajuste fija el stock objetivo, sin importar el stock previo.
	after, err := stock.ComputeAfter(entity.MovementTypeAdjust, 7, 100)
	require.NoError(t, err)
	assert.Equal(t, 7, after)

	// Ajuste a cero es válido.
	after, err = stock.ComputeAfter(entity.MovementTypeAdjust, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, after)
}

func TestComputeAfter_AjusteNegativoInvalido(t *testing.T) {
	_, err := stock.ComputeAfter(entity.MovementTypeAdjust, -1, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestComputeAfter_TipoDesconocido(t *testing.T) {
	_, err := stock.ComputeAfter(entity.MovementType("transfer"), 5, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El stock final de una secuencia es el pliegue de ComputeAfter sobre ella.
func TestComputeAfter_Secuencia(t *testing.T) {
	steps := []struct {
		typ entity.MovementType
		qty int
	}{
		{entity.MovementTypeIn, 20},
		{entity.MovementTypeOut, 5},
		{entity.MovementTypeAdjust, 50},
		{entity.MovementTypeOut, 50},
		{entity.MovementTypeIn, 3},
	}
	current := 0
	for _, s := range steps {
		after, err := stock.ComputeAfter(s.typ, s.qty, current)
		require.NoError(t, err)
		current = after
	}
	assert.Equal(t, 3, current)
}

func TestApply_ConstruyeMovimientoYActualizaStock(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	price := decimal.NewFromFloat(2.50)
	p := &entity.Product{ID: "p1", CurrentStock: 10}

	mov, err := stock.Apply(p, stock.Request{
		Type:      entity.MovementTypeIn,
		Quantity:  4,
		UnitPrice: &price,
		Reason:    "compra",
	}, "u1", now)
	require.NoError(t, err)

	assert.Equal(t, 14, p.CurrentStock)
	assert.Equal(t, 10, mov.StockBefore)
	assert.Equal(t, 14, mov.StockAfter)
	assert.Equal(t, "u1", mov.UserID)
	assert.Equal(t, now, mov.CreatedAt)
	assert.True(t, mov.ValueTotal().Equal(decimal.NewFromFloat(10.0)), "value_total = precio * cantidad")
}

func TestApply_EnErrorNoMutaElProducto(t *testing.T) {
	now := time.Now()
	p := &entity.Product{ID: "p1", CurrentStock: 3, UpdatedAt: now.Add(-time.Hour)}
	before := *p

	_, err := stock.Apply(p, stock.Request{Type: entity.MovementTypeOut, Quantity: 5}, "u1", now)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, before, *p, "el producto no debe cambiar si el movimiento falla")
}

func TestMovement_ValueTotal_SinPrecioEsCero(t *testing.T) {
	m := &entity.Movement{Quantity: 9}
	assert.True(t, m.ValueTotal().IsZero())
}
