package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

func TestProduct_NeedsRestock(t *testing.T) {
	cases := []struct {
		stock, min int
		want       bool
	}{
		{0, 10, true},
		{5, 10, true},
		{10, 10, true}, // igual al mínimo cuenta
		{11, 10, false},
		{0, 0, true},
	}
	for _, tc := range cases {
		p := &entity.Product{CurrentStock: tc.stock, MinStock: tc.min}
		assert.Equal(t, tc.want, p.NeedsRestock(), "stock=%d min=%d", tc.stock, tc.min)
	}
}

func TestProduct_DaysUntilExpiry_SinFecha(t *testing.T) {
	p := &entity.Product{}
	_, ok := p.DaysUntilExpiry(time.Now())
	assert.False(t, ok)
}

func TestProduct_DaysUntilExpiry_DiasDeCalendario(t *testing.T) {
	// Las horas del día no cuentan: solo la diferencia de fechas.
	expiry := time.Date(2026, 9, 4, 2, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	p := &entity.Product{ExpiryDate: &expiry}

	days, ok := p.DaysUntilExpiry(today)
	require.True(t, ok)
	assert.Equal(t, 5, days)
}

func TestProduct_DaysUntilExpiry_NegativoSiVencido(t *testing.T) {
	expiry := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	p := &entity.Product{ExpiryDate: &expiry}

	days, ok := p.DaysUntilExpiry(today)
	require.True(t, ok)
	assert.Equal(t, -3, days)
	assert.True(t, p.IsExpired(today))
}

func TestProduct_IsExpired_MismoDiaNoEstaVencido(t *testing.T) {
	expiry := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	p := &entity.Product{ExpiryDate: &expiry}
	assert.False(t, p.IsExpired(today))
}

func TestProduct_InventoryValue(t *testing.T) {
	price := decimal.NewFromFloat(3.25)
	p := &entity.Product{CurrentStock: 4, PurchasePrice: &price}
	assert.True(t, p.InventoryValue().Equal(decimal.NewFromFloat(13.0)))

	p.PurchasePrice = nil
	assert.True(t, p.InventoryValue().IsZero())
}
