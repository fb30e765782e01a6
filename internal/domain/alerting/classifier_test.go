package alerting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmtzc/inventra-api/internal/domain/alerting"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

var today = time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)

func productWith(stock, min int, expiry *time.Time) *entity.Product {
	return &entity.Product{
		ID:           "p1",
		Code:         "SKU-001",
		Name:         "Paracetamol 500mg",
		CurrentStock: stock,
		MinStock:     min,
		ExpiryDate:   expiry,
		Active:       true,
	}
}

func dateIn(days int) *time.Time {
	d := today.AddDate(0, 0, days)
	return &d
}

func TestClassify_ProductoInactivo_SinCandidatas(t *testing.T) {
	p := productWith(0, 10, dateIn(-5))
	p.Active = false
	assert.Empty(t, alerting.Classify(p, today))
}

func TestClassify_SinStock_CriticaOutOfStock(t *testing.T) {
	cands := alerting.Classify(productWith(0, 10, nil), today)
	require.Len(t, cands, 1)
	assert.Equal(t, entity.AlertOutOfStock, cands[0].Category)
	assert.Equal(t, entity.PriorityCritical, cands[0].Priority)
	assert.Equal(t, "El producto SKU-001 - Paracetamol 500mg no tiene stock disponible.", cands[0].Message)
}

func TestClassify_StockBajo_AltaLowStock(t *testing.T) {
	cands := alerting.Classify(productWith(3, 10, nil), today)
	require.Len(t, cands, 1)
	assert.Equal(t, entity.AlertLowStock, cands[0].Category)
	assert.Equal(t, entity.PriorityHigh, cands[0].Priority)
	assert.Contains(t, cands[0].Message, "Stock actual: 3, Stock mínimo: 10")
}

func TestClassify_StockIgualAlMinimo_EsStockBajo(t *testing.T) {
	cands := alerting.Classify(productWith(10, 10, nil), today)
	require.Len(t, cands, 1)
	assert.Equal(t, entity.AlertLowStock, cands[0].Category)
}

func TestClassify_StockSobreElMinimo_SinCandidatas(t *testing.T) {
	assert.Empty(t, alerting.Classify(productWith(11, 10, nil), today))
}

func TestClassify_SinStockNoEsTambienStockBajo(t *testing.T) {
	// stock 0 con mínimo 10 cumple ambas reglas de stock, pero solo emite OutOfStock.
	cands := alerting.Classify(productWith(0, 10, nil), today)
	require.Len(t, cands, 1)
	assert.Equal(t, entity.AlertOutOfStock, cands[0].Category)
}

func TestClassify_Vencido_Critica(t *testing.T) {
	cands := alerting.Classify(productWith(50, 10, dateIn(-2)), today)
	require.Len(t, cands, 1)
	assert.Equal(t, entity.AlertExpired, cands[0].Category)
	assert.Equal(t, entity.PriorityCritical, cands[0].Priority)
	assert.Contains(t, cands[0].Message, "está vencido desde hace 2 días")
}

func TestClassify_PorVencer_PrioridadPorDias(t *testing.T) {
	cases := []struct {
		days     int
		priority entity.AlertPriority
	}{
		{0, entity.PriorityCritical},
		{7, entity.PriorityCritical},
		{8, entity.PriorityHigh},
		{15, entity.PriorityHigh},
		{16, entity.PriorityMedium},
		{30, entity.PriorityMedium},
	}
	for _, tc := range cases {
		cands := alerting.Classify(productWith(50, 10, dateIn(tc.days)), today)
		require.Len(t, cands, 1, "vence en %d días", tc.days)
		assert.Equal(t, entity.AlertExpiring, cands[0].Category, "vence en %d días", tc.days)
		assert.Equal(t, tc.priority, cands[0].Priority, "vence en %d días", tc.days)
	}
}

func TestClassify_VenceFueraDeVentana_SinCandidata(t *testing.T) {
	assert.Empty(t, alerting.Classify(productWith(50, 10, dateIn(31)), today))
}

func TestClassify_StockYVencimientoSonIndependientes(t *testing.T) {
	// Stock bajo y por vencer a la vez: dos candidatas.
	cands := alerting.Classify(productWith(3, 10, dateIn(5)), today)
	require.Len(t, cands, 2)
	assert.Equal(t, entity.AlertLowStock, cands[0].Category)
	assert.Equal(t, entity.AlertExpiring, cands[1].Category)
	assert.Equal(t, entity.PriorityCritical, cands[1].Priority)
}

func TestClassify_DiasDeCalendario_NoHoras(t *testing.T) {
	// Vence mañana a las 00:00 aunque falten menos de 24 horas reales.
	expiry := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	lateToday := time.Date(2026, 8, 30, 23, 50, 0, 0, time.UTC)
	cands := alerting.Classify(productWith(50, 10, &expiry), lateToday)
	require.Len(t, cands, 1)
	assert.Contains(t, cands[0].Message, "vence en 1 días")
}
