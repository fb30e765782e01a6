package alerting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmtzc/inventra-api/internal/domain/alerting"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

func cand(c entity.AlertCategory) alerting.Candidate {
	return alerting.Candidate{Category: c, Priority: entity.PriorityHigh}
}

func TestDedupe_SinActivas_ConservaTodo(t *testing.T) {
	in := []alerting.Candidate{cand(entity.AlertLowStock), cand(entity.AlertExpiring)}
	out := alerting.Dedupe(in, nil)
	assert.Equal(t, in, out)
}

func TestDedupe_SuprimeCategoriaActiva(t *testing.T) {
	in := []alerting.Candidate{cand(entity.AlertLowStock), cand(entity.AlertExpiring)}
	active := map[entity.AlertCategory]bool{entity.AlertLowStock: true}
	out := alerting.Dedupe(in, active)
	require.Len(t, out, 1)
	assert.Equal(t, entity.AlertExpiring, out[0].Category)
}

func TestDedupe_SinCandidatas_Nil(t *testing.T) {
	assert.Nil(t, alerting.Dedupe(nil, map[entity.AlertCategory]bool{entity.AlertLowStock: true}))
}

// LowStock y OutOfStock deduplican por separado: una alerta activa de stock
// bajo no suprime una candidata de sin stock, ni al revés.
func TestDedupe_LowStockYOutOfStockSonClavesDistintas(t *testing.T) {
	out := alerting.Dedupe(
		[]alerting.Candidate{cand(entity.AlertOutOfStock)},
		map[entity.AlertCategory]bool{entity.AlertLowStock: true},
	)
	require.Len(t, out, 1)
	assert.Equal(t, entity.AlertOutOfStock, out[0].Category)

	out = alerting.Dedupe(
		[]alerting.Candidate{cand(entity.AlertLowStock)},
		map[entity.AlertCategory]bool{entity.AlertOutOfStock: true},
	)
	require.Len(t, out, 1)
	assert.Equal(t, entity.AlertLowStock, out[0].Category)
}

func TestDedupe_TodasActivas_VacioNoNil(t *testing.T) {
	out := alerting.Dedupe(
		[]alerting.Candidate{cand(entity.AlertLowStock)},
		map[entity.AlertCategory]bool{entity.AlertLowStock: true},
	)
	assert.Empty(t, out)
}
