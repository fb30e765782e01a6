package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

func TestAlert_MarkRead(t *testing.T) {
	a := &entity.Alert{Active: true}
	now := time.Now()

	a.MarkRead(now)
	assert.True(t, a.Read)
	require.NotNil(t, a.ReadAt)
	assert.Equal(t, now, *a.ReadAt)
	assert.True(t, a.Active, "leer no libera el slot de deduplicación")
	assert.False(t, a.Resolved)
}

func TestAlert_MarkRead_Idempotente(t *testing.T) {
	a := &entity.Alert{Active: true}
	a.MarkRead(time.Now())
	later := time.Now().Add(time.Minute)
	a.MarkRead(later)
	assert.True(t, a.Read)
	assert.Equal(t, later, *a.ReadAt)
}

func TestAlert_Resolve(t *testing.T) {
	a := &entity.Alert{Active: true, Read: true}
	now := time.Now()

	a.Resolve(now)
	assert.True(t, a.Resolved)
	assert.False(t, a.Active, "resolver libera el slot de deduplicación")
	assert.True(t, a.Read, "resolver no toca el flag de lectura")
	require.NotNil(t, a.ResolvedAt)
	assert.Equal(t, now, *a.ResolvedAt)
}

func TestAlert_Resolve_Idempotente(t *testing.T) {
	a := &entity.Alert{Active: true}
	a.Resolve(time.Now())
	a.Resolve(time.Now().Add(time.Minute))
	assert.True(t, a.Resolved)
	assert.False(t, a.Active)
}
