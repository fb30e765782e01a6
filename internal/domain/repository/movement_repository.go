package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

// MovementFilter filtros para el historial de movimientos.
type MovementFilter struct {
	ProductID string
	UserID    string
	Type      entity.MovementType
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementStats estadísticas agregadas de movimientos por tipo.
type MovementStats struct {
	InCount     int
	OutCount    int
	AdjustCount int
	InValue     decimal.Decimal // suma cantidad*precio de entradas con precio
	OutValue    decimal.Decimal // suma cantidad*precio de salidas con precio
}

// MovementRepository puerto de persistencia del historial de movimientos.
// Los movimientos son inmutables: solo inserción y lectura.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id string) (*entity.Movement, error)
	// List devuelve los movimientos (más recientes primero) y el total sin paginar.
	List(filter MovementFilter) ([]*entity.Movement, int, error)
	Stats(from, to *time.Time) (*MovementStats, error)
}
