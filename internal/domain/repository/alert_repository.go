package repository

import (
	"time"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

// AlertFilter filtros para listar alertas.
type AlertFilter struct {
	ProductID  string
	ActiveOnly bool
	UnreadOnly bool
	Category   entity.AlertCategory
	Priority   entity.AlertPriority
	Limit      int
	Offset     int
}

// AlertRepository puerto de persistencia de alertas.
type AlertRepository interface {
	// Create persiste una alerta nueva. Devuelve domain.ErrDuplicate si ya
	// existe una alerta activa de la misma categoría para el producto (la
	// restricción única en almacenamiento cierra la carrera check-then-act
	// entre barridos concurrentes).
	Create(alert *entity.Alert) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id string) (*entity.Alert, error)
	Update(alert *entity.Alert) error
	List(filter AlertFilter) ([]*entity.Alert, int, error)
	// ActiveCategories devuelve las categorías con alerta activa para un producto.
	ActiveCategories(productID string) (map[entity.AlertCategory]bool, error)
	CountUnread() (int, error)
	// DeleteResolvedBefore elimina alertas resueltas con fecha de resolución
	// estrictamente anterior al corte. Devuelve cuántas eliminó.
	DeleteResolvedBefore(cutoff time.Time) (int, error)
}
