package entity

import "time"

// AlertCategory categoría de alerta (enumeración cerrada).
// LowStock y OutOfStock son categorías distintas también para deduplicación:
// un producto puede llegar a tener una alerta activa de cada una.
type AlertCategory string

const (
	AlertLowStock   AlertCategory = "low_stock"
	AlertOutOfStock AlertCategory = "out_of_stock"
	AlertExpiring   AlertCategory = "expiring"
	AlertExpired    AlertCategory = "expired"
)

// Valid reporta si la categoría es una de las conocidas.
func (c AlertCategory) Valid() bool {
	switch c {
	case AlertLowStock, AlertOutOfStock, AlertExpiring, AlertExpired:
		return true
	}
	return false
}

// AlertPriority prioridad de una alerta.
type AlertPriority string

const (
	PriorityLow      AlertPriority = "low"
	PriorityMedium   AlertPriority = "medium"
	PriorityHigh     AlertPriority = "high"
	PriorityCritical AlertPriority = "critical"
)

// Alert alerta accionable sobre un producto. Tres flags independientes con
// su timestamp: Active, Read y Resolved. Resolved es terminal para la
// instancia; una nueva alerta de la misma categoría puede crearse después.
type Alert struct {
	ID         string
	ProductID  string
	UserID     string // actor que la generó (sweep: actor de sistema)
	Category   AlertCategory
	Priority   AlertPriority
	Title      string
	Message    string
	Active     bool
	Read       bool
	Resolved   bool
	CreatedAt  time.Time
	ReadAt     *time.Time
	ResolvedAt *time.Time
}

// MarkRead marca la alerta como leída. Idempotente: una segunda llamada solo
// actualiza el timestamp. No libera el slot de deduplicación (Active sigue true).
func (a *Alert) MarkRead(now time.Time) {
	a.Read = true
	a.ReadAt = &now
}

// Resolve resuelve la alerta: Resolved=true, Active=false. Idempotente.
// Al dejar de estar activa, la categoría queda libre para una futura alerta.
func (a *Alert) Resolve(now time.Time) {
	a.Resolved = true
	a.Active = false
	a.ResolvedAt = &now
}
