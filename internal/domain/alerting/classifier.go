// Package alerting implementa el motor de reglas de alertas: clasificación
// pura del estado de un producto en alertas candidatas y deduplicación
// contra las alertas activas existentes.
package alerting

import (
	"fmt"
	"time"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

// ExpiryWindowDays ventana de aviso de vencimiento: productos que vencen en
// los próximos 30 días generan candidata Expiring.
const ExpiryWindowDays = 30

// Umbrales de prioridad por días restantes al vencimiento.
const (
	expiryCriticalDays = 7
	expiryHighDays     = 15
)

// Candidate alerta que el clasificador considera justificada para un
// producto, antes de deduplicar contra las alertas activas.
type Candidate struct {
	Category entity.AlertCategory
	Priority entity.AlertPriority
	Title    string
	Message  string
}

// Classify evalúa el snapshot de un producto contra las reglas de stock y
// vencimiento y devuelve cero o más candidatas. Las reglas de stock y las de
// vencimiento se evalúan de forma independiente: un producto sin stock y por
// vencer produce dos candidatas. Productos inactivos no producen ninguna.
// Función pura: no toca almacenamiento ni muta el producto.
func Classify(p *entity.Product, today time.Time) []Candidate {
	if !p.Active {
		return nil
	}

	var out []Candidate

	// Regla de stock: sin stock y stock bajo son subcasos excluyentes entre sí.
	switch {
	case p.CurrentStock == 0:
		out = append(out, Candidate{
			Category: entity.AlertOutOfStock,
			Priority: entity.PriorityCritical,
			Title:    "Sin stock: " + p.Name,
			Message:  fmt.Sprintf("El producto %s - %s no tiene stock disponible.", p.Code, p.Name),
		})
	case p.NeedsRestock():
		out = append(out, Candidate{
			Category: entity.AlertLowStock,
			Priority: entity.PriorityHigh,
			Title:    "Stock bajo: " + p.Name,
			Message: fmt.Sprintf("El producto %s - %s tiene stock bajo. Stock actual: %d, Stock mínimo: %d",
				p.Code, p.Name, p.CurrentStock, p.MinStock),
		})
	}

	// Regla de vencimiento: solo si el producto tiene fecha de vencimiento.
	if days, ok := p.DaysUntilExpiry(today); ok {
		expiry := p.ExpiryDate.Format("2006-01-02")
		switch {
		case days < 0:
			out = append(out, Candidate{
				Category: entity.AlertExpired,
				Priority: entity.PriorityCritical,
				Title:    "Producto vencido: " + p.Name,
				Message: fmt.Sprintf("El producto %s - %s está vencido desde hace %d días (Fecha de vencimiento: %s)",
					p.Code, p.Name, -days, expiry),
			})
		case days <= ExpiryWindowDays:
			out = append(out, Candidate{
				Category: entity.AlertExpiring,
				Priority: expiringPriority(days),
				Title:    "Próximo a vencer: " + p.Name,
				Message: fmt.Sprintf("El producto %s - %s vence en %d días (Fecha de vencimiento: %s)",
					p.Code, p.Name, days, expiry),
			})
		}
		// Más de 30 días: sin candidata.
	}

	return out
}

// expiringPriority prioridad por días restantes: ≤7 crítica, ≤15 alta, resto media.
func expiringPriority(days int) entity.AlertPriority {
	switch {
	case days <= expiryCriticalDays:
		return entity.PriorityCritical
	case days <= expiryHighDays:
		return entity.PriorityHigh
	default:
		return entity.PriorityMedium
	}
}
