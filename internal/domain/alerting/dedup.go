package alerting

import "github.com/davidmtzc/inventra-api/internal/domain/entity"

// Dedupe filtra las candidatas que ya tienen una alerta activa de la misma
// categoría exacta para el producto, garantizando como máximo una alerta
// activa por (producto, categoría).
//
// LowStock y OutOfStock son claves de deduplicación distintas: un producto
// que oscila entre 0 y apenas-sobre-el-mínimo puede acumular una alerta
// activa de cada tipo sin que una resuelva la otra. Comportamiento heredado
// y deliberadamente conservado.
func Dedupe(candidates []Candidate, activeCategories map[entity.AlertCategory]bool) []Candidate {
	if len(candidates) == 0 {
		return nil
	}
	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if activeCategories[c.Category] {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
