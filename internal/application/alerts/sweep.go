package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/alerting"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
	"github.com/davidmtzc/inventra-api/pkg/logger"
)

// SweepUseCase ejecuta un barrido de alertas: clasifica cada producto activo,
// deduplica contra las alertas activas y crea las que falten. Cada decisión
// por producto se confirma de forma independiente: un barrido abortado a
// mitad deja intactas las alertas ya creadas.
type SweepUseCase struct {
	productRepo repository.ProductRepository
	alertRepo   repository.AlertRepository
	notifiers   []Notifier
	log         *logger.Logger
	now         func() time.Time
}

// NewSweepUseCase construye el caso de uso del barrido.
func NewSweepUseCase(
	productRepo repository.ProductRepository,
	alertRepo repository.AlertRepository,
	notifiers []Notifier,
	log *logger.Logger,
) *SweepUseCase {
	return &SweepUseCase{
		productRepo: productRepo,
		alertRepo:   alertRepo,
		notifiers:   notifiers,
		log:         log,
		now:         time.Now,
	}
}

// SweepResult resultado de un barrido.
type SweepResult struct {
	Created      int
	Skipped      int            // candidatas suprimidas por deduplicación
	NotEvaluated []string       // IDs de productos cuya evaluación falló
	Alerts       []*entity.Alert
	ExecutedAt   time.Time
}

// Run ejecuta el barrido firmando las alertas con actorID (identidad de
// sistema explícita, no se descubre consultando usuarios). Un fallo al listar
// productos aborta; un fallo evaluando un producto concreto lo registra en
// NotEvaluated y continúa con el resto.
func (uc *SweepUseCase) Run(ctx context.Context, actorID string) (*SweepResult, error) {
	if actorID == "" {
		return nil, domain.ErrInvalidInput
	}
	today := uc.now()

	products, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("listar productos activos: %w", err)
	}

	result := &SweepResult{ExecutedAt: today}
	for _, product := range products {
		candidates := alerting.Classify(product, today)
		if len(candidates) == 0 {
			continue
		}

		activeCategories, err := uc.alertRepo.ActiveCategories(product.ID)
		if err != nil {
			uc.log.Error().Err(err).Str("product_id", product.ID).Msg("barrido: consultar alertas activas")
			result.NotEvaluated = append(result.NotEvaluated, product.ID)
			continue
		}

		kept := alerting.Dedupe(candidates, activeCategories)
		result.Skipped += len(candidates) - len(kept)

		for _, cand := range kept {
			alert := &entity.Alert{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				UserID:    actorID,
				Category:  cand.Category,
				Priority:  cand.Priority,
				Title:     cand.Title,
				Message:   cand.Message,
				Active:    true,
				CreatedAt: today,
			}
			if err := uc.alertRepo.Create(alert); err != nil {
				// Otro barrido concurrente ganó la carrera por esta categoría:
				// la restricción única lo convierte en un skip normal.
				if errors.Is(err, domain.ErrDuplicate) {
					result.Skipped++
					continue
				}
				uc.log.Error().Err(err).
					Str("product_id", product.ID).
					Str("category", string(cand.Category)).
					Msg("barrido: crear alerta")
				result.NotEvaluated = append(result.NotEvaluated, product.ID)
				continue
			}
			result.Created++
			result.Alerts = append(result.Alerts, alert)

			// Fire-and-forget: los notificadores registran sus propios fallos.
			for _, n := range uc.notifiers {
				n.Notify(ctx, alert, product)
			}
		}
	}

	uc.log.Info().
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Int("not_evaluated", len(result.NotEvaluated)).
		Msg("barrido de alertas completado")
	return result, nil
}
