package alerts

import (
	"context"
	"time"

	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
)

// LifecycleUseCase operaciones sobre el ciclo de vida de una alerta:
// marcar leída, resolver, consultar y purgar resueltas antiguas.
type LifecycleUseCase struct {
	alertRepo repository.AlertRepository
	now       func() time.Time
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(alertRepo repository.AlertRepository) *LifecycleUseCase {
	return &LifecycleUseCase{alertRepo: alertRepo, now: time.Now}
}

// MarkRead marca la alerta como leída. Idempotente. ErrNotFound si no existe.
func (uc *LifecycleUseCase) MarkRead(ctx context.Context, alertID string) (*entity.Alert, error) {
	alert, err := uc.alertRepo.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	alert.MarkRead(uc.now())
	if err := uc.alertRepo.Update(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// Resolve resuelve la alerta y libera su slot de deduplicación. Idempotente.
func (uc *LifecycleUseCase) Resolve(ctx context.Context, alertID string) (*entity.Alert, error) {
	alert, err := uc.alertRepo.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	alert.Resolve(uc.now())
	if err := uc.alertRepo.Update(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// GetByID obtiene una alerta. ErrNotFound si no existe.
func (uc *LifecycleUseCase) GetByID(ctx context.Context, alertID string) (*entity.Alert, error) {
	alert, err := uc.alertRepo.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	return alert, nil
}

// List devuelve alertas según filtro y el total sin paginar.
func (uc *LifecycleUseCase) List(ctx context.Context, filter repository.AlertFilter) ([]*entity.Alert, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.alertRepo.List(filter)
}

// CountUnread número de alertas sin leer.
func (uc *LifecycleUseCase) CountUnread(ctx context.Context) (int, error) {
	return uc.alertRepo.CountUnread()
}

// Purge elimina alertas resueltas con fecha de resolución estrictamente
// anterior a now-olderThan. Filtro y borrado puros, sin más lógica.
func (uc *LifecycleUseCase) Purge(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, domain.ErrInvalidInput
	}
	cutoff := uc.now().Add(-olderThan)
	return uc.alertRepo.DeleteResolvedBefore(cutoff)
}
