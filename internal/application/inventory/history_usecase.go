package inventory

import (
	"context"
	"time"

	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
)

// MovementHistoryUseCase consultas de solo lectura sobre el historial de
// movimientos (inmutable, más recientes primero).
type MovementHistoryUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
}

// NewMovementHistoryUseCase construye el caso de uso.
func NewMovementHistoryUseCase(movementRepo repository.MovementRepository, productRepo repository.ProductRepository) *MovementHistoryUseCase {
	return &MovementHistoryUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// GetByID obtiene un movimiento. ErrNotFound si no existe.
func (uc *MovementHistoryUseCase) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// List devuelve los movimientos según filtro y el total sin paginar.
func (uc *MovementHistoryUseCase) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.movementRepo.List(filter)
}

// ListByProduct historial de un producto. ErrNotFound si el producto no existe.
func (uc *MovementHistoryUseCase) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Movement, int, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, 0, err
	}
	if product == nil {
		return nil, 0, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = 20
	}
	return uc.movementRepo.List(repository.MovementFilter{ProductID: productID, Limit: limit, Offset: offset})
}

// Stats estadísticas agregadas por tipo para un período opcional.
func (uc *MovementHistoryUseCase) Stats(ctx context.Context, from, to *time.Time) (*repository.MovementStats, error) {
	return uc.movementRepo.Stats(from, to)
}
