package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
	"github.com/davidmtzc/inventra-api/internal/domain/stock"
)

// ApplyMovementUseCase aplica movimientos de stock de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback. El bloqueo por
// producto serializa movimientos concurrentes sobre el mismo producto: dos
// salidas simultáneas nunca pasan la validación de stock contra una cantidad
// obsoleta.
type ApplyMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para aplicar un movimiento de stock.
type MovementInput struct {
	ProductID string
	UserID    string
	Type      entity.MovementType
	Quantity  int
	UnitPrice *decimal.Decimal
	Reason    string
	Reference string
	Notes     string
}

// ApplyMovement valida la entrada, bloquea la fila del producto, calcula el
// stock posterior con las fórmulas del libro y persiste producto y movimiento
// en la misma transacción. Valida antes de mutar: en error no queda estado
// parcial.
func (uc *ApplyMovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.ProductID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidInput
	}

	// Existencia fuera de la tx: evita abrir transacción para un 404.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var created *entity.Movement

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del producto: el stock leído es el comprometido más
		// reciente y nadie más lo cambia hasta el Commit.
		p, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		mov, err := stock.Apply(p, stock.Request{
			Type:      input.Type,
			Quantity:  input.Quantity,
			UnitPrice: input.UnitPrice,
			Reason:    input.Reason,
			Reference: input.Reference,
			Notes:     input.Notes,
		}, input.UserID, now)
		if err != nil {
			return err
		}
		mov.ID = uuid.New().String()

		if err := productRepo.UpdateStock(p.ID, p.CurrentStock); err != nil {
			return err
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
