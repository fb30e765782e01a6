package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmtzc/inventra-api/internal/application/inventory"
	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
)

// fakeProductRepo repositorio de productos en memoria para los tests.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, currentStock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = currentStock
	return nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	if p, ok := r.products[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Active {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeMovementRepo guarda los movimientos creados.
type fakeMovementRepo struct {
	movements []*entity.Movement
	createErr error
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.Movement, int, error) {
	return r.movements, len(r.movements), nil
}

func (r *fakeMovementRepo) Stats(from, to *time.Time) (*repository.MovementStats, error) {
	return &repository.MovementStats{}, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los repos en memoria.
// Si fn falla, restaura el estado previo de los productos (simula Rollback).
type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	snapshot := make(map[string]entity.Product, len(r.productRepo.products))
	for id, p := range r.productRepo.products {
		snapshot[id] = *p
	}
	if err := fn(r.productRepo, r.movementRepo); err != nil {
		for id := range r.productRepo.products {
			restored := snapshot[id]
			r.productRepo.products[id] = &restored
		}
		return err
	}
	return nil
}

func newUseCase(products ...*entity.Product) (*inventory.ApplyMovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movementRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{productRepo: productRepo, movementRepo: movementRepo}
	return inventory.NewApplyMovementUseCase(tx, productRepo), productRepo, movementRepo
}

func TestApplyMovement_Entrada(t *testing.T) {
	uc, productRepo, movementRepo := newUseCase(&entity.Product{ID: "p1", CurrentStock: 10, Active: true})

	mov, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1", UserID: "u1", Type: entity.MovementTypeIn, Quantity: 5,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, mov.ID)
	assert.Equal(t, 10, mov.StockBefore)
	assert.Equal(t, 15, mov.StockAfter)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 15, p.CurrentStock, "el stock persistido debe coincidir con StockAfter")
	require.Len(t, movementRepo.movements, 1)
}

func TestApplyMovement_Ajuste(t *testing.T) {
	uc, productRepo, _ := newUseCase(&entity.Product{ID: "p1", CurrentStock: 42, Active: true})

	mov, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1", UserID: "u1", Type: entity.MovementTypeAdjust, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, mov.StockBefore)
	assert.Equal(t, 0, mov.StockAfter)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 0, p.CurrentStock)
}

func TestApplyMovement_StockInsuficiente_NoDejaEstadoParcial(t *testing.T) {
	uc, productRepo, movementRepo := newUseCase(&entity.Product{ID: "p1", CurrentStock: 3, Active: true})

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1", UserID: "u1", Type: entity.MovementTypeOut, Quantity: 5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 3, p.CurrentStock, "el stock no debe cambiar si el movimiento falla")
	assert.Empty(t, movementRepo.movements)
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: "nope", UserID: "u1", Type: entity.MovementTypeIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyMovement_EntradaInvalida(t *testing.T) {
	uc, _, _ := newUseCase(&entity.Product{ID: "p1", Active: true})

	cases := []inventory.MovementInput{
		{ProductID: "", UserID: "u1", Type: entity.MovementTypeIn, Quantity: 1},
		{ProductID: "p1", UserID: "", Type: entity.MovementTypeIn, Quantity: 1},
		{ProductID: "p1", UserID: "u1", Type: entity.MovementType("transfer"), Quantity: 1},
	}
	for i, in := range cases {
		_, err := uc.ApplyMovement(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}

func TestApplyMovement_CantidadCeroRechazada(t *testing.T) {
	uc, _, _ := newUseCase(&entity.Product{ID: "p1", CurrentStock: 5, Active: true})
	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1", UserID: "u1", Type: entity.MovementTypeIn, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestApplyMovement_FalloAlPersistirMovimiento_RevierteStock(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{ID: "p1", CurrentStock: 10, Active: true})
	movementRepo := &fakeMovementRepo{createErr: errors.New("insert falló")}
	tx := &fakeTxRunner{productRepo: productRepo, movementRepo: movementRepo}
	uc := inventory.NewApplyMovementUseCase(tx, productRepo)

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1", UserID: "u1", Type: entity.MovementTypeIn, Quantity: 5,
	})
	require.Error(t, err)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 10, p.CurrentStock, "rollback debe restaurar el stock")
}
