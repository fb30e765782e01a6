package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/davidmtzc/inventra-api/internal/application/dto"
	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. El stock actual nunca se edita aquí:
// nace en 0 y solo cambia vía movimientos del libro de stock.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create valida y persiste un producto nuevo. ErrDuplicate si el código ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Code == "" || in.Name == "" || in.CategoryID == "" || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.productRepo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	expiry, err := parseExpiry(in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	unitMeasure := in.UnitMeasure
	if unitMeasure == "" {
		unitMeasure = "unidad"
	}
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		CurrentStock:  0,
		MinStock:      in.MinStock,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		UnitMeasure:   unitMeasure,
		Location:      in.Location,
		Batch:         in.Batch,
		ExpiryDate:    expiry,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto. ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Update actualiza los campos editables (no el código ni el stock).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.CategoryID == "" || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := parseExpiry(in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.MinStock = in.MinStock
	product.PurchasePrice = in.PurchasePrice
	product.SalePrice = in.SalePrice
	if in.UnitMeasure != "" {
		product.UnitMeasure = in.UnitMeasure
	}
	product.Location = in.Location
	product.Batch = in.Batch
	product.ExpiryDate = expiry
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Deactivate desactiva un producto. Sus movimientos y alertas se conservan
// para auditoría; el barrido deja de evaluarlo.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Deactivate(id)
}

// List lista productos según filtro con el total sin paginar.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.productRepo.List(filter)
}

// parseExpiry interpreta una fecha YYYY-MM-DD opcional.
func parseExpiry(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
