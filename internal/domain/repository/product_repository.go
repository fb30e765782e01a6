package repository

import "github.com/davidmtzc/inventra-api/internal/domain/entity"

// ProductFilter filtros para listar productos.
type ProductFilter struct {
	CategoryID   string
	LowStockOnly bool // stock actual <= stock mínimo
	ActiveOnly   bool
	Search       string // por código o nombre
	Limit        int
	Offset       int
}

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (TxRunner).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo el stock actual (usado por el libro de stock).
	UpdateStock(id string, currentStock int) error
	Deactivate(id string) error
	List(filter ProductFilter) ([]*entity.Product, int, error)
	// ListActive devuelve todos los productos activos (para el barrido de alertas).
	ListActive() ([]*entity.Product, error)
}
