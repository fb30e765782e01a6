package repository

import "github.com/davidmtzc/inventra-api/internal/domain/entity"

// CategoryRepository puerto de persistencia de categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
}
