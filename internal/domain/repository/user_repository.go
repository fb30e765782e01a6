package repository

import "github.com/davidmtzc/inventra-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
