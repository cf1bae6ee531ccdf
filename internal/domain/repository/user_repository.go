package repository

import (
	"context"

	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail devuelve nil, nil si no existe usuario con ese correo.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
