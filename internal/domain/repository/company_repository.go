package repository

import (
	"context"

	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByEmail devuelve nil, nil si no existe empresa con ese correo.
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
}
