package registration

import (
	"context"

	"github.com/jhoicas/registro-empresas-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción: los tres inserts del registro
// se confirman todos o ninguno. La implementación vive en infrastructure.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		deviceRepo repository.DeviceRepository,
	) error) error
}
