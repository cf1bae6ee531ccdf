package repository

import (
	"context"

	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
)

// VerificationCodeRepository define el puerto de persistencia para los códigos
// de verificación por correo.
type VerificationCodeRepository interface {
	Create(ctx context.Context, code *entity.VerificationCode) error
	// Find devuelve el código que coincide exactamente con (correo, código),
	// o nil, nil si no hay coincidencia.
	Find(ctx context.Context, email, code string) (*entity.VerificationCode, error)
	// DeleteByEmail elimina TODOS los códigos del correo (consumo tras validación).
	DeleteByEmail(ctx context.Context, email string) error
}
