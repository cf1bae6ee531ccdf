package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
	"github.com/jhoicas/registro-empresas-api/internal/domain/repository"
)

var _ repository.VerificationCodeRepository = (*VerificationCodeRepo)(nil)

// VerificationCodeRepo implementación del puerto VerificationCodeRepository sobre PostgreSQL.
type VerificationCodeRepo struct {
	q Querier
}

// NewVerificationCodeRepository construye el adaptador de códigos de verificación. Pasar pool o tx (Querier).
func NewVerificationCodeRepository(q Querier) *VerificationCodeRepo {
	return &VerificationCodeRepo{q: q}
}

// Create persiste un nuevo código. El correo no es único: pueden coexistir
// varios códigos vigentes por correo.
func (r *VerificationCodeRepo) Create(ctx context.Context, code *entity.VerificationCode) error {
	query := `
		INSERT INTO verificacion_codigos (id, correo, codigo, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, code.ID, code.Email, code.Code, code.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert código: %w", err)
	}
	return nil
}

// Find busca la coincidencia exacta (correo, código). Devuelve nil, nil si no hay.
func (r *VerificationCodeRepo) Find(ctx context.Context, email, code string) (*entity.VerificationCode, error) {
	query := `
		SELECT id, correo, codigo, created_at
		FROM verificacion_codigos
		WHERE correo = $1 AND codigo = $2
		ORDER BY created_at DESC LIMIT 1`
	var vc entity.VerificationCode
	err := r.q.QueryRow(ctx, query, email, code).Scan(&vc.ID, &vc.Email, &vc.Code, &vc.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find código: %w", err)
	}
	return &vc, nil
}

// DeleteByEmail elimina todos los códigos del correo.
func (r *VerificationCodeRepo) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM verificacion_codigos WHERE correo = $1`, email)
	if err != nil {
		return fmt.Errorf("delete códigos: %w", err)
	}
	return nil
}
