package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/registro-empresas-api/internal/domain"
	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
	"github.com/jhoicas/registro-empresas-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa. Un correo duplicado (23505) se traduce a
// ErrCompanyEmailExists: mismo conflicto que habría reportado el guard previo.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO empresas (id, nombre, rfc, direccion, telefono, correo, plan, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.RFC, company.Address,
		company.Phone, company.Email, company.Plan, company.Status,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCompanyEmailExists
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve nil, nil si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, nombre, rfc, direccion, telefono, correo, plan, estado, created_at, updated_at
		FROM empresas WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.RFC, &c.Address, &c.Phone, &c.Email, &c.Plan, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &c, nil
}

// GetByEmail obtiene una empresa por correo (match exacto). Devuelve nil, nil si no existe.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	query := `
		SELECT id, nombre, rfc, direccion, telefono, correo, plan, estado, created_at, updated_at
		FROM empresas WHERE correo = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, email).Scan(
		&c.ID, &c.Name, &c.RFC, &c.Address, &c.Phone, &c.Email, &c.Plan, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa por correo: %w", err)
	}
	return &c, nil
}
