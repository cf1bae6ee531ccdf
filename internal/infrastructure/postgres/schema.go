package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias idempotentes del esquema: cuatro tablas, correo de empresa,
// correo de usuario y hardware_id con constraint único.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS empresas (
		id          TEXT PRIMARY KEY,
		nombre      TEXT NOT NULL,
		rfc         TEXT NOT NULL DEFAULT '',
		direccion   TEXT NOT NULL DEFAULT '',
		telefono    TEXT NOT NULL DEFAULT '',
		correo      TEXT NOT NULL UNIQUE,
		plan        TEXT NOT NULL DEFAULT '',
		estado      TEXT NOT NULL DEFAULT 'pendiente',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id          TEXT PRIMARY KEY,
		empresa_id  TEXT NOT NULL REFERENCES empresas(id),
		nombre      TEXT NOT NULL,
		correo      TEXT NOT NULL UNIQUE,
		telefono    TEXT NOT NULL DEFAULT '',
		contrasena  TEXT NOT NULL,
		rol         TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS dispositivos (
		id             TEXT PRIMARY KEY,
		empresa_id     TEXT NOT NULL REFERENCES empresas(id),
		hardware_id    TEXT NOT NULL UNIQUE,
		nombre_pc      TEXT NOT NULL DEFAULT '',
		fecha_registro TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS verificacion_codigos (
		id          TEXT PRIMARY KEY,
		correo      TEXT NOT NULL,
		codigo      TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_verificacion_correo ON verificacion_codigos (correo)`,
}

// EnsureSchema crea las tablas si no existen. Se ejecuta al arrancar.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
