package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea la tabla de productos si no existe. Idempotente; se ejecuta
// en el arranque para que la herramienta funcione contra una DB vacía sin paso
// de migración aparte.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS products (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			quantity    INTEGER NOT NULL CHECK (quantity >= 0),
			price       NUMERIC(14,2) NOT NULL CHECK (price >= 0),
			category    TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("crear tabla products: %w", err)
	}
	return nil
}
