package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// constraint vacío acepta cualquiera.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return false
}

// isForeignKeyViolation verifica una referencia a un registro inexistente (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// validID descarta ids que no son UUID antes de consultar: la columna es
// UUID y PostgreSQL rechazaría el texto con 22P02 en lugar de no encontrarlo.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}
