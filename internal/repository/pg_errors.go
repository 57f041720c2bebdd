package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ConstraintOpenHospitalization is the partial unique index allowing at most
// one hospitalization row per patient with a null end date. The service layer
// branches on it; a collision on the composite primary key is a different
// failure and must not be reported as an open-row conflict.
const ConstraintOpenHospitalization = "ux_hospitalization_open"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure, optionally on a specific constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
}

// IsForeignKeyViolation reports whether err is a Postgres referential
// integrity failure, such as deleting a catalogue row still in use.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
