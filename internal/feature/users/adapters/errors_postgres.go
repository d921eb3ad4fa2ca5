package adapters

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"user_service/internal/feature/users/usecase"
)

// Postgres error codes relevant to the schema constraints.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateDBError maps constraint violations onto the usecase error
// vocabulary. Both the raw pgconn codes and gorm's translated
// sentinels are checked so the SQLite-backed tests exercise the same
// paths as production Postgres.
func translateDBError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return usecase.ErrEmailTaken
		case pgForeignKeyViolation:
			return usecase.ErrProfileGone
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrEmailTaken
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return usecase.ErrProfileGone
	}
	return err
}
