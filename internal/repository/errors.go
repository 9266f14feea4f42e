package repository

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrForeignKeyViolation = "23503"
	PgErrUniqueViolation     = "23505"
	PgErrCheckViolation      = "23514"
)

// QB общий построитель запросов с плейсхолдерами $n.
var QB = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
