package postgres

import (
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is what storages run queries against: a *pgxpool.Pool in production,
// a mock in tests. Inside trm.Manager.Do the getter swaps in the tx.
//
//go:generate mockgen -source=db.go -destination=./mocks/db_mock.go -package=mocks
type DB interface {
	trmpgx.Tr
}

var ErrBuildingQuery = errors.New("error building sql-query")

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

type scanner interface {
	Scan(dest ...any) error
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
