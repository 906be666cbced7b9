package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
)

// Error variables
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key value")
)

// PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// classify maps driver errors onto the repository sentinels, keeping the original error in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

// logQuery logs a query in a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
