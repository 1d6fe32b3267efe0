package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SQLSTATE codes the repositories translate into domain error kinds.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// classify wraps a pgx failure in a *domain.Error whose kind reflects the SQLSTATE.
// The store's own message is kept as the error text.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.NewError(domain.ErrorKindNotFound, "", err))
	}

	kind := domain.ErrorKindStore
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUniqueViolation:
			kind = domain.ErrorKindConflict
		case pgErr.Code == codeForeignKeyViolation:
			kind = domain.ErrorKindDependency
		case pgErr.Code == codeNotNullViolation, pgErr.Code == codeCheckViolation, strings.HasPrefix(pgErr.Code, "22"):
			kind = domain.ErrorKindValidation
		}
	}
	return fmt.Errorf("%s: %w", op, domain.NewError(kind, "", err))
}

// collect drains rows through scan into a non-nil slice.
func collect[T any](rows pgx.Rows, scan func(pgx.Row, *T) error) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
