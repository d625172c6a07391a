package sequence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lib/pq"
)

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Counter hands out the next counter value of a namespace. q is the
// connection or transaction the caller will insert the new row with.
type Counter interface {
	Next(ctx context.Context, q Querier, ns Namespace) (int64, error)
}

// Mint draws the next value from c and formats it.
func Mint(ctx context.Context, c Counter, q Querier, ns Namespace) (string, error) {
	n, err := c.Next(ctx, q, ns)
	if err != nil {
		return "", err
	}
	return Format(ns, n)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// MaxSuffix scans the namespace's table for the largest numeric suffix.
// Identifiers whose remainder is not all digits are ignored.
func MaxSuffix(ctx context.Context, q Querier, ns Namespace) (int64, error) {
	col := pq.QuoteIdentifier(ns.Column)
	query := fmt.Sprintf(`
		SELECT COALESCE(MAX(CAST(SUBSTRING(%[1]s FROM $2::int) AS BIGINT)), 0)
		FROM %[2]s
		WHERE %[1]s LIKE $1 AND SUBSTRING(%[1]s FROM $2::int) ~ '^[0-9]{1,18}$'
	`, col, pq.QuoteIdentifier(ns.Table))

	var highest int64
	err := q.QueryRowContext(ctx, query,
		likeEscaper.Replace(ns.Prefix)+"%",
		utf8.RuneCountInString(ns.Prefix)+1,
	).Scan(&highest)
	if err != nil {
		return 0, fmt.Errorf("sequence %s: scan max suffix: %w", ns.Key(), err)
	}
	return highest, nil
}

// PostgresCounter keeps one row per namespace in id_counter. Running it
// inside the transaction that inserts the new record holds the row lock
// until commit, and a rollback gives the value back.
type PostgresCounter struct{}

func (PostgresCounter) Next(ctx context.Context, q Querier, ns Namespace) (int64, error) {
	var value int64
	err := q.QueryRowContext(ctx, `
		UPDATE id_counter SET value = value + 1, updated_at = NOW()
		WHERE namespace = $1
		RETURNING value
	`, ns.Key()).Scan(&value)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("sequence %s: advance counter: %w", ns.Key(), err)
	}

	seed, err := MaxSuffix(ctx, q, ns)
	if err != nil {
		return 0, err
	}
	err = q.QueryRowContext(ctx, `
		INSERT INTO id_counter (namespace, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (namespace) DO UPDATE
		SET value = id_counter.value + 1, updated_at = NOW()
		RETURNING value
	`, ns.Key(), seed+1).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("sequence %s: seed counter: %w", ns.Key(), err)
	}
	return value, nil
}
