package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/pkg/keycodec"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// =====================================================
// WRITE HELPERS
// =====================================================
// Rows handed to these helpers must already be in column (snake_case) form.

func Insert[T any](ctx context.Context, q Querier, table, entity string, row keycodec.Object) (*T, error) {
	query, args, err := insertSQL(table, row)
	if err != nil {
		return nil, err
	}
	return one[T](ctx, q, entity, query, args...)
}

// Update rewrites the given columns and bumps updated_at.
func Update[T any](ctx context.Context, q Querier, table, entity string, id uuid.UUID, row keycodec.Object) (*T, error) {
	query, args, err := updateSQL(table, id, row)
	if err != nil {
		return nil, err
	}
	return one[T](ctx, q, entity, query, args...)
}

// Upsert inserts row or, when conflictCols already exist, overwrites updateCols only.
func Upsert[T any](ctx context.Context, q Querier, table, entity string, row keycodec.Object, conflictCols, updateCols []string) (*T, error) {
	query, args, err := upsertSQL(table, row, conflictCols, updateCols)
	if err != nil {
		return nil, err
	}
	return one[T](ctx, q, entity, query, args...)
}

func DeleteByID(ctx context.Context, q Querier, table, entity string, id uuid.UUID) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pq.QuoteIdentifier(table))
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return TranslateError(err, entity)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound(entity)
	}
	return nil
}

// =====================================================
// READ HELPERS
// =====================================================

func SelectOne[T any](ctx context.Context, q Querier, entity, query string, args ...any) (*T, error) {
	return one[T](ctx, q, entity, query, args...)
}

func SelectMany[T any](ctx context.Context, q Querier, entity, query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, TranslateError(err, entity)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, TranslateError(err, entity)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func Count(ctx context.Context, q Querier, table string) (int64, error) {
	var n int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", pq.QuoteIdentifier(table))
	if err := q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, TranslateError(err, table)
	}
	return n, nil
}

func one[T any](ctx context.Context, q Querier, entity, query string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, TranslateError(err, entity)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, TranslateError(err, entity)
	}
	return item, nil
}

// TranslateError maps driver errors onto the application taxonomy. The store's own
// message is kept verbatim.
func TranslateError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound(entity)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Persistence(pgErr.Message, err)
	}
	return apperror.Persistence(err.Error(), err)
}

// =====================================================
// SQL BUILDERS
// =====================================================

func columns(row keycodec.Object) ([]string, []any, error) {
	if row.Len() == 0 {
		return nil, nil, fmt.Errorf("empty row")
	}
	cols := make([]string, 0, row.Len())
	for _, k := range row.Keys() {
		if !keycodec.IsSnake(k) {
			return nil, nil, fmt.Errorf("column %q is not in snake_case", k)
		}
		cols = append(cols, pq.QuoteIdentifier(k))
	}
	return cols, row.Values(), nil
}

func placeholders(from, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ph, ", ")
}

func insertSQL(table string, row keycodec.Object) (string, []any, error) {
	cols, args, err := columns(row)
	if err != nil {
		return "", nil, err
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		pq.QuoteIdentifier(table), strings.Join(cols, ", "), placeholders(1, len(cols)))
	return query, args, nil
}

func updateSQL(table string, id uuid.UUID, row keycodec.Object) (string, []any, error) {
	cols, args, err := columns(row)
	if err != nil {
		return "", nil, err
	}
	sets := make([]string, len(cols), len(cols)+1)
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING *",
		pq.QuoteIdentifier(table), strings.Join(sets, ", "), len(args))
	return query, args, nil
}

func upsertSQL(table string, row keycodec.Object, conflictCols, updateCols []string) (string, []any, error) {
	query, args, err := insertSQL(table, row)
	if err != nil {
		return "", nil, err
	}
	if len(conflictCols) == 0 {
		return "", nil, fmt.Errorf("upsert into %s needs conflict columns", table)
	}

	conflict := make([]string, len(conflictCols))
	for i, c := range conflictCols {
		conflict[i] = pq.QuoteIdentifier(c)
	}
	sets := make([]string, 0, len(updateCols)+1)
	for _, c := range updateCols {
		qc := pq.QuoteIdentifier(c)
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", qc, qc))
	}
	sets = append(sets, "updated_at = NOW()")

	query = strings.TrimSuffix(query, " RETURNING *") +
		fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s RETURNING *",
			strings.Join(conflict, ", "), strings.Join(sets, ", "))
	return query, args, nil
}

// =====================================================
// LIST QUERIES
// =====================================================

// Query accumulates WHERE clauses and positional arguments for list reads.
type Query struct {
	conds []string
	args  []any
	order string
}

// Where adds a condition; every %s in format becomes the next positional placeholder
// bound to the matching arg.
func (q *Query) Where(format string, args ...any) *Query {
	ph := make([]any, len(args))
	for i, a := range args {
		q.args = append(q.args, a)
		ph[i] = fmt.Sprintf("$%d", len(q.args))
	}
	q.conds = append(q.conds, "("+fmt.Sprintf(format, ph...)+")")
	return q
}

// OrderBy replaces the ordering Build was given.
func (q *Query) OrderBy(clause string) *Query {
	q.order = clause
	return q
}

// Build renders "SELECT * FROM table WHERE ... ORDER BY ... LIMIT n".
func (q *Query) Build(table, orderBy string, limit int) (string, []any) {
	if q.order != "" {
		orderBy = q.order
	}
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(pq.QuoteIdentifier(table))
	if len(q.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.conds, " AND "))
	}
	if orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(orderBy)
	}
	if limit > 0 {
		q.args = append(q.args, limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(q.args)))
	}
	return sb.String(), q.args
}
