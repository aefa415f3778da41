package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// joinSep разделяет имя присоединённой таблицы и колонки в алиасе
const joinSep = "__"

// PostgresStore реализует Store поверх пула pgx
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore создаёт хранилище поверх пула соединений
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Select выполняет выборку с фильтром, join и сортировкой
func (s *PostgresStore) Select(ctx context.Context, table string, q Query) ([]Record, error) {
	sql, args := buildSelect(table, q, 0)
	return s.query(ctx, sql, args)
}

// SelectOne возвращает первую запись по фильтру или ErrNotFound
func (s *PostgresStore) SelectOne(ctx context.Context, table string, filter Filter) (Record, error) {
	sql, args := buildSelect(table, Query{Filter: filter}, 1)
	records, err := s.query(ctx, sql, args)
	if err != nil {
		return nil, lookupError(err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("select one from %s: %w", table, ErrNotFound)
	}
	return records[0], nil
}

// Insert вставляет запись и возвращает её вместе с полями, заполненными базой
func (s *PostgresStore) Insert(ctx context.Context, table string, rec Record) (Record, error) {
	sql, args := buildInsert(table, rec)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", table, mapPgError(err))
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", table, mapPgError(err))
	}

	return Record(row), nil
}

// Update обновляет запись по id
func (s *PostgresStore) Update(ctx context.Context, table, id string, patch Record) error {
	if len(patch) == 0 {
		return fmt.Errorf("update %s: empty patch", table)
	}

	sql, args := buildUpdate(table, id, patch)

	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, lookupError(mapPgError(err)))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update %s %s: %w", table, id, ErrNotFound)
	}

	return nil
}

func (s *PostgresStore) query(ctx context.Context, sql string, args []any) ([]Record, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select: %w", mapPgError(err))
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("collect rows: %w", mapPgError(err))
	}

	records := make([]Record, 0, len(maps))
	for _, m := range maps {
		records = append(records, nestJoined(m))
	}
	return records, nil
}

func buildSelect(table string, q Query, limit int) (string, []any) {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	sb.WriteString(ident(table))
	sb.WriteString(".*")
	for _, j := range q.Joins {
		for _, col := range j.Columns {
			sb.WriteString(", ")
			sb.WriteString(ident(j.Table, col))
			sb.WriteString(" AS ")
			sb.WriteString(ident(j.Table + joinSep + col))
		}
	}

	sb.WriteString(" FROM ")
	sb.WriteString(ident(table))

	for _, j := range q.Joins {
		sb.WriteString(" LEFT JOIN ")
		sb.WriteString(ident(j.Table))
		sb.WriteString(" ON ")
		sb.WriteString(ident(j.Table, "id"))
		sb.WriteString(" = ")
		sb.WriteString(ident(table, j.LocalKey))
	}

	args := make([]any, 0, len(q.Filter))
	for i, eq := range q.Filter {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, eq.Value)
		fmt.Fprintf(&sb, "%s = $%d", ident(table, eq.Column), len(args))
	}

	for i, o := range q.OrderBy {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(ident(table, o.Column))
		if o.Desc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}

	if limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", limit)
	}

	return sb.String(), args
}

func buildInsert(table string, rec Record) (string, []any) {
	cols := sortedKeys(rec)

	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		quoted[i] = ident(col)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = rec[col]
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		ident(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)
	return sql, args
}

func buildUpdate(table, id string, patch Record) (string, []any) {
	cols := sortedKeys(patch)

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		args = append(args, patch[col])
		sets[i] = fmt.Sprintf("%s = $%d", ident(col), len(args))
	}
	args = append(args, id)

	sql := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		ident(table),
		strings.Join(sets, ", "),
		ident("id"),
		len(args),
	)
	return sql, args
}

// nestJoined раскладывает алиасы вида services__name во вложенные записи
func nestJoined(m map[string]any) Record {
	rec := make(Record, len(m))
	for k, v := range m {
		table, col, ok := strings.Cut(k, joinSep)
		if !ok {
			rec[k] = v
			continue
		}
		nested, _ := rec[table].(Record)
		if nested == nil {
			nested = Record{}
			rec[table] = nested
		}
		nested[col] = v
	}
	return rec
}

func ident(parts ...string) string {
	return pgx.Identifier(parts).Sanitize()
}

func sortedKeys(rec Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mapPgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

// lookupError для поиска по ключу: кривой uuid значит, что такой записи нет.
// При вставке та же ошибка остаётся ошибкой записи.
func lookupError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" { // invalid_text_representation
		return fmt.Errorf("%w: %s", ErrNotFound, pgErr.Message)
	}
	return err
}
