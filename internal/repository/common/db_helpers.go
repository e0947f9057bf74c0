package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Querier покрывает и *sqlx.DB, и *sqlx.Tx.
type Querier interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
	Rebind(query string) string
}

// Ident экранирует имя таблицы или колонки ("Perfis" регистрозависимо в PostgreSQL).
func Ident(name string) string {
	return pq.QuoteIdentifier(name)
}

// Columns экранирует и склеивает список колонок для SELECT.
func Columns(columns ...string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = Ident(c)
	}
	return strings.Join(quoted, ", ")
}

// GetByField - универсальная функция для получения одной сущности по значению поля.
func GetByField[T any](ctx context.Context, q Querier, table string, columns []string, field string, value any, notFoundErr error) (*T, error) {
	var entity T
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", Columns(columns...), Ident(table), Ident(field))

	if err := sqlx.GetContext(ctx, q, &entity, q.Rebind(query), value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundErr
		}
		return nil, fmt.Errorf("get by %s from %s: %w", field, table, err)
	}

	return &entity, nil
}

// SelectByField - универсальная функция для выборки всех сущностей с заданным значением поля.
// Порядок строк не задаётся и определяется хранилищем.
func SelectByField[T any](ctx context.Context, q Querier, table string, columns []string, field string, value any) ([]T, error) {
	entities := []T{}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", Columns(columns...), Ident(table), Ident(field))

	if err := sqlx.SelectContext(ctx, q, &entities, q.Rebind(query), value); err != nil {
		return nil, fmt.Errorf("select by %s from %s: %w", field, table, err)
	}

	return entities, nil
}

// BatchInserter накапливает строки и вставляет их одним запросом.
// Необязательный suffix дописывается после VALUES (например, ON CONFLICT ... DO UPDATE).
type BatchInserter struct {
	q           Querier
	query       string
	suffix      string
	batchSize   int
	values      []any
	rowCount    int
	fieldsCount int
}

// NewBatchInserter создает новый batch inserter
func NewBatchInserter(q Querier, baseQuery, suffix string, fieldsCount int, batchSize int) *BatchInserter {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &BatchInserter{
		q:           q,
		query:       baseQuery,
		suffix:      suffix,
		batchSize:   batchSize,
		values:      make([]any, 0, batchSize*fieldsCount),
		fieldsCount: fieldsCount,
	}
}

// Add добавляет строку для вставки
func (bi *BatchInserter) Add(ctx context.Context, rowValues ...any) error {
	if len(rowValues) != bi.fieldsCount {
		return fmt.Errorf("expected %d fields, got %d", bi.fieldsCount, len(rowValues))
	}

	bi.values = append(bi.values, rowValues...)
	bi.rowCount++

	if bi.rowCount >= bi.batchSize {
		return bi.Flush(ctx)
	}

	return nil
}

// Flush выполняет вставку накопленных значений
func (bi *BatchInserter) Flush(ctx context.Context) error {
	if bi.rowCount == 0 {
		return nil
	}

	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", bi.fieldsCount), ", ") + ")"
	rows := make([]string, bi.rowCount)
	for i := range rows {
		rows[i] = row
	}

	query := bi.query + " VALUES " + strings.Join(rows, ", ")
	if bi.suffix != "" {
		query += " " + bi.suffix
	}

	if _, err := bi.q.ExecContext(ctx, bi.q.Rebind(query), bi.values...); err != nil {
		return fmt.Errorf("batch insert: %w", err)
	}

	bi.values = bi.values[:0]
	bi.rowCount = 0

	return nil
}

// WithTransaction выполняет функцию внутри транзакции с правильной обработкой ошибок
func WithTransaction(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
