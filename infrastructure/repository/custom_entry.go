package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/kpiboard/metrics-dashboard-api/infrastructure/database/postgres"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/lib/pq"
)

const (
	customEntriesTable = "custom_metric_entries"
	customColumns      = "id, user_id, metric_id, month, year, value, created_at, updated_at"
)

type CustomMetricEntryRepository interface {
	ListByUser(userID string) ([]*domain.CustomMetricEntry, error)
	ListIDsByMetric(userID, metricID string) ([]string, error)
	SaveOrUpdate(entry *domain.CustomMetricEntry) error
	Delete(userID, entryID string) error
	BatchDelete(ids []string) error
	DeleteAllByUser(userID string) error
}

type customMetricEntryRepository struct {
	conn *postgres.Connection
}

func NewCustomMetricEntryRepository(conn *postgres.Connection) CustomMetricEntryRepository {
	return &customMetricEntryRepository{
		conn: conn,
	}
}

func (r *customMetricEntryRepository) ListByUser(userID string) ([]*domain.CustomMetricEntry, error) {
	query, args, err := squirrel.
		Select(customColumns).
		From(customEntriesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("year ASC, created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.CustomMetricEntry, 0)
	for rows.Next() {
		entry, err := scanCustomEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada custom: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// ListIDsByMetric retorna os ids das entradas de uma métrica custom;
// é a fase de coleta da exclusão em cascata da definição
func (r *customMetricEntryRepository) ListIDsByMetric(userID, metricID string) ([]string, error) {
	query, args, err := squirrel.
		Select("id").
		From(customEntriesTable).
		Where(squirrel.Eq{"user_id": userID, "metric_id": metricID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

// SaveOrUpdate grava o valor com upsert pela chave
// (user_id, metric_id, month, year)
func (r *customMetricEntryRepository) SaveOrUpdate(entry *domain.CustomMetricEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(customEntriesTable).
		Columns("id", "user_id", "metric_id", "month", "year", "value").
		Values(
			entry.ID,
			entry.UserID,
			entry.MetricID,
			entry.Month,
			entry.Year,
			entry.Value,
		).
		Suffix(`
			ON CONFLICT (user_id, metric_id, month, year) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *customMetricEntryRepository) Delete(userID, entryID string) error {
	query, args, err := squirrel.
		Delete(customEntriesTable).
		Where(squirrel.Eq{"user_id": userID, "id": entryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// BatchDelete exclui o lote de ids em uma única transação: ou todas as
// linhas saem, ou nenhuma
func (r *customMetricEntryRepository) BatchDelete(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Delete(customEntriesTable).
			Where(squirrel.Eq{"id": ids}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao executar a query: %w", err)
		}

		return nil
	})
}

func (r *customMetricEntryRepository) DeleteAllByUser(userID string) error {
	query, args, err := squirrel.
		Delete(customEntriesTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanCustomEntry(rows *sql.Rows) (*domain.CustomMetricEntry, error) {
	entry := &domain.CustomMetricEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.MetricID,
		&entry.Month,
		&entry.Year,
		&entry.Value,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
