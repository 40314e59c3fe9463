package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/kpiboard/metrics-dashboard-api/infrastructure/database/postgres"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/lib/pq"
)

const (
	monthlyEntriesTable = "monthly_entries"
	monthlyColumns      = "id, user_id, month, year, mrr, trial_to_paid, customers, average_ltv, new_trials, churn_rate, created_at, updated_at"
)

type MonthlyEntryRepository interface {
	ListByUser(userID string) ([]*domain.MonthlyEntry, error)
	GetByID(userID, entryID string) (*domain.MonthlyEntry, error)
	GetByPeriod(userID, month string, year int) (*domain.MonthlyEntry, error)
	SaveOrUpdate(entry *domain.MonthlyEntry) error
	Delete(userID, entryID string) error
	DeleteAllByUser(userID string) error
}

type monthlyEntryRepository struct {
	conn *postgres.Connection
}

func NewMonthlyEntryRepository(conn *postgres.Connection) MonthlyEntryRepository {
	return &monthlyEntryRepository{
		conn: conn,
	}
}

func (r *monthlyEntryRepository) ListByUser(userID string) ([]*domain.MonthlyEntry, error) {
	query, args, err := squirrel.
		Select(monthlyColumns).
		From(monthlyEntriesTable).
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

	entries := make([]*domain.MonthlyEntry, 0)
	for rows.Next() {
		entry, err := scanMonthlyEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada mensal: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *monthlyEntryRepository) GetByID(userID, entryID string) (*domain.MonthlyEntry, error) {
	return r.getOne(squirrel.Eq{"user_id": userID, "id": entryID})
}

// GetByPeriod busca a entrada da chave (usuário, mês, ano), ou nil
func (r *monthlyEntryRepository) GetByPeriod(userID, month string, year int) (*domain.MonthlyEntry, error) {
	return r.getOne(squirrel.Eq{"user_id": userID, "month": month, "year": year})
}

func (r *monthlyEntryRepository) getOne(where squirrel.Eq) (*domain.MonthlyEntry, error) {
	query, args, err := squirrel.
		Select(monthlyColumns).
		From(monthlyEntriesTable).
		Where(where).
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

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	entry, err := scanMonthlyEntry(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear entrada mensal: %w", err)
	}

	return entry, nil
}

// SaveOrUpdate grava a entrada com upsert pela chave (user_id, month, year);
// o banco garante no máximo uma linha por período
func (r *monthlyEntryRepository) SaveOrUpdate(entry *domain.MonthlyEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(monthlyEntriesTable).
		Columns("id", "user_id", "month", "year", "mrr", "trial_to_paid", "customers", "average_ltv", "new_trials", "churn_rate").
		Values(
			entry.ID,
			entry.UserID,
			entry.Month,
			entry.Year,
			entry.MRR,
			entry.TrialToPaid,
			entry.Customers,
			entry.AverageLTV,
			entry.NewTrials,
			entry.ChurnRate,
		).
		Suffix(`
			ON CONFLICT (user_id, month, year) DO UPDATE SET
				mrr = EXCLUDED.mrr,
				trial_to_paid = EXCLUDED.trial_to_paid,
				customers = EXCLUDED.customers,
				average_ltv = EXCLUDED.average_ltv,
				new_trials = EXCLUDED.new_trials,
				churn_rate = EXCLUDED.churn_rate,
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

func (r *monthlyEntryRepository) Delete(userID, entryID string) error {
	query, args, err := squirrel.
		Delete(monthlyEntriesTable).
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

func (r *monthlyEntryRepository) DeleteAllByUser(userID string) error {
	query, args, err := squirrel.
		Delete(monthlyEntriesTable).
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

func scanMonthlyEntry(rows *sql.Rows) (*domain.MonthlyEntry, error) {
	entry := &domain.MonthlyEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Month,
		&entry.Year,
		&entry.MRR,
		&entry.TrialToPaid,
		&entry.Customers,
		&entry.AverageLTV,
		&entry.NewTrials,
		&entry.ChurnRate,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
