package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/kpiboard/metrics-dashboard-api/infrastructure/database/postgres"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/lib/pq"
)

const (
	metricDefinitionsTable = "metric_definitions"
	metricColumns          = "id, user_id, title, unit, color, source_kind, source_field, display_order, goal, current_value, change_percent, series, created_at, updated_at"
)

type MetricDefinitionRepository interface {
	ListByUser(userID string) ([]*domain.MetricDefinition, error)
	GetByID(userID, metricID string) (*domain.MetricDefinition, error)
	Create(def *domain.MetricDefinition) error
	Update(userID, metricID string, upd *domain.UpdateMetricRequest) error
	UpdateDerived(userID, metricID string, currentValue float64, series []domain.SeriesPoint, changePercent float64) error
	UpdateOrder(userID, metricID string, order int) error
	SetGoal(userID, metricID string, goal *float64) error
	Delete(userID, metricID string) error
	DeleteAllByUser(userID string) error
	ListUserIDs() ([]string, error)
}

type metricDefinitionRepository struct {
	conn *postgres.Connection
}

func NewMetricDefinitionRepository(conn *postgres.Connection) MetricDefinitionRepository {
	return &metricDefinitionRepository{
		conn: conn,
	}
}

func (r *metricDefinitionRepository) ListByUser(userID string) ([]*domain.MetricDefinition, error) {
	query, args, err := squirrel.
		Select(metricColumns).
		From(metricDefinitionsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("display_order ASC NULLS LAST, created_at ASC").
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

	defs := make([]*domain.MetricDefinition, 0)
	for rows.Next() {
		def, err := scanMetricDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear definição de métrica: %w", err)
		}
		defs = append(defs, def)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return defs, nil
}

func (r *metricDefinitionRepository) GetByID(userID, metricID string) (*domain.MetricDefinition, error) {
	query, args, err := squirrel.
		Select(metricColumns).
		From(metricDefinitionsTable).
		Where(squirrel.Eq{"user_id": userID, "id": metricID}).
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

	def, err := scanMetricDefinition(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear definição de métrica: %w", err)
	}

	return def, nil
}

func (r *metricDefinitionRepository) Create(def *domain.MetricDefinition) error {
	seriesJSON, err := json.Marshal(def.Series)
	if err != nil {
		return fmt.Errorf("erro ao serializar série para JSON: %w", err)
	}

	var order interface{}
	if def.DisplayOrder != nil {
		order = *def.DisplayOrder
	}

	var goal interface{}
	if def.Goal != nil {
		goal = *def.Goal
	}

	query, args, err := squirrel.
		Insert(metricDefinitionsTable).
		Columns("id", "user_id", "title", "unit", "color", "source_kind", "source_field", "display_order", "goal", "current_value", "change_percent", "series").
		Values(
			def.ID,
			def.UserID,
			def.Title,
			string(def.Unit),
			def.Color,
			string(def.Source.Kind),
			string(def.Source.Field),
			order,
			goal,
			def.CurrentValue,
			def.ChangePercent,
			seriesJSON,
		).
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

// Update persiste apenas os campos presentes no request; campos nil são
// descartados antes da escrita (o store rejeita valores indefinidos)
func (r *metricDefinitionRepository) Update(userID, metricID string, upd *domain.UpdateMetricRequest) error {
	builder := squirrel.
		Update(metricDefinitionsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "id": metricID}).
		PlaceholderFormat(squirrel.Dollar)

	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
	}
	if upd.Unit != nil {
		builder = builder.Set("unit", string(*upd.Unit))
	}
	if upd.Color != nil {
		builder = builder.Set("color", *upd.Color)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *metricDefinitionRepository) UpdateDerived(userID, metricID string, currentValue float64, series []domain.SeriesPoint, changePercent float64) error {
	if series == nil {
		series = []domain.SeriesPoint{}
	}

	seriesJSON, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("erro ao serializar série para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update(metricDefinitionsTable).
		Set("current_value", currentValue).
		Set("series", seriesJSON).
		Set("change_percent", changePercent).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "id": metricID}).
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

func (r *metricDefinitionRepository) UpdateOrder(userID, metricID string, order int) error {
	query, args, err := squirrel.
		Update(metricDefinitionsTable).
		Set("display_order", order).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "id": metricID}).
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

// SetGoal grava a meta da métrica; goal nil persiste NULL explícito
// (marcador de "sem meta"), nunca omite o campo
func (r *metricDefinitionRepository) SetGoal(userID, metricID string, goal *float64) error {
	var value interface{}
	if goal != nil {
		value = *goal
	}

	query, args, err := squirrel.
		Update(metricDefinitionsTable).
		Set("goal", value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "id": metricID}).
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

func (r *metricDefinitionRepository) Delete(userID, metricID string) error {
	query, args, err := squirrel.
		Delete(metricDefinitionsTable).
		Where(squirrel.Eq{"user_id": userID, "id": metricID}).
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

func (r *metricDefinitionRepository) DeleteAllByUser(userID string) error {
	query, args, err := squirrel.
		Delete(metricDefinitionsTable).
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

// ListUserIDs retorna os usuários com ao menos uma definição de métrica;
// é a base da reconciliação periódica do scheduler
func (r *metricDefinitionRepository) ListUserIDs() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT user_id").
		From(metricDefinitionsTable).
		OrderBy("user_id ASC").
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

	userIDs := make([]string, 0)
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("erro ao escanear user_id: %w", err)
		}
		userIDs = append(userIDs, userID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return userIDs, nil
}

func scanMetricDefinition(rows *sql.Rows) (*domain.MetricDefinition, error) {
	def := &domain.MetricDefinition{}

	var (
		unit         string
		sourceKind   string
		sourceField  string
		displayOrder sql.NullInt64
		goal         sql.NullFloat64
		seriesJSON   []byte
	)

	err := rows.Scan(
		&def.ID,
		&def.UserID,
		&def.Title,
		&unit,
		&def.Color,
		&sourceKind,
		&sourceField,
		&displayOrder,
		&goal,
		&def.CurrentValue,
		&def.ChangePercent,
		&seriesJSON,
		&def.CreatedAt,
		&def.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	def.Unit = domain.MetricUnit(unit)
	def.Source = domain.MetricSource{
		Kind:  domain.SourceKind(sourceKind),
		Field: domain.BuiltInField(sourceField),
	}

	if displayOrder.Valid {
		order := int(displayOrder.Int64)
		def.DisplayOrder = &order
	}

	if goal.Valid {
		value := goal.Float64
		def.Goal = &value
	}

	def.Series = []domain.SeriesPoint{}
	if len(seriesJSON) > 0 {
		if err := json.Unmarshal(seriesJSON, &def.Series); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de series: %w", err)
		}
	}

	return def, nil
}
