package domain

import "time"

// CustomMetricEntry é o valor mensal de uma métrica definida pelo usuário.
// Existe no máximo uma entrada por (usuário, métrica, mês, ano).
type CustomMetricEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MetricID  string    `json:"metric_id"`
	Month     string    `json:"month"`
	Year      int       `json:"year"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Period retorna a chave (mês, ano) da entrada
func (e *CustomMetricEntry) Period() PeriodKey {
	return PeriodKey{Month: e.Month, Year: e.Year}
}

// SaveCustomValueRequest é o payload de gravação do valor mensal de uma
// métrica custom
type SaveCustomValueRequest struct {
	Month string  `json:"month"`
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}
