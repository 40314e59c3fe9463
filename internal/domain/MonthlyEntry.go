package domain

import "time"

// MonthlyEntry é o registro mensal dos seis slots das métricas padrão.
// Existe no máximo uma entrada por (usuário, mês, ano).
type MonthlyEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Month       string    `json:"month"` // Nome canônico do mês, ex: "October"
	Year        int       `json:"year"`
	MRR         float64   `json:"mrr"`
	TrialToPaid float64   `json:"trial_to_paid"`
	Customers   float64   `json:"customers"`
	AverageLTV  float64   `json:"average_ltv"`
	NewTrials   float64   `json:"new_trials"`
	ChurnRate   float64   `json:"churn_rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Period retorna a chave (mês, ano) da entrada
func (e *MonthlyEntry) Period() PeriodKey {
	return PeriodKey{Month: e.Month, Year: e.Year}
}

// SaveMonthlyEntryRequest é o payload de gravação de uma entrada mensal
type SaveMonthlyEntryRequest struct {
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	MRR         float64 `json:"mrr"`
	TrialToPaid float64 `json:"trial_to_paid"`
	Customers   float64 `json:"customers"`
	AverageLTV  float64 `json:"average_ltv"`
	NewTrials   float64 `json:"new_trials"`
	ChurnRate   float64 `json:"churn_rate"`
}
