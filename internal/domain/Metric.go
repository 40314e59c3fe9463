package domain

import (
	"time"
)

// MetricUnit é a unidade de exibição de uma métrica
type MetricUnit string

const (
	UnitNone     MetricUnit = ""
	UnitCurrency MetricUnit = "currency"
	UnitPercent  MetricUnit = "percent"
	UnitCount    MetricUnit = "count"
)

// SourceKind distingue métricas padrão (slot fixo na entrada mensal) de
// métricas definidas pelo usuário (coleção própria de valores mensais)
type SourceKind string

const (
	SourceBuiltIn SourceKind = "builtin"
	SourceCustom  SourceKind = "custom"
)

// BuiltInField identifica o slot de uma métrica padrão na entrada mensal
type BuiltInField string

const (
	FieldMRR         BuiltInField = "mrr"
	FieldTrialToPaid BuiltInField = "trial_to_paid"
	FieldCustomers   BuiltInField = "customers"
	FieldAverageLTV  BuiltInField = "average_ltv"
	FieldNewTrials   BuiltInField = "new_trials"
	FieldChurnRate   BuiltInField = "churn_rate"
)

// ValueFrom extrai o valor do slot correspondente de uma entrada mensal
func (f BuiltInField) ValueFrom(entry *MonthlyEntry) float64 {
	switch f {
	case FieldMRR:
		return entry.MRR
	case FieldTrialToPaid:
		return entry.TrialToPaid
	case FieldCustomers:
		return entry.Customers
	case FieldAverageLTV:
		return entry.AverageLTV
	case FieldNewTrials:
		return entry.NewTrials
	case FieldChurnRate:
		return entry.ChurnRate
	}
	return 0
}

// MetricSource é a variante etiquetada que determina de onde o engine de
// agregação lê os valores de uma métrica. É fixada na criação da definição
// e nunca re-derivada da lista de ids reservados durante o recompute.
type MetricSource struct {
	Kind  SourceKind   `json:"kind"`
	Field BuiltInField `json:"field,omitempty"` // preenchido apenas quando Kind == builtin
}

// SeriesPoint é um ponto (rótulo de período, valor) da série derivada
type SeriesPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// MetricDefinition representa um KPI acompanhado no dashboard.
// CurrentValue, Series e ChangePercent são campos derivados: gravados
// exclusivamente pelo engine de agregação, nunca editáveis pelo usuário.
type MetricDefinition struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Title         string        `json:"title"`
	Unit          MetricUnit    `json:"unit,omitempty"`
	Color         string        `json:"color,omitempty"`
	Source        MetricSource  `json:"source"`
	DisplayOrder  *int          `json:"display_order,omitempty"`
	Goal          *float64      `json:"goal,omitempty"`
	CurrentValue  float64       `json:"current_value"`
	Series        []SeriesPoint `json:"series"`
	ChangePercent float64       `json:"change_percent"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// IsBuiltIn informa se a definição é uma das seis métricas padrão
func (m *MetricDefinition) IsBuiltIn() bool {
	return m.Source.Kind == SourceBuiltIn
}

// builtInSeed descreve uma métrica padrão criada no seed inicial
type builtInSeed struct {
	ID    string
	Title string
	Unit  MetricUnit
	Field BuiltInField
}

var builtInSeeds = []builtInSeed{
	{ID: "mrr", Title: "MRR", Unit: UnitCurrency, Field: FieldMRR},
	{ID: "trial-to-paid", Title: "Trial to Paid", Unit: UnitPercent, Field: FieldTrialToPaid},
	{ID: "customers", Title: "Customers", Unit: UnitCount, Field: FieldCustomers},
	{ID: "average-ltv", Title: "Average LTV", Unit: UnitCurrency, Field: FieldAverageLTV},
	{ID: "new-trials", Title: "New Trials", Unit: UnitCount, Field: FieldNewTrials},
	{ID: "churn-rate", Title: "Churn Rate", Unit: UnitPercent, Field: FieldChurnRate},
}

// DefaultMetricColor é a cor aplicada aos cards criados pelo sistema
const DefaultMetricColor = "#3b82f6"

// IsReservedMetricID informa se o id pertence a uma das métricas padrão
func IsReservedMetricID(id string) bool {
	for _, seed := range builtInSeeds {
		if seed.ID == id {
			return true
		}
	}
	return false
}

// BuiltInDefinitions monta as seis definições padrão para um usuário,
// com série vazia e ordem de exibição sequencial
func BuiltInDefinitions(userID string) []*MetricDefinition {
	defs := make([]*MetricDefinition, 0, len(builtInSeeds))
	for i, seed := range builtInSeeds {
		order := i
		defs = append(defs, &MetricDefinition{
			ID:     seed.ID,
			UserID: userID,
			Title:  seed.Title,
			Unit:   seed.Unit,
			Color:  DefaultMetricColor,
			Source: MetricSource{
				Kind:  SourceBuiltIn,
				Field: seed.Field,
			},
			DisplayOrder: &order,
			Series:       []SeriesPoint{},
		})
	}
	return defs
}

// SortMetricsByDisplayOrder ordena as definições pela posição dos cards;
// definições sem ordem vão para o final
func SortMetricsByDisplayOrder(defs []*MetricDefinition) {
	for i := 1; i < len(defs); i++ {
		for j := i; j > 0 && metricOrderLess(defs[j], defs[j-1]); j-- {
			defs[j], defs[j-1] = defs[j-1], defs[j]
		}
	}
}

func metricOrderLess(a, b *MetricDefinition) bool {
	if a.DisplayOrder == nil {
		return false
	}
	if b.DisplayOrder == nil {
		return true
	}
	return *a.DisplayOrder < *b.DisplayOrder
}

// AddMetricRequest é o payload de criação de uma métrica custom
type AddMetricRequest struct {
	Title string     `json:"title"`
	Unit  MetricUnit `json:"unit,omitempty"`
	Color string     `json:"color,omitempty"`
}

// UpdateMetricRequest é o payload de edição parcial de uma métrica.
// Campos nil não são persistidos; a meta é alterada apenas via SetGoal.
type UpdateMetricRequest struct {
	Title *string     `json:"title"`
	Unit  *MetricUnit `json:"unit"`
	Color *string     `json:"color"`
}

// MetricResponse é a projeção de uma definição para a API, com o valor
// corrente já formatado para o card
type MetricResponse struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Unit           MetricUnit    `json:"unit,omitempty"`
	Color          string        `json:"color,omitempty"`
	Kind           SourceKind    `json:"kind"`
	DisplayOrder   *int          `json:"display_order,omitempty"`
	Goal           *float64      `json:"goal,omitempty"`
	CurrentValue   float64       `json:"current_value"`
	FormattedValue string        `json:"formatted_value"`
	Series         []SeriesPoint `json:"series"`
	ChangePercent  float64       `json:"change_percent"`
}
