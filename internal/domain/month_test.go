package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		name     string
		month    string
		expected int
	}{
		{name: "Janeiro é o índice zero", month: "January", expected: 0},
		{name: "Dezembro é o último índice", month: "December", expected: 11},
		{name: "Mês abreviado não é canônico", month: "Jan", expected: -1},
		{name: "Mês em minúsculas não é canônico", month: "january", expected: -1},
		{name: "String vazia é inválida", month: "", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthIndex(tt.month))
		})
	}
}

func TestPeriodKey_Before(t *testing.T) {
	tests := []struct {
		name     string
		a        PeriodKey
		b        PeriodKey
		expected bool
	}{
		{
			name:     "Ano menor vem antes independente do mês",
			a:        PeriodKey{Month: "December", Year: 2024},
			b:        PeriodKey{Month: "January", Year: 2025},
			expected: true,
		},
		{
			name:     "Mesmo ano ordena pelo índice do mês, não pela string",
			a:        PeriodKey{Month: "April", Year: 2025},
			b:        PeriodKey{Month: "August", Year: 2025},
			expected: true,
		},
		{
			name:     "Agosto não antecede Abril apesar da ordem alfabética",
			a:        PeriodKey{Month: "August", Year: 2025},
			b:        PeriodKey{Month: "April", Year: 2025},
			expected: false,
		},
		{
			name:     "Período igual não antecede a si mesmo",
			a:        PeriodKey{Month: "May", Year: 2025},
			b:        PeriodKey{Month: "May", Year: 2025},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Before(tt.b))
		})
	}
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "October 2025", PeriodLabel("October", 2025))
	assert.Equal(t, "January 2024", PeriodLabel("January", 2024))
}

func TestSortMetricsByDisplayOrder(t *testing.T) {
	one, two, five := 1, 2, 5

	defs := []*MetricDefinition{
		{ID: "c", DisplayOrder: &five},
		{ID: "sem-ordem"},
		{ID: "a", DisplayOrder: &one},
		{ID: "b", DisplayOrder: &two},
	}

	SortMetricsByDisplayOrder(defs)

	assert.Equal(t, "a", defs[0].ID)
	assert.Equal(t, "b", defs[1].ID)
	assert.Equal(t, "c", defs[2].ID)
	// Definições sem ordem vão para o final
	assert.Equal(t, "sem-ordem", defs[3].ID)
}

func TestIsReservedMetricID(t *testing.T) {
	for _, id := range []string{"mrr", "trial-to-paid", "customers", "average-ltv", "new-trials", "churn-rate"} {
		assert.True(t, IsReservedMetricID(id), id)
	}

	assert.False(t, IsReservedMetricID("minha-metrica"))
	assert.False(t, IsReservedMetricID("MRR"))
}

func TestBuiltInDefinitions(t *testing.T) {
	defs := BuiltInDefinitions("user-1")

	assert.Len(t, defs, 6)
	for i, def := range defs {
		assert.Equal(t, "user-1", def.UserID)
		assert.Equal(t, SourceBuiltIn, def.Source.Kind)
		assert.NotEmpty(t, def.Source.Field)
		assert.NotNil(t, def.DisplayOrder)
		assert.Equal(t, i, *def.DisplayOrder)
		assert.NotNil(t, def.Series)
		assert.Empty(t, def.Series)
	}
}
