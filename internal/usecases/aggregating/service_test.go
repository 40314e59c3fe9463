package aggregating

import (
	"errors"
	"testing"

	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository/mocks"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/internal/watch"
	watchmocks "github.com/kpiboard/metrics-dashboard-api/internal/watch/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func builtInDef(id string, field domain.BuiltInField) *domain.MetricDefinition {
	return &domain.MetricDefinition{
		ID:     id,
		UserID: "user-1",
		Source: domain.MetricSource{Kind: domain.SourceBuiltIn, Field: field},
	}
}

func customDef(id string) *domain.MetricDefinition {
	return &domain.MetricDefinition{
		ID:     id,
		UserID: "user-1",
		Source: domain.MetricSource{Kind: domain.SourceCustom},
	}
}

func monthlyEntry(month string, year int, mrr float64) *domain.MonthlyEntry {
	return &domain.MonthlyEntry{
		ID:     "e-" + month,
		UserID: "user-1",
		Month:  month,
		Year:   year,
		MRR:    mrr,
	}
}

func derivedByID(results []DerivedMetrics) map[string]DerivedMetrics {
	out := make(map[string]DerivedMetrics, len(results))
	for _, r := range results {
		out[r.MetricID] = r
	}
	return out
}

func TestComputeAll_VariacaoEntreDoisUltimosPontos(t *testing.T) {
	defs := []*domain.MetricDefinition{builtInDef("mrr", domain.FieldMRR)}
	entries := []*domain.MonthlyEntry{
		monthlyEntry("January", 2025, 100),
		monthlyEntry("February", 2025, 150),
	}

	results := ComputeAll(defs, entries, nil)
	mrr := derivedByID(results)["mrr"]

	assert.Len(t, mrr.Series, 2)
	assert.Equal(t, "January 2025", mrr.Series[0].Period)
	assert.Equal(t, "February 2025", mrr.Series[1].Period)
	assert.Equal(t, 150.0, mrr.CurrentValue)
	assert.Equal(t, 50.0, mrr.ChangePercent)
}

func TestComputeAll_ValorZeroFicaForaDaSerie(t *testing.T) {
	// Janeiro com MRR zero significa "sem dado"; a série tem um ponto só e
	// a variação é zero, nunca uma divisão por zero
	defs := []*domain.MetricDefinition{builtInDef("mrr", domain.FieldMRR)}
	entries := []*domain.MonthlyEntry{
		monthlyEntry("January", 2025, 0),
		monthlyEntry("February", 2025, 200),
	}

	results := ComputeAll(defs, entries, nil)
	mrr := derivedByID(results)["mrr"]

	assert.Len(t, mrr.Series, 1)
	assert.Equal(t, "February 2025", mrr.Series[0].Period)
	assert.Equal(t, 200.0, mrr.CurrentValue)
	assert.Equal(t, 0.0, mrr.ChangePercent)
}

func TestComputeAll_OrdenacaoCronologicaPorAnoEMes(t *testing.T) {
	// Entradas fora de ordem, cruzando anos; a série sai em ordem
	// calendário, nunca alfabética
	defs := []*domain.MetricDefinition{builtInDef("mrr", domain.FieldMRR)}
	entries := []*domain.MonthlyEntry{
		monthlyEntry("August", 2025, 300),
		monthlyEntry("December", 2024, 100),
		monthlyEntry("April", 2025, 200),
	}

	results := ComputeAll(defs, entries, nil)
	mrr := derivedByID(results)["mrr"]

	assert.Equal(t, []string{"December 2024", "April 2025", "August 2025"}, []string{
		mrr.Series[0].Period,
		mrr.Series[1].Period,
		mrr.Series[2].Period,
	})
	assert.Equal(t, 300.0, mrr.CurrentValue)
	assert.Equal(t, 50.0, mrr.ChangePercent)
}

func TestComputeAll_PeriodoDuplicadoRetemUmaEntrada(t *testing.T) {
	defs := []*domain.MetricDefinition{builtInDef("mrr", domain.FieldMRR)}

	dup := monthlyEntry("January", 2025, 999)
	dup.ID = "e-dup"
	entries := []*domain.MonthlyEntry{
		monthlyEntry("January", 2025, 100),
		dup,
		monthlyEntry("February", 2025, 150),
	}

	results := ComputeAll(defs, entries, nil)
	mrr := derivedByID(results)["mrr"]

	// Retém a primeira após a ordenação estável; a duplicata some
	assert.Len(t, mrr.Series, 2)
	assert.Equal(t, 100.0, mrr.Series[0].Value)
}

func TestComputeAll_SemEntradasZeraOsCampos(t *testing.T) {
	defs := []*domain.MetricDefinition{
		builtInDef("mrr", domain.FieldMRR),
		customDef("minha-metrica"),
	}

	results := ComputeAll(defs, nil, nil)

	for _, r := range results {
		assert.Equal(t, 0.0, r.CurrentValue, r.MetricID)
		assert.Equal(t, 0.0, r.ChangePercent, r.MetricID)
		assert.Empty(t, r.Series, r.MetricID)
	}
}

func TestComputeAll_MetricaCustomLeDaPropriaColecao(t *testing.T) {
	defs := []*domain.MetricDefinition{
		builtInDef("mrr", domain.FieldMRR),
		customDef("nps"),
	}
	entries := []*domain.MonthlyEntry{monthlyEntry("January", 2025, 100)}
	customEntries := []*domain.CustomMetricEntry{
		{ID: "c1", UserID: "user-1", MetricID: "nps", Month: "January", Year: 2025, Value: 40},
		{ID: "c2", UserID: "user-1", MetricID: "nps", Month: "February", Year: 2025, Value: 60},
		{ID: "c3", UserID: "user-1", MetricID: "outra", Month: "February", Year: 2025, Value: 5},
	}

	results := ComputeAll(defs, entries, customEntries)
	byID := derivedByID(results)

	nps := byID["nps"]
	assert.Len(t, nps.Series, 2)
	assert.Equal(t, 60.0, nps.CurrentValue)
	assert.Equal(t, 50.0, nps.ChangePercent)

	// A métrica padrão não enxerga as entradas custom
	assert.Len(t, byID["mrr"].Series, 1)
}

func TestComputeAll_RotaDeLeituraVemDaVarianteGravada(t *testing.T) {
	// Definição custom cujo id coincide com um id reservado: a rota de
	// leitura segue a variante da definição, não a lista de ids
	defs := []*domain.MetricDefinition{customDef("mrr")}
	entries := []*domain.MonthlyEntry{monthlyEntry("January", 2025, 100)}
	customEntries := []*domain.CustomMetricEntry{
		{ID: "c1", UserID: "user-1", MetricID: "mrr", Month: "March", Year: 2025, Value: 7},
	}

	results := ComputeAll(defs, entries, customEntries)
	mrr := derivedByID(results)["mrr"]

	assert.Len(t, mrr.Series, 1)
	assert.Equal(t, "March 2025", mrr.Series[0].Period)
	assert.Equal(t, 7.0, mrr.CurrentValue)
}

func TestRecomputeUser_GravaTodasAsDefinicoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)
	monthlyRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
	customRepo := mocks.NewMockCustomMetricEntryRepository(ctrl)
	publisher := watchmocks.NewMockPublisher(ctrl)

	defs := []*domain.MetricDefinition{
		builtInDef("mrr", domain.FieldMRR),
		customDef("nps"),
	}

	metricRepo.EXPECT().ListByUser("user-1").Return(defs, nil)
	monthlyRepo.EXPECT().ListByUser("user-1").Return([]*domain.MonthlyEntry{
		monthlyEntry("January", 2025, 100),
	}, nil)
	customRepo.EXPECT().ListByUser("user-1").Return(nil, nil)

	metricRepo.EXPECT().UpdateDerived("user-1", "mrr", 100.0, gomock.Any(), 0.0).Return(nil)
	metricRepo.EXPECT().UpdateDerived("user-1", "nps", 0.0, gomock.Any(), 0.0).Return(nil)

	publisher.EXPECT().Publish("user-1", watch.EventMetrics)

	service := NewService(metricRepo, monthlyRepo, customRepo, publisher)
	err := service.RecomputeUser("user-1")

	assert.NoError(t, err)
}

func TestRecomputeUser_FalhaDeUmaMetricaNaoInterrompeAsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)
	monthlyRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
	customRepo := mocks.NewMockCustomMetricEntryRepository(ctrl)
	publisher := watchmocks.NewMockPublisher(ctrl)

	defs := []*domain.MetricDefinition{
		builtInDef("mrr", domain.FieldMRR),
		builtInDef("customers", domain.FieldCustomers),
	}

	metricRepo.EXPECT().ListByUser("user-1").Return(defs, nil)
	monthlyRepo.EXPECT().ListByUser("user-1").Return(nil, nil)
	customRepo.EXPECT().ListByUser("user-1").Return(nil, nil)

	metricRepo.EXPECT().
		UpdateDerived("user-1", "mrr", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("falha de escrita"))
	// A segunda métrica ainda é gravada
	metricRepo.EXPECT().
		UpdateDerived("user-1", "customers", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	publisher.EXPECT().Publish("user-1", watch.EventMetrics)

	service := NewService(metricRepo, monthlyRepo, customRepo, publisher)
	err := service.RecomputeUser("user-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 de 2")
}

func TestRecomputeUser_SemDefinicoesNaoFazNada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)
	monthlyRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
	customRepo := mocks.NewMockCustomMetricEntryRepository(ctrl)

	metricRepo.EXPECT().ListByUser("user-1").Return(nil, nil)

	service := NewService(metricRepo, monthlyRepo, customRepo, nil)
	err := service.RecomputeUser("user-1")

	assert.NoError(t, err)
}
