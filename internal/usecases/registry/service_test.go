package registry

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

type registryMocks struct {
	metricRepo  *mocks.MockMetricDefinitionRepository
	monthlyRepo *mocks.MockMonthlyEntryRepository
	customRepo  *mocks.MockCustomMetricEntryRepository
	publisher   *watchmocks.MockPublisher
}

func newRegistryMocks(ctrl *gomock.Controller) (registryMocks, MetricRegistry) {
	m := registryMocks{
		metricRepo:  mocks.NewMockMetricDefinitionRepository(ctrl),
		monthlyRepo: mocks.NewMockMonthlyEntryRepository(ctrl),
		customRepo:  mocks.NewMockCustomMetricEntryRepository(ctrl),
		publisher:   watchmocks.NewMockPublisher(ctrl),
	}

	service := NewService(m.metricRepo, m.monthlyRepo, m.customRepo, m.publisher)
	return m, service
}

func orderPtr(v int) *int { return &v }

func TestAddMetric_OrdemSegueAMaiorExistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	existing := []*domain.MetricDefinition{
		{ID: "a", DisplayOrder: orderPtr(0)},
		{ID: "b", DisplayOrder: orderPtr(4)},
		{ID: "c", DisplayOrder: nil},
	}

	m.metricRepo.EXPECT().ListByUser("user-1").Return(existing, nil)

	var created *domain.MetricDefinition
	m.metricRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(def *domain.MetricDefinition) error {
		created = def
		return nil
	})
	m.publisher.EXPECT().Publish("user-1", watch.EventMetrics)

	def, err := service.AddMetric("user-1", &domain.AddMetricRequest{Title: "NPS", Unit: domain.UnitCount})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, def, created)
	assert.Equal(t, domain.SourceCustom, created.Source.Kind)
	assert.NotNil(t, created.DisplayOrder)
	assert.Equal(t, 5, *created.DisplayOrder)
	assert.Equal(t, domain.DefaultMetricColor, created.Color)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Series)
}

func TestAddMetric_PrimeiraMetricaComecaNaOrdemZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	m.metricRepo.EXPECT().ListByUser("user-1").Return(nil, nil)

	var created *domain.MetricDefinition
	m.metricRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(def *domain.MetricDefinition) error {
		created = def
		return nil
	})
	m.publisher.EXPECT().Publish("user-1", watch.EventMetrics)

	_, err := service.AddMetric("user-1", &domain.AddMetricRequest{Title: "NPS"})

	assert.NoError(t, err)
	assert.Equal(t, 0, *created.DisplayOrder)
}

func TestAddMetric_TituloObrigatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, service := newRegistryMocks(ctrl)

	_, err := service.AddMetric("user-1", &domain.AddMetricRequest{Title: ""})

	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestUpdateMetric_SemCamposEhNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, service := newRegistryMocks(ctrl)

	// Nenhuma chamada de repositório esperada
	err := service.UpdateMetric("user-1", "m1", &domain.UpdateMetricRequest{})

	assert.NoError(t, err)
}

func TestUpdateMetric_MetricaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	title := "Novo título"
	m.metricRepo.EXPECT().GetByID("user-1", "m1").Return(nil, nil)

	err := service.UpdateMetric("user-1", "m1", &domain.UpdateMetricRequest{Title: &title})

	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestDeleteMetric_RecusaMetricaPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	m.metricRepo.EXPECT().GetByID("user-1", "mrr").Return(&domain.MetricDefinition{
		ID:     "mrr",
		Source: domain.MetricSource{Kind: domain.SourceBuiltIn, Field: domain.FieldMRR},
	}, nil)

	err := service.DeleteMetric("user-1", "mrr")

	assert.ErrorIs(t, err, ErrBuiltInProtected)
}

func TestDeleteMetric_CascataAntesDaDefinicao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	m.metricRepo.EXPECT().GetByID("user-1", "nps").Return(&domain.MetricDefinition{
		ID:     "nps",
		Source: domain.MetricSource{Kind: domain.SourceCustom},
	}, nil)

	// As entradas dependentes saem em lote antes da definição
	gomock.InOrder(
		m.customRepo.EXPECT().ListIDsByMetric("user-1", "nps").Return([]string{"e1", "e2"}, nil),
		m.customRepo.EXPECT().BatchDelete([]string{"e1", "e2"}).Return(nil),
		m.metricRepo.EXPECT().Delete("user-1", "nps").Return(nil),
	)
	m.publisher.EXPECT().Publish("user-1", watch.EventMetrics)

	err := service.DeleteMetric("user-1", "nps")

	assert.NoError(t, err)
}

func TestDeleteMetric_FalhaNoLoteNaoExcluiADefinicao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	m.metricRepo.EXPECT().GetByID("user-1", "nps").Return(&domain.MetricDefinition{
		ID:     "nps",
		Source: domain.MetricSource{Kind: domain.SourceCustom},
	}, nil)

	m.customRepo.EXPECT().ListIDsByMetric("user-1", "nps").Return([]string{"e1"}, nil)
	m.customRepo.EXPECT().BatchDelete([]string{"e1"}).Return(errors.New("falha no lote"))
	// metricRepo.Delete nunca é chamado

	err := service.DeleteMetric("user-1", "nps")

	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestReorder_GravaPosicaoPorIndiceDaLista(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	m.metricRepo.EXPECT().UpdateOrder("user-1", "c", 0).Return(nil)
	m.metricRepo.EXPECT().UpdateOrder("user-1", "a", 1).Return(nil)
	m.metricRepo.EXPECT().UpdateOrder("user-1", "b", 2).Return(nil)
	m.publisher.EXPECT().Publish("user-1", watch.EventMetrics)

	err := service.Reorder("user-1", []string{"c", "a", "b"})

	assert.NoError(t, err)
}

func TestReorder_FalhaDeUmaPosicaoNaoInterrompeAsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	m.metricRepo.EXPECT().UpdateOrder("user-1", "a", 0).Return(errors.New("falha"))
	m.metricRepo.EXPECT().UpdateOrder("user-1", "b", 1).Return(nil)

	err := service.Reorder("user-1", []string{"a", "b"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 de 2")
}

func TestReorder_ListaVaziaEhInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, service := newRegistryMocks(ctrl)

	err := service.Reorder("user-1", nil)

	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestSetGoal_ValorPositivoEhGravado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	m.metricRepo.EXPECT().GetByID("user-1", "mrr").Return(&domain.MetricDefinition{ID: "mrr"}, nil)

	goal := 5000.0
	m.metricRepo.EXPECT().SetGoal("user-1", "mrr", gomock.Any()).DoAndReturn(func(_, _ string, g *float64) error {
		assert.NotNil(t, g)
		assert.Equal(t, 5000.0, *g)
		return nil
	})
	m.publisher.EXPECT().Publish("user-1", watch.EventMetrics)

	err := service.SetGoal("user-1", "mrr", &goal)

	assert.NoError(t, err)
}

func TestSetGoal_ValorInvalidoRemoveAMeta(t *testing.T) {
	tests := []struct {
		name string
		goal float64
	}{
		{name: "Zero remove a meta", goal: 0},
		{name: "Negativo remove a meta", goal: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, service := newRegistryMocks(ctrl)

			m.metricRepo.EXPECT().GetByID("user-1", "mrr").Return(&domain.MetricDefinition{ID: "mrr"}, nil)

			// O nil chega ao repositório como NULL explícito
			m.metricRepo.EXPECT().SetGoal("user-1", "mrr", gomock.Nil()).Return(nil)
			m.publisher.EXPECT().Publish("user-1", watch.EventMetrics)

			goal := tt.goal
			err := service.SetGoal("user-1", "mrr", &goal)

			assert.NoError(t, err)
		})
	}
}

func TestDeleteAll_OrdemCustomMensaisDefinicoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newRegistryMocks(ctrl)

	gomock.InOrder(
		m.customRepo.EXPECT().DeleteAllByUser("user-1").Return(nil),
		m.monthlyRepo.EXPECT().DeleteAllByUser("user-1").Return(nil),
		m.metricRepo.EXPECT().DeleteAllByUser("user-1").Return(nil),
	)
	m.publisher.EXPECT().Publish("user-1", watch.EventMetrics)

	err := service.DeleteAll("user-1")

	assert.NoError(t, err)
}
