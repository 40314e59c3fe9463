package entries

import (
	"errors"
	"testing"

	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository/mocks"
	aggmocks "github.com/kpiboard/metrics-dashboard-api/internal/usecases/aggregating/mocks"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/internal/watch"
	watchmocks "github.com/kpiboard/metrics-dashboard-api/internal/watch/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type entryMocks struct {
	monthlyRepo *mocks.MockMonthlyEntryRepository
	customRepo  *mocks.MockCustomMetricEntryRepository
	metricRepo  *mocks.MockMetricDefinitionRepository
	recomputer  *aggmocks.MockRecomputer
	publisher   *watchmocks.MockPublisher
}

func newEntryMocks(ctrl *gomock.Controller) (entryMocks, EntryService) {
	m := entryMocks{
		monthlyRepo: mocks.NewMockMonthlyEntryRepository(ctrl),
		customRepo:  mocks.NewMockCustomMetricEntryRepository(ctrl),
		metricRepo:  mocks.NewMockMetricDefinitionRepository(ctrl),
		recomputer:  aggmocks.NewMockRecomputer(ctrl),
		publisher:   watchmocks.NewMockPublisher(ctrl),
	}

	service := NewService(m.monthlyRepo, m.customRepo, m.metricRepo, m.recomputer, m.publisher)
	return m, service
}

func saveRequest(month string, year int) *domain.SaveMonthlyEntryRequest {
	return &domain.SaveMonthlyEntryRequest{
		Month: month,
		Year:  year,
		MRR:   100,
	}
}

func TestCreateMonthly_PeriodoDuplicadoEhBloqueadoAntesDaEscrita(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newEntryMocks(ctrl)

	m.monthlyRepo.EXPECT().GetByPeriod("user-1", "January", 2025).Return(&domain.MonthlyEntry{
		ID:    "existente",
		Month: "January",
		Year:  2025,
	}, nil)
	// SaveOrUpdate nunca é chamado

	_, err := service.CreateMonthly("user-1", saveRequest("January", 2025))

	assert.ErrorIs(t, err, ErrDuplicatePeriod)
}

func TestCreateMonthly_PeriodoLivreGravaERecalcula(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newEntryMocks(ctrl)

	m.monthlyRepo.EXPECT().GetByPeriod("user-1", "January", 2025).Return(nil, nil)
	m.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(entry *domain.MonthlyEntry) error {
		assert.Equal(t, "user-1", entry.UserID)
		assert.Equal(t, "January", entry.Month)
		assert.Equal(t, 2025, entry.Year)
		assert.Equal(t, 100.0, entry.MRR)
		assert.NotEmpty(t, entry.ID)
		return nil
	})
	m.monthlyRepo.EXPECT().GetByPeriod("user-1", "January", 2025).Return(&domain.MonthlyEntry{
		ID:    "definitivo",
		Month: "January",
		Year:  2025,
		MRR:   100,
	}, nil)

	m.publisher.EXPECT().Publish("user-1", watch.EventMonthlyEntries)
	m.recomputer.EXPECT().RecomputeUser("user-1").Return(nil)

	entry, err := service.CreateMonthly("user-1", saveRequest("January", 2025))

	assert.NoError(t, err)
	assert.Equal(t, "definitivo", entry.ID)
}

func TestCreateMonthly_MesForaDoCanonicoEhInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, service := newEntryMocks(ctrl)

	_, err := service.CreateMonthly("user-1", saveRequest("Jan", 2025))

	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestSaveMonthly_PeriodoExistenteAtualizaNoLugar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newEntryMocks(ctrl)

	// O caminho de edição não verifica duplicidade: o upsert resolve
	m.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	m.monthlyRepo.EXPECT().GetByPeriod("user-1", "January", 2025).Return(&domain.MonthlyEntry{
		ID:    "original",
		Month: "January",
		Year:  2025,
		MRR:   100,
	}, nil)

	m.publisher.EXPECT().Publish("user-1", watch.EventMonthlyEntries)
	m.recomputer.EXPECT().RecomputeUser("user-1").Return(nil)

	entry, err := service.SaveMonthly("user-1", saveRequest("January", 2025))

	assert.NoError(t, err)
	// O id devolvido é o da linha que já existia, não um novo
	assert.Equal(t, "original", entry.ID)
}

func TestSaveMonthly_FalhaDoRecomputeNaoDerrubaAGravacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newEntryMocks(ctrl)

	m.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	m.monthlyRepo.EXPECT().GetByPeriod("user-1", "January", 2025).Return(&domain.MonthlyEntry{ID: "x"}, nil)

	m.publisher.EXPECT().Publish("user-1", watch.EventMonthlyEntries)
	m.recomputer.EXPECT().RecomputeUser("user-1").Return(errors.New("recompute falhou"))

	_, err := service.SaveMonthly("user-1", saveRequest("January", 2025))

	assert.NoError(t, err)
}

func TestDeleteMonthly_EntradaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newEntryMocks(ctrl)

	m.monthlyRepo.EXPECT().GetByID("user-1", "e1").Return(nil, nil)

	err := service.DeleteMonthly("user-1", "e1")

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteMonthly_ExclusaoDisparaRecompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newEntryMocks(ctrl)

	m.monthlyRepo.EXPECT().GetByID("user-1", "e1").Return(&domain.MonthlyEntry{ID: "e1"}, nil)
	m.monthlyRepo.EXPECT().Delete("user-1", "e1").Return(nil)

	// Excluir o único dado de um período zera os cards via recompute
	m.publisher.EXPECT().Publish("user-1", watch.EventMonthlyEntries)
	m.recomputer.EXPECT().RecomputeUser("user-1").Return(nil)

	err := service.DeleteMonthly("user-1", "e1")

	assert.NoError(t, err)
}

func TestSaveCustomValue_MetricaPadraoEhRecusada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newEntryMocks(ctrl)

	m.metricRepo.EXPECT().GetByID("user-1", "mrr").Return(&domain.MetricDefinition{
		ID:     "mrr",
		Source: domain.MetricSource{Kind: domain.SourceBuiltIn, Field: domain.FieldMRR},
	}, nil)

	err := service.SaveCustomValue("user-1", "mrr", &domain.SaveCustomValueRequest{
		Month: "January",
		Year:  2025,
		Value: 10,
	})

	assert.ErrorIs(t, err, ErrNotCustomMetric)
}

func TestSaveCustomValue_MetricaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newEntryMocks(ctrl)

	m.metricRepo.EXPECT().GetByID("user-1", "nps").Return(nil, nil)

	err := service.SaveCustomValue("user-1", "nps", &domain.SaveCustomValueRequest{
		Month: "January",
		Year:  2025,
		Value: 10,
	})

	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestSaveCustomValue_GravaERecalcula(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, service := newEntryMocks(ctrl)

	m.metricRepo.EXPECT().GetByID("user-1", "nps").Return(&domain.MetricDefinition{
		ID:     "nps",
		Source: domain.MetricSource{Kind: domain.SourceCustom},
	}, nil)

	m.customRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(entry *domain.CustomMetricEntry) error {
		assert.Equal(t, "user-1", entry.UserID)
		assert.Equal(t, "nps", entry.MetricID)
		assert.Equal(t, "February", entry.Month)
		assert.Equal(t, 2025, entry.Year)
		assert.Equal(t, 42.0, entry.Value)
		return nil
	})

	m.publisher.EXPECT().Publish("user-1", watch.EventCustomEntries)
	m.recomputer.EXPECT().RecomputeUser("user-1").Return(nil)

	err := service.SaveCustomValue("user-1", "nps", &domain.SaveCustomValueRequest{
		Month: "February",
		Year:  2025,
		Value: 42,
	})

	assert.NoError(t, err)
}
