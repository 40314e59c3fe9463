package entries

import (
	"fmt"

	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/kpiboard/metrics-dashboard-api/internal/watch"
	"github.com/kpiboard/metrics-dashboard-api/pkg/apiErrors"
	"github.com/kpiboard/metrics-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// EntryService gerencia as entradas mensais (padrão e custom). Toda
// mutação dispara o recompute do engine de agregação para o usuário.
type EntryService interface {
	ListMonthly(userID string) ([]*domain.MonthlyEntry, error)
	CreateMonthly(userID string, request *domain.SaveMonthlyEntryRequest) (*domain.MonthlyEntry, error)
	SaveMonthly(userID string, request *domain.SaveMonthlyEntryRequest) (*domain.MonthlyEntry, error)
	DeleteMonthly(userID, entryID string) error
	SaveCustomValue(userID, metricID string, request *domain.SaveCustomValueRequest) error
}

type Service struct {
	monthlyRepo repository.MonthlyEntryRepository
	customRepo  repository.CustomMetricEntryRepository
	metricRepo  repository.MetricDefinitionRepository
	recomputer  aggregating.Recomputer
	publisher   watch.Publisher
}

func NewService(
	monthlyRepo repository.MonthlyEntryRepository,
	customRepo repository.CustomMetricEntryRepository,
	metricRepo repository.MetricDefinitionRepository,
	recomputer aggregating.Recomputer,
	publisher watch.Publisher,
) EntryService {
	return &Service{
		monthlyRepo: monthlyRepo,
		customRepo:  customRepo,
		metricRepo:  metricRepo,
		recomputer:  recomputer,
		publisher:   publisher,
	}
}

func (s *Service) ListMonthly(userID string) ([]*domain.MonthlyEntry, error) {
	entries, err := s.monthlyRepo.ListByUser(userID)
	if err != nil {
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar entradas mensais")
	}
	return entries, nil
}

// CreateMonthly é o caminho explícito de criação: se já existe entrada
// para a chave (mês, ano), a gravação é bloqueada antes de qualquer
// escrita e o erro de validação volta para o usuário
func (s *Service) CreateMonthly(userID string, request *domain.SaveMonthlyEntryRequest) (*domain.MonthlyEntry, error) {
	if err := validatePeriod(request); err != nil {
		return nil, err
	}

	existing, err := s.monthlyRepo.GetByPeriod(userID, request.Month, request.Year)
	if err != nil {
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar período existente")
	}
	if existing != nil {
		return nil, NewEntryError(ErrDuplicatePeriod, apiErrors.ErrDuplicatePeriod,
			fmt.Sprintf("Já existe entrada para %s", domain.PeriodLabel(request.Month, request.Year)))
	}

	return s.upsertMonthly(userID, request)
}

// SaveMonthly é o caminho de edição: upsert pela chave (mês, ano). Salvar
// um período existente atualiza o registro no lugar; o store mantém
// exatamente uma entrada por chave.
func (s *Service) SaveMonthly(userID string, request *domain.SaveMonthlyEntryRequest) (*domain.MonthlyEntry, error) {
	if err := validatePeriod(request); err != nil {
		return nil, err
	}

	return s.upsertMonthly(userID, request)
}

func (s *Service) upsertMonthly(userID string, request *domain.SaveMonthlyEntryRequest) (*domain.MonthlyEntry, error) {
	entryID, err := utils.GenerateID()
	if err != nil {
		return nil, NewEntryError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único")
	}

	entry := &domain.MonthlyEntry{
		ID:          entryID,
		UserID:      userID,
		Month:       request.Month,
		Year:        request.Year,
		MRR:         request.MRR,
		TrialToPaid: request.TrialToPaid,
		Customers:   request.Customers,
		AverageLTV:  request.AverageLTV,
		NewTrials:   request.NewTrials,
		ChurnRate:   request.ChurnRate,
	}

	if err := s.monthlyRepo.SaveOrUpdate(entry); err != nil {
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar entrada mensal")
	}

	// O upsert pode ter atualizado uma linha existente; relê pela chave
	// para devolver o registro com o id definitivo
	saved, err := s.monthlyRepo.GetByPeriod(userID, request.Month, request.Year)
	if err != nil || saved == nil {
		saved = entry
	}

	s.afterMutation(userID, watch.EventMonthlyEntries)
	return saved, nil
}

func (s *Service) DeleteMonthly(userID, entryID string) error {
	entry, err := s.monthlyRepo.GetByID(userID, entryID)
	if err != nil {
		return NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar entrada")
	}
	if entry == nil {
		return NewEntryError(ErrEntryNotFound, apiErrors.ErrInvalidRequest, "")
	}

	if err := s.monthlyRepo.Delete(userID, entryID); err != nil {
		return NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao excluir entrada")
	}

	s.afterMutation(userID, watch.EventMonthlyEntries)
	return nil
}

// SaveCustomValue grava o valor mensal de uma métrica custom com upsert
// pela chave (usuário, métrica, mês, ano)
func (s *Service) SaveCustomValue(userID, metricID string, request *domain.SaveCustomValueRequest) error {
	if request == nil || !domain.IsValidMonth(request.Month) {
		return NewEntryError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "Use o nome canônico do mês")
	}
	if request.Year < 2000 || request.Year > 2100 {
		return NewEntryError(ErrInvalidYear, apiErrors.ErrInvalidFormat, "Ano fora do intervalo aceito")
	}

	def, err := s.metricRepo.GetByID(userID, metricID)
	if err != nil {
		return NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar métrica")
	}
	if def == nil {
		return NewEntryError(ErrMetricNotFound, apiErrors.ErrMetricNotFound, "")
	}
	if def.IsBuiltIn() {
		return NewEntryError(ErrNotCustomMetric, apiErrors.ErrInvalidRequest,
			"Métricas padrão são preenchidas pela entrada mensal")
	}

	entryID, err := utils.GenerateID()
	if err != nil {
		return NewEntryError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único")
	}

	entry := &domain.CustomMetricEntry{
		ID:       entryID,
		UserID:   userID,
		MetricID: metricID,
		Month:    request.Month,
		Year:     request.Year,
		Value:    request.Value,
	}

	if err := s.customRepo.SaveOrUpdate(entry); err != nil {
		return NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar valor da métrica")
	}

	s.afterMutation(userID, watch.EventCustomEntries)
	return nil
}

// afterMutation notifica os assinantes e dispara o recompute. A falha do
// recompute não derruba a gravação que o originou: fica registrada e a
// reconciliação periódica corrige o atraso.
func (s *Service) afterMutation(userID string, eventType watch.EventType) {
	if s.publisher != nil {
		s.publisher.Publish(userID, eventType)
	}

	if err := s.recomputer.RecomputeUser(userID); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("Recompute após mutação falhou")
	}
}

func validatePeriod(request *domain.SaveMonthlyEntryRequest) error {
	if request == nil || !domain.IsValidMonth(request.Month) {
		return NewEntryError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "Use o nome canônico do mês")
	}
	if request.Year < 2000 || request.Year > 2100 {
		return NewEntryError(ErrInvalidYear, apiErrors.ErrInvalidFormat, "Ano fora do intervalo aceito")
	}
	return nil
}
