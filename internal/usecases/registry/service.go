package registry

import (
	"fmt"
	"math"

	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/internal/watch"
	"github.com/kpiboard/metrics-dashboard-api/pkg/apiErrors"
	"github.com/kpiboard/metrics-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// MetricRegistry é a superfície de CRUD das definições de métricas, com
// gestão de ordenação dos cards e metas
type MetricRegistry interface {
	ListMetrics(userID string) ([]*domain.MetricDefinition, error)
	AddMetric(userID string, request *domain.AddMetricRequest) (*domain.MetricDefinition, error)
	UpdateMetric(userID, metricID string, request *domain.UpdateMetricRequest) error
	DeleteMetric(userID, metricID string) error
	Reorder(userID string, orderedIDs []string) error
	SetGoal(userID, metricID string, goal *float64) error
	DeleteAll(userID string) error
}

type Service struct {
	metricRepo  repository.MetricDefinitionRepository
	monthlyRepo repository.MonthlyEntryRepository
	customRepo  repository.CustomMetricEntryRepository
	publisher   watch.Publisher
}

func NewService(
	metricRepo repository.MetricDefinitionRepository,
	monthlyRepo repository.MonthlyEntryRepository,
	customRepo repository.CustomMetricEntryRepository,
	publisher watch.Publisher,
) MetricRegistry {
	return &Service{
		metricRepo:  metricRepo,
		monthlyRepo: monthlyRepo,
		customRepo:  customRepo,
		publisher:   publisher,
	}
}

func (s *Service) ListMetrics(userID string) ([]*domain.MetricDefinition, error) {
	defs, err := s.metricRepo.ListByUser(userID)
	if err != nil {
		return nil, NewRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar métricas")
	}

	domain.SortMetricsByDisplayOrder(defs)
	return defs, nil
}

// AddMetric cria uma métrica custom com série vazia e ordem de exibição
// logo após a última existente
func (s *Service) AddMetric(userID string, request *domain.AddMetricRequest) (*domain.MetricDefinition, error) {
	if request == nil || request.Title == "" {
		return nil, NewRegistryError(ErrTitleRequired, apiErrors.ErrMissingRequiredData, "Informe um título para a métrica")
	}

	if !validUnit(request.Unit) {
		return nil, NewRegistryError(ErrInvalidUnit, apiErrors.ErrInvalidFormat, fmt.Sprintf("Unidade desconhecida: %q", request.Unit))
	}

	defs, err := s.metricRepo.ListByUser(userID)
	if err != nil {
		return nil, NewRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar métricas existentes")
	}

	metricID, err := utils.GenerateID()
	if err != nil {
		return nil, NewRegistryError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único")
	}

	color := request.Color
	if color == "" {
		color = domain.DefaultMetricColor
	}

	order := nextDisplayOrder(defs)
	def := &domain.MetricDefinition{
		ID:     metricID,
		UserID: userID,
		Title:  request.Title,
		Unit:   request.Unit,
		Color:  color,
		Source: domain.MetricSource{
			Kind: domain.SourceCustom,
		},
		DisplayOrder: &order,
		Series:       []domain.SeriesPoint{},
	}

	if err := s.metricRepo.Create(def); err != nil {
		return nil, NewMetricRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, metricID, "Falha ao criar métrica")
	}

	s.publish(userID)
	return def, nil
}

func (s *Service) UpdateMetric(userID, metricID string, request *domain.UpdateMetricRequest) error {
	if request == nil || (request.Title == nil && request.Unit == nil && request.Color == nil) {
		return nil
	}

	if request.Title != nil && *request.Title == "" {
		return NewMetricRegistryError(ErrTitleRequired, apiErrors.ErrMissingRequiredData, metricID, "Título não pode ficar vazio")
	}

	if request.Unit != nil && !validUnit(*request.Unit) {
		return NewMetricRegistryError(ErrInvalidUnit, apiErrors.ErrInvalidFormat, metricID, fmt.Sprintf("Unidade desconhecida: %q", *request.Unit))
	}

	def, err := s.metricRepo.GetByID(userID, metricID)
	if err != nil {
		return NewMetricRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, metricID, "Falha ao buscar métrica")
	}
	if def == nil {
		return NewMetricRegistryError(ErrMetricNotFound, apiErrors.ErrMetricNotFound, metricID, "")
	}

	if err := s.metricRepo.Update(userID, metricID, request); err != nil {
		return NewMetricRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, metricID, "Falha ao atualizar métrica")
	}

	s.publish(userID)
	return nil
}

// DeleteMetric exclui uma métrica custom em duas fases: primeiro o lote de
// entradas custom dependentes (batch atômico), depois a definição. As duas
// fases não são atômicas entre si; uma falha entre elas deixa apenas
// entradas já removidas, nunca entradas órfãs.
func (s *Service) DeleteMetric(userID, metricID string) error {
	def, err := s.metricRepo.GetByID(userID, metricID)
	if err != nil {
		return NewMetricRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, metricID, "Falha ao buscar métrica")
	}
	if def == nil {
		return NewMetricRegistryError(ErrMetricNotFound, apiErrors.ErrMetricNotFound, metricID, "")
	}

	// O registro também recusa a exclusão de métricas padrão; a camada de
	// apresentação não é a única barreira
	if def.IsBuiltIn() {
		return NewMetricRegistryError(ErrBuiltInProtected, apiErrors.ErrBuiltInProtected, metricID, "")
	}

	entryIDs, err := s.customRepo.ListIDsByMetric(userID, metricID)
	if err != nil {
		return NewMetricRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, metricID, "Falha ao coletar entradas dependentes")
	}

	if err := s.customRepo.BatchDelete(entryIDs); err != nil {
		return NewMetricRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, metricID, "Falha ao excluir entradas dependentes")
	}

	if err := s.metricRepo.Delete(userID, metricID); err != nil {
		return NewMetricRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, metricID, "Falha ao excluir métrica")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"metric_id":       metricID,
		"entries_removed": len(entryIDs),
	}).Info("Métrica custom excluída com cascata de entradas")

	s.publish(userID)
	return nil
}

// Reorder regrava a ordem de exibição de cada definição conforme a posição
// na lista. São escritas independentes por documento, sem garantia de
// atomicidade entre elas; falhas não interrompem as demais posições.
func (s *Service) Reorder(userID string, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return NewRegistryError(ErrEmptyOrder, apiErrors.ErrInvalidRequest, "Informe a lista de métricas ordenada")
	}

	failures := 0
	for position, metricID := range orderedIDs {
		if err := s.metricRepo.UpdateOrder(userID, metricID, position); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id":   userID,
				"metric_id": metricID,
				"position":  position,
			}).Error("Erro ao gravar posição da métrica")
			failures++
			continue
		}
	}

	if failures > 0 {
		return NewRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation,
			fmt.Sprintf("%d de %d posições não foram gravadas", failures, len(orderedIDs)))
	}

	s.publish(userID)
	return nil
}

// SetGoal grava a meta quando o valor é um número finito maior que zero;
// qualquer outra entrada remove a meta, persistindo a ausência explícita
func (s *Service) SetGoal(userID, metricID string, goal *float64) error {
	def, err := s.metricRepo.GetByID(userID, metricID)
	if err != nil {
		return NewMetricRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, metricID, "Falha ao buscar métrica")
	}
	if def == nil {
		return NewMetricRegistryError(ErrMetricNotFound, apiErrors.ErrMetricNotFound, metricID, "")
	}

	if goal != nil {
		value := *goal
		if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
			goal = nil
		}
	}

	if err := s.metricRepo.SetGoal(userID, metricID, goal); err != nil {
		return NewMetricRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, metricID, "Falha ao gravar meta")
	}

	s.publish(userID)
	return nil
}

// DeleteAll apaga tudo que pertence ao usuário: entradas custom, entradas
// mensais e por fim as definições. Semântica única, sempre com escopo de
// usuário.
func (s *Service) DeleteAll(userID string) error {
	if err := s.customRepo.DeleteAllByUser(userID); err != nil {
		return NewRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao excluir entradas custom")
	}

	if err := s.monthlyRepo.DeleteAllByUser(userID); err != nil {
		return NewRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao excluir entradas mensais")
	}

	if err := s.metricRepo.DeleteAllByUser(userID); err != nil {
		return NewRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao excluir definições de métricas")
	}

	logrus.WithField("user_id", userID).Info("Todos os dados do usuário foram excluídos")

	s.publish(userID)
	return nil
}

func (s *Service) publish(userID string) {
	if s.publisher != nil {
		s.publisher.Publish(userID, watch.EventMetrics)
	}
}

func nextDisplayOrder(defs []*domain.MetricDefinition) int {
	next := 0
	for _, def := range defs {
		if def.DisplayOrder != nil && *def.DisplayOrder >= next {
			next = *def.DisplayOrder + 1
		}
	}
	return next
}

func validUnit(unit domain.MetricUnit) bool {
	switch unit {
	case domain.UnitNone, domain.UnitCurrency, domain.UnitPercent, domain.UnitCount:
		return true
	}
	return false
}
