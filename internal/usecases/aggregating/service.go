package aggregating

import (
	"fmt"
	"sort"

	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/internal/watch"
	"github.com/kpiboard/metrics-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Recomputer recalcula os campos derivados de todas as métricas de um
// usuário a partir do snapshot completo das entradas
type Recomputer interface {
	RecomputeUser(userID string) error
}

// DerivedMetrics é o trio derivado calculado para uma definição
type DerivedMetrics struct {
	MetricID      string
	CurrentValue  float64
	Series        []domain.SeriesPoint
	ChangePercent float64
}

// Service é o engine de agregação: lê o conjunto completo de entradas
// (padrão e custom) do usuário e grava de volta valor corrente, série e
// percentual de variação de cada definição
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
) *Service {
	return &Service{
		metricRepo:  metricRepo,
		monthlyRepo: monthlyRepo,
		customRepo:  customRepo,
		publisher:   publisher,
	}
}

// RecomputeUser recalcula e persiste o trio derivado de cada métrica do
// usuário. Toda definição recebe escrita — inclusive as sem pontos, que
// são zeradas explicitamente para que excluir o único dado de um período
// limpe o card em vez de reter estado velho.
//
// As escritas por métrica são requisições independentes: a falha de uma
// não interrompe as demais. Um leitor pode observar o estado no meio do
// recompute; a subscription entrega o snapshot consistente seguinte.
func (s *Service) RecomputeUser(userID string) error {
	defs, err := s.metricRepo.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("erro ao listar definições de métricas: %w", err)
	}

	if len(defs) == 0 {
		return nil
	}

	entries, err := s.monthlyRepo.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("erro ao listar entradas mensais: %w", err)
	}

	customEntries, err := s.customRepo.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("erro ao listar entradas custom: %w", err)
	}

	results := ComputeAll(defs, entries, customEntries)

	failures := 0
	for _, result := range results {
		err := s.metricRepo.UpdateDerived(
			userID,
			result.MetricID,
			result.CurrentValue,
			result.Series,
			result.ChangePercent,
		)
		if err != nil {
			// Loop best-effort: registra e segue para a próxima métrica
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id":   userID,
				"metric_id": result.MetricID,
			}).Error("Erro ao gravar campos derivados da métrica")
			failures++
			continue
		}
	}

	if s.publisher != nil {
		s.publisher.Publish(userID, watch.EventMetrics)
	}

	if failures > 0 {
		return fmt.Errorf("recompute parcial: %d de %d métricas não foram gravadas", failures, len(results))
	}

	return nil
}

// ComputeAll calcula o trio derivado de cada definição a partir do
// snapshot completo das duas coleções de entradas. Função pura; a rota de
// leitura (slot fixo ou coleção custom) vem da variante gravada na
// definição, nunca de uma lista de ids reservados.
func ComputeAll(
	defs []*domain.MetricDefinition,
	entries []*domain.MonthlyEntry,
	customEntries []*domain.CustomMetricEntry,
) []DerivedMetrics {
	sortedEntries := sortAndDedupeMonthly(entries)

	customByMetric := make(map[string][]*domain.CustomMetricEntry)
	for _, entry := range customEntries {
		customByMetric[entry.MetricID] = append(customByMetric[entry.MetricID], entry)
	}

	results := make([]DerivedMetrics, 0, len(defs))
	for _, def := range defs {
		var series []domain.SeriesPoint

		switch def.Source.Kind {
		case domain.SourceBuiltIn:
			series = buildBuiltInSeries(sortedEntries, def.Source.Field)
		default:
			series = buildCustomSeries(customByMetric[def.ID])
		}

		results = append(results, DerivedMetrics{
			MetricID:      def.ID,
			CurrentValue:  currentValue(series),
			Series:        series,
			ChangePercent: changePercent(series),
		})
	}

	return results
}

// sortAndDedupeMonthly ordena as entradas por (ano, mês canônico) e
// retém uma única entrada por período: a primeira encontrada após a
// ordenação, para que o resultado seja determinístico mesmo diante da
// anomalia de chaves duplicadas no store
func sortAndDedupeMonthly(entries []*domain.MonthlyEntry) []*domain.MonthlyEntry {
	sorted := make([]*domain.MonthlyEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Period().Before(sorted[j].Period())
	})

	seen := make(map[domain.PeriodKey]bool, len(sorted))
	deduped := sorted[:0]
	for _, entry := range sorted {
		key := entry.Period()
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, entry)
	}

	return deduped
}

// buildBuiltInSeries projeta o slot da métrica padrão sobre as entradas já
// ordenadas; valor zero significa "sem dado no período" e fica fora da série
func buildBuiltInSeries(sorted []*domain.MonthlyEntry, field domain.BuiltInField) []domain.SeriesPoint {
	series := make([]domain.SeriesPoint, 0, len(sorted))
	for _, entry := range sorted {
		value := field.ValueFrom(entry)
		if value <= 0 {
			continue
		}
		series = append(series, domain.SeriesPoint{
			Period: domain.PeriodLabel(entry.Month, entry.Year),
			Value:  value,
		})
	}
	return series
}

func buildCustomSeries(entries []*domain.CustomMetricEntry) []domain.SeriesPoint {
	sorted := make([]*domain.CustomMetricEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Period().Before(sorted[j].Period())
	})

	seen := make(map[domain.PeriodKey]bool, len(sorted))
	series := make([]domain.SeriesPoint, 0, len(sorted))
	for _, entry := range sorted {
		key := entry.Period()
		if seen[key] {
			continue
		}
		seen[key] = true

		if entry.Value <= 0 {
			continue
		}
		series = append(series, domain.SeriesPoint{
			Period: domain.PeriodLabel(entry.Month, entry.Year),
			Value:  entry.Value,
		})
	}
	return series
}

func currentValue(series []domain.SeriesPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1].Value
}

// changePercent calcula a variação entre os dois últimos pontos da série;
// retorna 0 com menos de dois pontos ou quando o anterior é zero (nunca
// NaN/Inf)
func changePercent(series []domain.SeriesPoint) float64 {
	if len(series) < 2 {
		return 0
	}

	latest := series[len(series)-1].Value
	previous := series[len(series)-2].Value
	if previous == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((latest - previous) / previous * 100)
}
