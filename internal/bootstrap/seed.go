package bootstrap

import (
	"math"
	"math/rand"
	"time"

	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository"
	"github.com/kpiboard/metrics-dashboard-api/internal/config"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/kpiboard/metrics-dashboard-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Initializer prepara o conjunto inicial de dados de um usuário: as seis
// métricas padrão e, opcionalmente, entradas mensais de exemplo. O seed é
// sempre disparado explicitamente, nunca por efeito colateral de import.
type Initializer struct {
	metricRepo  repository.MetricDefinitionRepository
	monthlyRepo repository.MonthlyEntryRepository
	recomputer  aggregating.Recomputer
	cfg         *config.Config
}

func NewInitializer(
	metricRepo repository.MetricDefinitionRepository,
	monthlyRepo repository.MonthlyEntryRepository,
	recomputer aggregating.Recomputer,
	cfg *config.Config,
) *Initializer {
	return &Initializer{
		metricRepo:  metricRepo,
		monthlyRepo: monthlyRepo,
		recomputer:  recomputer,
		cfg:         cfg,
	}
}

// SeedUser cria as métricas padrão do usuário caso ele ainda não tenha
// nenhuma definição. Usuários com dados existentes não são tocados.
func (i *Initializer) SeedUser(userID string) error {
	if i.cfg != nil && !i.cfg.Seed.Enabled {
		return nil
	}

	existing, err := i.metricRepo.ListByUser(userID)
	if err != nil {
		return errors.Wrap(err, "erro ao consultar métricas existentes do usuário")
	}
	if len(existing) > 0 {
		logrus.WithField("user_id", userID).Debug("Usuário já tem métricas, seed ignorado")
		return nil
	}

	for _, def := range domain.BuiltInDefinitions(userID) {
		if err := i.metricRepo.Create(def); err != nil {
			return errors.Wrapf(err, "erro ao criar métrica padrão %s", def.ID)
		}
	}

	logrus.WithField("user_id", userID).Info("Métricas padrão criadas para o usuário")

	if i.cfg != nil && i.cfg.Seed.SampleData {
		if err := i.seedSampleEntries(userID); err != nil {
			return err
		}
	}

	return nil
}

// seedSampleEntries grava onze meses de entradas de exemplo com uma
// tendência senoidal e ruído leve, terminando no mês corrente
func (i *Initializer) seedSampleEntries(userID string) error {
	months := domain.MonthNames()
	now := time.Now()

	const sampleMonths = 11
	for offset := sampleMonths - 1; offset >= 0; offset-- {
		ref := now.AddDate(0, -offset, 0)
		position := sampleMonths - 1 - offset

		entryID, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar identificador da entrada de exemplo")
		}

		entry := &domain.MonthlyEntry{
			ID:          entryID,
			UserID:      userID,
			Month:       months[int(ref.Month())-1],
			Year:        ref.Year(),
			MRR:         trendValue(2500, 0.4, position, sampleMonths),
			TrialToPaid: trendValue(25, 0.3, position, sampleMonths),
			Customers:   trendValue(30, 0.5, position, sampleMonths),
			AverageLTV:  trendValue(120, 0.3, position, sampleMonths),
			NewTrials:   trendValue(25, 0.6, position, sampleMonths),
			ChurnRate:   trendValue(2.5, 0.4, position, sampleMonths),
		}

		if err := i.monthlyRepo.SaveOrUpdate(entry); err != nil {
			return errors.Wrap(err, "erro ao gravar entrada mensal de exemplo")
		}
	}

	if err := i.recomputer.RecomputeUser(userID); err != nil {
		return errors.Wrap(err, "erro ao recalcular métricas após seed")
	}

	logrus.WithField("user_id", userID).Info("Entradas mensais de exemplo criadas")
	return nil
}

func trendValue(baseValue, volatility float64, position, total int) float64 {
	trend := math.Sin(float64(position)/float64(total)*math.Pi*2) * volatility
	noise := (rand.Float64() - 0.5) * 0.2
	value := math.Max(0, baseValue*(1+trend+noise))
	return utils.RoundWithTwoDecimalPlace(value)
}
