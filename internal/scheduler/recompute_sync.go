package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository"
	"github.com/kpiboard/metrics-dashboard-api/internal/config"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/sirupsen/logrus"
)

// RecomputeSyncConfig representa a configuração do agendador de reconciliação
type RecomputeSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RecomputeSyncStatus é o snapshot do estado do job para a API de cron
type RecomputeSyncStatus struct {
	Running         bool       `json:"running"`
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastUserCount   int        `json:"last_user_count"`
	LastFailures    int        `json:"last_failures"`
}

// RecomputeSyncService reconcilia periodicamente os campos derivados das
// métricas de todos os usuários. Ele corrige o atraso deixado por recomputes
// que falharam após uma gravação.
type RecomputeSyncService struct {
	scheduler           *gocron.Scheduler
	config              RecomputeSyncConfig
	metricRepo          repository.MetricDefinitionRepository
	recomputer          aggregating.Recomputer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastUserCount       int
	lastFailures        int
}

// NewRecomputeSyncService cria uma nova instância do serviço de reconciliação
func NewRecomputeSyncService(
	metricRepo repository.MetricDefinitionRepository,
	recomputer aggregating.Recomputer,
	appConfig *config.Config,
) *RecomputeSyncService {
	syncConfig := RecomputeSyncConfig{
		CronSchedule: appConfig.RecomputeSync.CronSchedule,
		SyncEnabled:  appConfig.RecomputeSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de reconciliação carregada")

	return &RecomputeSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		metricRepo:  metricRepo,
		recomputer:  recomputer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *RecomputeSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação periódica de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllUsers()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de métricas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma reconciliação manual, usada pelo endpoint de cron.
// Retorna erro se já houver uma execução em andamento.
func (s *RecomputeSyncService) RunNow() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return fmt.Errorf("reconciliação já em andamento")
	}
	s.syncMutex.Unlock()

	go s.syncAllUsers()
	return nil
}

// Status retorna o snapshot do estado atual do job
func (s *RecomputeSyncService) Status() RecomputeSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := RecomputeSyncStatus{
		Running:       s.syncRunning,
		Enabled:       s.config.SyncEnabled,
		CronSchedule:  s.config.CronSchedule,
		LastUserCount: s.lastUserCount,
		LastFailures:  s.lastFailures,
	}
	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}
	return status
}

// syncAllUsers recalcula as métricas derivadas de todos os usuários com
// definições cadastradas
func (s *RecomputeSyncService) syncAllUsers() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando reconciliação de métricas derivadas para todos os usuários")

	userIDs, err := s.metricRepo.ListUserIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de usuários para reconciliação")
		return
	}

	failures := 0
	for _, userID := range userIDs {
		if err := s.recomputer.RecomputeUser(userID); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Error("Erro ao reconciliar métricas do usuário")
			failures++
			continue
		}
	}

	s.syncMutex.Lock()
	s.lastUserCount = len(userIDs)
	s.lastFailures = failures
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"users":    len(userIDs),
		"failures": failures,
		"duration": time.Since(s.lastSyncStartedAt).String(),
	}).Info("Reconciliação de métricas derivadas concluída")
}
