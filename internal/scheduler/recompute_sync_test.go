package scheduler

import (
	"errors"
	"testing"

	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository/mocks"
	aggmocks "github.com/kpiboard/metrics-dashboard-api/internal/usecases/aggregating/mocks"
	"github.com/kpiboard/metrics-dashboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func syncConfig(enabled bool) *config.Config {
	return &config.Config{
		RecomputeSync: config.RecomputeSync{
			CronSchedule: "0 3 * * *",
			Enabled:      enabled,
		},
	}
}

func TestStatus_EstadoInicialSemExecucoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)
	recomputer := aggmocks.NewMockRecomputer(ctrl)

	service := NewRecomputeSyncService(metricRepo, recomputer, syncConfig(true))
	status := service.Status()

	assert.False(t, status.Running)
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 3 * * *", status.CronSchedule)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
	assert.Zero(t, status.LastUserCount)
}

func TestSyncAllUsers_FalhaDeUmUsuarioNaoInterrompeOsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)
	recomputer := aggmocks.NewMockRecomputer(ctrl)

	metricRepo.EXPECT().ListUserIDs().Return([]string{"u1", "u2", "u3"}, nil)
	recomputer.EXPECT().RecomputeUser("u1").Return(nil)
	recomputer.EXPECT().RecomputeUser("u2").Return(errors.New("falha de escrita"))
	recomputer.EXPECT().RecomputeUser("u3").Return(nil)

	service := NewRecomputeSyncService(metricRepo, recomputer, syncConfig(true))
	service.syncAllUsers()

	status := service.Status()
	assert.False(t, status.Running)
	assert.Equal(t, 3, status.LastUserCount)
	assert.Equal(t, 1, status.LastFailures)
	assert.NotNil(t, status.LastStartedAt)
	assert.NotNil(t, status.LastCompletedAt)
}

func TestRunNow_ExecucaoEmAndamentoEhRecusada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricRepo := mocks.NewMockMetricDefinitionRepository(ctrl)
	recomputer := aggmocks.NewMockRecomputer(ctrl)

	service := NewRecomputeSyncService(metricRepo, recomputer, syncConfig(true))

	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	err := service.RunNow()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "em andamento")
}
