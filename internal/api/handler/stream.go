package handler

import (
	"fmt"
	"net/http"

	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/entries"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/registry"
	"github.com/kpiboard/metrics-dashboard-api/internal/watch"
	"github.com/kpiboard/metrics-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// DashboardSnapshot é o estado completo enviado aos assinantes do stream.
// Cada evento de mudança dispara a releitura e o reenvio do snapshot
// inteiro, nunca um diff.
type DashboardSnapshot struct {
	Metrics        []*domain.MetricResponse `json:"metrics"`
	MonthlyEntries []*domain.MonthlyEntry   `json:"monthly_entries"`
}

// StreamDashboard mantém uma conexão de eventos (SSE) com o snapshot do
// dashboard do usuário. Envia o estado inicial na conexão e um snapshot
// novo a cada mutação publicada no hub.
func StreamDashboard(
	hub *watch.Hub,
	registryService registry.MetricRegistry,
	entryService entries.EntryService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado pela conexão", nil)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		ctx := r.Context()
		events, unsubscribe := hub.Subscribe(ctx, userClaims.UserID)
		defer unsubscribe()

		logrus.WithField("user_id", userClaims.UserID).Info("Assinante conectado ao stream do dashboard")

		// Snapshot inicial na conexão
		if err := writeSnapshot(w, flusher, registryService, entryService, userClaims.UserID); err != nil {
			logrus.WithError(err).WithField("user_id", userClaims.UserID).Error("Erro ao enviar snapshot inicial")
			return
		}

		for {
			select {
			case <-ctx.Done():
				logrus.WithField("user_id", userClaims.UserID).Info("Assinante desconectado do stream do dashboard")
				return

			case event, open := <-events:
				if !open {
					return
				}

				logrus.WithFields(logrus.Fields{
					"user_id": userClaims.UserID,
					"type":    event.Type,
				}).Debug("Mudança recebida, reenviando snapshot")

				if err := writeSnapshot(w, flusher, registryService, entryService, userClaims.UserID); err != nil {
					logrus.WithError(err).WithField("user_id", userClaims.UserID).Error("Erro ao enviar snapshot")
					return
				}
			}
		}
	}
}

// writeSnapshot relê o estado do usuário e o envia como um evento SSE
func writeSnapshot(
	w http.ResponseWriter,
	flusher http.Flusher,
	registryService registry.MetricRegistry,
	entryService entries.EntryService,
	userID string,
) error {
	defs, err := registryService.ListMetrics(userID)
	if err != nil {
		return err
	}

	monthlyEntries, err := entryService.ListMonthly(userID)
	if err != nil {
		return err
	}

	responses := make([]*domain.MetricResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, metricToResponse(def))
	}

	snapshot := DashboardSnapshot{
		Metrics:        responses,
		MonthlyEntries: monthlyEntries,
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload); err != nil {
		return err
	}

	flusher.Flush()
	return nil
}
