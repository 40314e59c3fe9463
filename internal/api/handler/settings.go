package handler

import (
	"net/http"

	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/registry"
	"github.com/kpiboard/metrics-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// DeleteAllData apaga todos os dados do usuário autenticado: entradas
// custom, entradas mensais e definições de métricas
func DeleteAllData(service registry.MetricRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		logrus.WithField("user_id", userClaims.UserID).Warn("Exclusão total de dados solicitada")

		if err := service.DeleteAll(userClaims.UserID); err != nil {
			handleRegistryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
