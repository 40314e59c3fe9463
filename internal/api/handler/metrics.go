package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/entries"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/registry"
	"github.com/kpiboard/metrics-dashboard-api/pkg/apiErrors"
	"github.com/kpiboard/metrics-dashboard-api/pkg/middleware"
	"github.com/kpiboard/metrics-dashboard-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ReorderRequest é o payload de reordenação dos cards do dashboard
type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

// SetGoalRequest é o payload de definição de meta; goal nulo remove a meta
type SetGoalRequest struct {
	Goal *float64 `json:"goal"`
}

// currentUser extrai as claims do usuário autenticado do contexto
func currentUser(r *http.Request) (*domain.Claims, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return userClaims, ok
}

// metricToResponse projeta a definição para o card da API, com o valor
// corrente formatado pela unidade
func metricToResponse(def *domain.MetricDefinition) *domain.MetricResponse {
	return &domain.MetricResponse{
		ID:             def.ID,
		Title:          def.Title,
		Unit:           def.Unit,
		Color:          def.Color,
		Kind:           def.Source.Kind,
		DisplayOrder:   def.DisplayOrder,
		Goal:           def.Goal,
		CurrentValue:   def.CurrentValue,
		FormattedValue: utils.FormatValue(def.CurrentValue, string(def.Unit)),
		Series:         def.Series,
		ChangePercent:  def.ChangePercent,
	}
}

// ListMetrics retorna as métricas do usuário na ordem dos cards
func ListMetrics(service registry.MetricRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		defs, err := service.ListMetrics(userClaims.UserID)
		if err != nil {
			handleRegistryError(w, err)
			return
		}

		responses := make([]*domain.MetricResponse, 0, len(defs))
		for _, def := range defs {
			responses = append(responses, metricToResponse(def))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(responses); err != nil {
			logrus.Error(err)
		}
	}
}

// AddMetric cria uma métrica custom para o usuário
func AddMetric(service registry.MetricRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.AddMetricRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		def, err := service.AddMetric(userClaims.UserID, &req)
		if err != nil {
			handleRegistryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(metricToResponse(def)); err != nil {
			logrus.Error(err)
		}
	}
}

// UpdateMetric edita título, unidade ou cor de uma métrica
func UpdateMetric(service registry.MetricRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		metricID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if metricID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da métrica não informado", nil)
			return
		}

		var req domain.UpdateMetricRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateMetric(userClaims.UserID, metricID, &req); err != nil {
			handleRegistryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteMetric exclui uma métrica custom e suas entradas dependentes
func DeleteMetric(service registry.MetricRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		metricID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if metricID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da métrica não informado", nil)
			return
		}

		if err := service.DeleteMetric(userClaims.UserID, metricID); err != nil {
			handleRegistryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ReorderMetrics regrava a ordem dos cards conforme a lista enviada
func ReorderMetrics(service registry.MetricRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req ReorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.Reorder(userClaims.UserID, req.OrderedIDs); err != nil {
			handleRegistryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SetMetricGoal define ou remove a meta de uma métrica
func SetMetricGoal(service registry.MetricRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		metricID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if metricID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da métrica não informado", nil)
			return
		}

		var req SetGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetGoal(userClaims.UserID, metricID, req.Goal); err != nil {
			handleRegistryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SaveCustomValue grava o valor mensal de uma métrica custom
func SaveCustomValue(service entries.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		metricID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if metricID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da métrica não informado", nil)
			return
		}

		var req domain.SaveCustomValueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SaveCustomValue(userClaims.UserID, metricID, &req); err != nil {
			handleEntryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleRegistryError converte erros do registro de métricas em respostas HTTP
func handleRegistryError(w http.ResponseWriter, err error) {
	var regErr *registry.RegistryError
	if errors.As(err, &regErr) {
		var details any
		if regErr.MetricID != "" {
			details = map[string]any{"metric_id": regErr.MetricID}
		}
		apiErrors.WriteError(w, regErr.Code, regErr.Error(), details)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar métricas", nil)
}
