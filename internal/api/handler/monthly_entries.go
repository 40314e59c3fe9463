package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/kpiboard/metrics-dashboard-api/internal/domain"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/entries"
	"github.com/kpiboard/metrics-dashboard-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListEntries retorna as entradas mensais do usuário
func ListEntries(service entries.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		monthlyEntries, err := service.ListMonthly(userClaims.UserID)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(monthlyEntries); err != nil {
			logrus.Error(err)
		}
	}
}

// CreateEntry cria uma entrada mensal nova; período já existente é recusado
// com conflito antes de qualquer escrita
func CreateEntry(service entries.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.SaveMonthlyEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		entry, err := service.CreateMonthly(userClaims.UserID, &req)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
		}
	}
}

// SaveEntry grava uma entrada mensal com upsert pela chave (mês, ano)
func SaveEntry(service entries.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.SaveMonthlyEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		entry, err := service.SaveMonthly(userClaims.UserID, &req)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
		}
	}
}

// DeleteEntry exclui uma entrada mensal
func DeleteEntry(service entries.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		entryID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if entryID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da entrada não informado", nil)
			return
		}

		if err := service.DeleteMonthly(userClaims.UserID, entryID); err != nil {
			handleEntryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleEntryError converte erros das entradas mensais em respostas HTTP
func handleEntryError(w http.ResponseWriter, err error) {
	var entryErr *entries.EntryError
	if errors.As(err, &entryErr) {
		apiErrors.WriteError(w, entryErr.Code, entryErr.Error(), nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar entradas", nil)
}
