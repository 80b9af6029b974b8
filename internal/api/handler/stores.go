package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/dashboarding"
	"github.com/vfg2006/frontrow-invoice-api/pkg/apiErrors"
	"github.com/vfg2006/frontrow-invoice-api/pkg/log"
)

func ListStores(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListAll())
	}
}

func GetStore(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		store, ok := service.FindByID(storeID)
		if !ok {
			log.ForContext(r.Context()).WithField("store_id", storeID).Warn("Loja não encontrada")
			apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, store)
	}
}

// UpdateStore altera os dados de cobrança da loja. Somente os campos enviados mudam.
func UpdateStore(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger := log.ForContext(r.Context()).WithField("store_id", storeID)

		var request domain.UpdateStoreRequest
		if !decodeJSONBody(w, r, &request) {
			logger.Warn("Requisição de alteração de loja rejeitada")
			return
		}
		request.ID = storeID

		updated, err := service.UpdateFields(&request)
		if err != nil {
			logger.WithError(err).Warn("Erro ao alterar loja")

			var storeErr *dashboarding.StoreError
			if errors.As(err, &storeErr) {
				apiErrors.WriteError(w, storeErr.Code, storeErr.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao alterar loja", nil)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}
