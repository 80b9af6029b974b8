package handler

import (
	"net/http"

	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/dashboarding"
)

// GetDashboard retorna lojas, consolidado e estado da atualização.
// store_id filtra a lista de lojas exibidas.
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID := r.URL.Query().Get("store_id")

		writeJSON(w, http.StatusOK, service.Dashboard(storeID))
	}
}
