package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/dashboarding"
	"github.com/vfg2006/frontrow-invoice-api/pkg/apiErrors"
	"github.com/vfg2006/frontrow-invoice-api/pkg/log"
	"github.com/vfg2006/frontrow-invoice-api/pkg/metrics"
	"github.com/vfg2006/frontrow-invoice-api/pkg/utils"
)

// GetGlobalMetrics retorna o consolidado atual, ou null antes da primeira atualização
func GetGlobalMetrics(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.CurrentGlobalMetrics())
	}
}

// RefreshMetrics regenera as métricas para o período informado. Sem datas usa o
// período atual ou, antes da primeira atualização, os últimos lookbackDays dias.
func RefreshMetrics(service dashboarding.Dashboarder, lookbackDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateRange, ok := refreshDateRange(w, r, service, lookbackDays)
		if !ok {
			return
		}

		_, err := service.RefreshAll(r.Context(), dateRange, metrics.TriggerManual)
		if err != nil {
			logger.WithError(err).Warn("Atualização das métricas não aplicada")

			var storeErr *dashboarding.StoreError
			switch {
			case errors.As(err, &storeErr):
				apiErrors.WriteError(w, storeErr.Code, storeErr.Error(), nil)
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				apiErrors.WriteError(w, apiErrors.ErrRefreshCanceled, "Atualização ainda em andamento", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar métricas", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, service.Dashboard(""))
	}
}

func refreshDateRange(w http.ResponseWriter, r *http.Request, service dashboarding.Dashboarder, lookbackDays int) (domain.DateRange, bool) {
	query := r.URL.Query()

	start, hasStart, err := utils.ParseOptionalDate(query.Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
		return domain.DateRange{}, false
	}

	end, hasEnd, err := utils.ParseOptionalDate(query.Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
		return domain.DateRange{}, false
	}

	switch {
	case hasStart && hasEnd:
		dateRange := domain.DateRange{Start: start, End: end}
		if !dateRange.IsOrdered() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "start_date deve ser anterior ou igual a end_date", nil)
			return domain.DateRange{}, false
		}
		return dateRange, true
	case hasStart || hasEnd:
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe start_date e end_date juntos", nil)
		return domain.DateRange{}, false
	}

	if current, ok := service.CurrentDateRange(); ok {
		return current, true
	}
	return domain.DefaultDateRange(time.Now(), lookbackDays), true
}
