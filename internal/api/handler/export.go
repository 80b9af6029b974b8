package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/exporting"
	"github.com/vfg2006/frontrow-invoice-api/pkg/apiErrors"
	"github.com/vfg2006/frontrow-invoice-api/pkg/log"
)

// ExportStores devolve o arquivo exportado como anexo. store_id limita a uma loja.
func ExportStores(exporter exporting.Exporter, format exporting.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID := r.URL.Query().Get("store_id")

		file, err := exporter.Export(format, storeID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("store_id", storeID).Warn("Erro ao exportar lojas")

			switch {
			case errors.Is(err, exporting.ErrStoreNotFound):
				apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", nil)
			case errors.Is(err, exporting.ErrUnknownFormat):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de exportação inválido", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar lojas", nil)
			}
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(file.Content); err != nil {
			logrus.WithError(err).Error("Erro ao enviar arquivo exportado")
		}
	}
}
