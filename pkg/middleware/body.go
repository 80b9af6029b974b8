package middleware

import (
	"net/http"

	"github.com/vfg2006/frontrow-invoice-api/pkg/apiErrors"
	"github.com/vfg2006/frontrow-invoice-api/pkg/log"
)

// LimitBody rejeita corpos acima de maxBytes. Com Content-Length informado a
// resposta é 413 antes de chegar ao handler; sem ele a leitura é cortada no
// limite e o handler recebe erro de decodificação.
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"content_length": r.ContentLength,
					"max_bytes":      maxBytes,
					"path":           r.URL.Path,
				}).Warn("Corpo da requisição acima do limite")

				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Corpo da requisição acima do limite", nil)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
