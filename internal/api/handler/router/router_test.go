package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/stores/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
			w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("id")))
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("first"), tag("second")},
	}))

	t.Run("Rota com middlewares na ordem declarada", func(t *testing.T) {
		order = nil
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores/store-1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "store-1", rec.Body.String())
		assert.Equal(t, []string{"first", "second", "handler"}, order)
	})

	t.Run("Rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "API_001")
	})

	t.Run("Método não permitido", func(t *testing.T) {
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/stores/store-1", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "API_002")
	})
}
