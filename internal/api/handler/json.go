package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/frontrow-invoice-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// writeJSON responde com o status e o corpo codificados em JSON
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeJSONBody decodifica o corpo rejeitando campos desconhecidos e valida as tags
// validate. Em caso de erro a resposta já foi escrita e ok é false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", map[string]string{"error": err.Error()})
		return false
	}

	if err := validate.Struct(dest); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			details := make(map[string]string, len(errs))
			for _, fieldErr := range errs {
				details[fieldErr.Field()] = validationMessage(fieldErr)
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Falha na validação", details)
			return false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Falha na validação", nil)
		return false
	}

	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "datetime":
		return "must be a date in the format YYYY-MM-DD"
	}
	return "is invalid"
}
