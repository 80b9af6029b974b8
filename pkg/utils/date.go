package utils

import (
	"strings"
	"time"
)

// ParseOptionalDate converte uma data YYYY-MM-DD. Valor vazio retorna ok=false sem erro.
func ParseOptionalDate(value string) (date time.Time, ok bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, nil
	}

	date, err = time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, false, err
	}

	return date, true, nil
}
