package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]{6}$`), id)
}

func TestParseOptionalDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantOK  bool
		wantErr bool
	}{
		{name: "Vazio", value: "", wantOK: false},
		{name: "Espaços", value: "  ", wantOK: false},
		{name: "Válida", value: "2025-01-31", want: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "Formato inválido", value: "31/01/2025", wantErr: true},
		{name: "Data inexistente", value: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseOptionalDate(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
