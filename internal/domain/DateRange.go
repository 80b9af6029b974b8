package domain

import (
	"fmt"
	"math"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DateRange representa o período (datas de calendário) usado para gerar as métricas
type DateRange struct {
	Start time.Time
	End   time.Time
}

type dateRangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewDateRange converte duas datas no formato YYYY-MM-DD em um DateRange.
// A ordem das datas não é validada aqui.
func NewDateRange(start, end string) (DateRange, error) {
	startDate, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("data de início inválida %q: %w", start, err)
	}

	endDate, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("data de fim inválida %q: %w", end, err)
	}

	return DateRange{Start: startDate, End: endDate}, nil
}

// DefaultDateRange retorna o período dos últimos lookbackDays dias até hoje
func DefaultDateRange(now time.Time, lookbackDays int) DateRange {
	y, m, d := now.UTC().Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return DateRange{
		Start: end.AddDate(0, 0, -lookbackDays),
		End:   end,
	}
}

// Days retorna |end - start| em dias
func (d DateRange) Days() float64 {
	return math.Abs(d.End.Sub(d.Start).Hours() / 24)
}

// IsOrdered indica se start <= end
func (d DateRange) IsOrdered() bool {
	return !d.Start.After(d.End)
}

func (d DateRange) IsZero() bool {
	return d.Start.IsZero() && d.End.IsZero()
}

// Key identifica o período, usado para agrupar atualizações concorrentes
func (d DateRange) Key() string {
	return d.Start.Format(time.DateOnly) + "|" + d.End.Format(time.DateOnly)
}

func (d DateRange) String() string {
	return fmt.Sprintf("%s to %s", d.Start.Format(time.DateOnly), d.End.Format(time.DateOnly))
}

func (d DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateRangeJSON{
		Start: d.Start.Format(time.DateOnly),
		End:   d.End.Format(time.DateOnly),
	})
}

func (d *DateRange) UnmarshalJSON(data []byte) error {
	var raw dateRangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewDateRange(raw.Start, raw.End)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
