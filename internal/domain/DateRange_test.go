package domain

import (
	stdjson "encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	dr, err := NewDateRange("2024-12-01", "2024-12-31")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), dr.Start)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), dr.End)
	assert.Equal(t, 30.0, dr.Days())
	assert.True(t, dr.IsOrdered())
	assert.Equal(t, "2024-12-01 to 2024-12-31", dr.String())

	_, err = NewDateRange("2024-13-01", "2024-12-31")
	assert.Error(t, err)

	_, err = NewDateRange("2024-12-01", "31/12/2024")
	assert.Error(t, err)
}

func TestDateRange_DaysIgnoresOrdering(t *testing.T) {
	dr, err := NewDateRange("2024-12-31", "2024-12-01")
	require.NoError(t, err)

	assert.False(t, dr.IsOrdered())
	assert.Equal(t, 30.0, dr.Days())
}

func TestDefaultDateRange(t *testing.T) {
	now := time.Date(2025, 1, 15, 18, 30, 0, 0, time.UTC)

	dr := DefaultDateRange(now, 30)

	assert.Equal(t, "2024-12-16", dr.Start.Format(time.DateOnly))
	assert.Equal(t, "2025-01-15", dr.End.Format(time.DateOnly))
	assert.Equal(t, 30.0, dr.Days())
}

func TestDateRange_JSON(t *testing.T) {
	dr, err := NewDateRange("2024-12-01", "2024-12-31")
	require.NoError(t, err)

	data, err := json.Marshal(dr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-12-01","end":"2024-12-31"}`, string(data))

	var decoded DateRange
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, dr, decoded)
}

func TestDateRange_JSONInsideResponse(t *testing.T) {
	dr := DateRange{Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)}
	status := DashboardStatus{DateRange: &dr}

	data, err := json.Marshal(status)
	require.NoError(t, err)
	assert.JSONEq(t, `{"loading":false,"date_range":{"start":"2025-01-01","end":"2025-01-31"}}`, string(data))

	// o formato é o mesmo com encoding/json
	stdData, err := stdjson.Marshal(status)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(stdData))

	var decoded DashboardStatus
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.DateRange)
	assert.Equal(t, dr, *decoded.DateRange)
}
