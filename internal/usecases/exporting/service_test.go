package exporting_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/exporting"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/exporting/mocks"
	"github.com/vfg2006/frontrow-invoice-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

var exportNow = time.Date(2025, 1, 20, 23, 0, 0, 0, time.UTC)

func exportStores() []domain.StoreMetrics {
	return []domain.StoreMetrics{
		{Store: domain.Store{ID: "store-1", Name: "Loja Um", BillingFrequency: domain.BillingFrequencyMonthly}},
		{Store: domain.Store{ID: "store-2", Name: "Loja Dois", BillingFrequency: domain.BillingFrequencyAnnual}},
	}
}

func TestService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mocks.NewMockStoreReader(ctrl)
	service := exporting.NewService(reader, "frontrow-invoice", metrics.NewExportMetrics(prometheus.NewRegistry()), func() time.Time { return exportNow })

	t.Run("CSV de todas as lojas", func(t *testing.T) {
		reader.EXPECT().Snapshot().Return(domain.Snapshot{Stores: exportStores()})

		file, err := service.Export(exporting.FormatCSV, "")

		require.NoError(t, err)
		assert.Equal(t, "frontrow-invoice-2025-01-20.csv", file.Filename)
		assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
		assert.Len(t, strings.Split(string(file.Content), "\n"), 3)
	})

	t.Run("Relatório de uma loja com consolidado geral", func(t *testing.T) {
		global := domain.Aggregate(exportStores(), domain.DateRange{})
		reader.EXPECT().Snapshot().Return(domain.Snapshot{Stores: exportStores(), GlobalMetrics: &global})

		file, err := service.Export(exporting.FormatReport, "store-2")

		require.NoError(t, err)
		assert.Equal(t, "frontrow-invoice-2025-01-20.txt", file.Filename)
		assert.Equal(t, "text/plain; charset=utf-8", file.ContentType)
		content := string(file.Content)
		assert.Contains(t, content, "LOJA DOIS")
		assert.NotContains(t, content, "LOJA UM")
		assert.Contains(t, content, "Total Stores: 2")
	})

	t.Run("Loja inexistente", func(t *testing.T) {
		reader.EXPECT().Snapshot().Return(domain.Snapshot{Stores: exportStores()})

		file, err := service.Export(exporting.FormatCSV, "store-9")

		assert.Nil(t, file)
		assert.ErrorIs(t, err, exporting.ErrStoreNotFound)
	})

	t.Run("Formato desconhecido", func(t *testing.T) {
		reader.EXPECT().Snapshot().Return(domain.Snapshot{Stores: exportStores()})

		_, err := service.Export(exporting.Format("pdf"), "")

		assert.ErrorIs(t, err, exporting.ErrUnknownFormat)
	})
}
