package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/frontrow-invoice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testStores() []domain.Store {
	return []domain.Store{
		{ID: "a", Name: "Loja A", Domain: "a.myshopify.com", BillingFrequency: domain.BillingFrequencyMonthly},
		{ID: "b", Name: "Loja B", Domain: "b.myshopify.com", BillingFrequency: domain.BillingFrequencyQuarterly, ClientName: stringPtr("Maria")},
		{ID: "c", Name: "Loja C", Domain: "c.myshopify.com", BillingFrequency: domain.BillingFrequencyAnnual},
	}
}

func testRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestInMemoryStoreMetricsRepository_ListAll(t *testing.T) {
	repo := NewInMemoryStoreMetricsRepository(testStores())

	all := repo.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
	for _, sm := range all {
		assert.Equal(t, 0, sm.Metrics.TotalOrders)
	}

	// alterar a cópia retornada não afeta o repositório
	all[0].Notes = "alterado"
	again := repo.ListAll()
	assert.Empty(t, again[0].Notes)
}

func TestInMemoryStoreMetricsRepository_DuplicatedIDs(t *testing.T) {
	stores := append(testStores(), domain.Store{ID: "a", Name: "Duplicada"})

	repo := NewInMemoryStoreMetricsRepository(stores)

	all := repo.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "Loja A", all[0].Name)
}

func TestInMemoryStoreMetricsRepository_FindByID(t *testing.T) {
	repo := NewInMemoryStoreMetricsRepository(testStores())

	found, ok := repo.FindByID("b")
	assert.True(t, ok)
	assert.Equal(t, "Loja B", found.Name)

	_, ok = repo.FindByID("inexistente")
	assert.False(t, ok)
}

func TestInMemoryStoreMetricsRepository_UpdateFields(t *testing.T) {
	t.Run("Atualiza os campos sem alterar as métricas", func(t *testing.T) {
		repo := NewInMemoryStoreMetricsRepository(testStores())
		metrics := domain.NewOrderMetrics(10, 1000, testRange())
		repo.ReplaceMetrics(map[string]domain.OrderMetrics{"b": metrics})

		annual := domain.BillingFrequencyAnnual
		updated, ok := repo.UpdateFields(&domain.UpdateStoreRequest{
			ID:               "b",
			Notes:            stringPtr("Cliente pediu fatura anual"),
			BillingFrequency: &annual,
		})

		require.True(t, ok)
		assert.Equal(t, "Cliente pediu fatura anual", updated.Notes)
		assert.Equal(t, domain.BillingFrequencyAnnual, updated.BillingFrequency)
		assert.Equal(t, "Maria", updated.ClientNameOrEmpty())
		assert.Equal(t, metrics, updated.Metrics)

		stored, _ := repo.FindByID("b")
		assert.Equal(t, updated, stored)
	})

	t.Run("Loja inexistente não altera nada", func(t *testing.T) {
		repo := NewInMemoryStoreMetricsRepository(testStores())
		before := repo.ListAll()

		_, ok := repo.UpdateFields(&domain.UpdateStoreRequest{ID: "x", Notes: stringPtr("n")})

		assert.False(t, ok)
		assert.Equal(t, before, repo.ListAll())
	})

	t.Run("Snapshot anterior permanece intacto", func(t *testing.T) {
		repo := NewInMemoryStoreMetricsRepository(testStores())
		before := repo.ListAll()

		_, ok := repo.UpdateFields(&domain.UpdateStoreRequest{ID: "b", ClientName: stringPtr("")})

		require.True(t, ok)
		assert.Equal(t, "Maria", before[1].ClientNameOrEmpty())
		after, _ := repo.FindByID("b")
		assert.Nil(t, after.ClientName)
	})
}

func TestInMemoryStoreMetricsRepository_ReplaceMetrics(t *testing.T) {
	repo := NewInMemoryStoreMetricsRepository(testStores())
	repo.UpdateFields(&domain.UpdateStoreRequest{ID: "a", Notes: stringPtr("editada")})

	dr := testRange()
	result := repo.ReplaceMetrics(map[string]domain.OrderMetrics{
		"a": domain.NewOrderMetrics(4, 400, dr),
		"c": domain.NewOrderMetrics(0, 0, dr),
	})

	require.Len(t, result, 3)
	assert.Equal(t, 4, result[0].Metrics.TotalOrders)
	assert.Equal(t, float64(100), result[0].Metrics.AverageOrderValue)
	assert.Equal(t, "editada", result[0].Notes)
	assert.True(t, result[1].Metrics.DateRange.IsZero())
	assert.Equal(t, dr, result[2].Metrics.DateRange)
	assert.Equal(t, result, repo.ListAll())
}

func TestNewStoreMetricsRepositoryFromCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Carrega as lojas do catálogo", func(t *testing.T) {
		catalog := mocks.NewMockStoreCatalog(ctrl)
		catalog.EXPECT().ListStores().Return(testStores(), nil)

		repo, err := NewStoreMetricsRepositoryFromCatalog(catalog)

		require.NoError(t, err)
		assert.Len(t, repo.ListAll(), 3)
	})

	t.Run("Propaga erro do catálogo", func(t *testing.T) {
		catalog := mocks.NewMockStoreCatalog(ctrl)
		catalog.EXPECT().ListStores().Return(nil, errors.New("conexão recusada"))

		repo, err := NewStoreMetricsRepositoryFromCatalog(catalog)

		assert.Error(t, err)
		assert.Nil(t, repo)
	})
}
