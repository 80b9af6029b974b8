package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
)

func TestSeedStoreCatalog(t *testing.T) {
	catalog := NewSeedStoreCatalog()

	stores, err := catalog.ListStores()
	require.NoError(t, err)
	require.Len(t, stores, 5)

	baselines, err := catalog.ListBaselines()
	require.NoError(t, err)
	assert.Len(t, baselines, 5)

	ids := make(map[string]bool)
	for _, store := range stores {
		assert.False(t, ids[store.ID], "id duplicado: %s", store.ID)
		ids[store.ID] = true
		assert.True(t, store.BillingFrequency.IsValid())
		assert.Contains(t, baselines, store.ID)
	}

	assert.Equal(t, domain.Baseline{Orders: 145, Revenue: 24580}, baselines["store-1"])
	assert.Nil(t, stores[2].LastInvoiceDate)
	assert.Equal(t, domain.BillingFrequencyQuarterly, stores[3].BillingFrequency)

	// as listas devolvidas são cópias
	stores[0].Name = "alterado"
	delete(baselines, "store-1")
	again, _ := catalog.ListStores()
	againBaselines, _ := catalog.ListBaselines()
	assert.Equal(t, "Bella Vista Boutique", again[0].Name)
	assert.Contains(t, againBaselines, "store-1")
}

func TestPostgresStoreCatalog_Queries(t *testing.T) {
	query, args, err := listStoresQuery()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT s.id, s.name, s.domain, s.client_name, COALESCE(s.notes, ''), s.last_invoice_date, s.billing_frequency, s.billing_status FROM stores s ORDER BY s.position ASC, s.id ASC",
		query,
	)

	query, args, err = listBaselinesQuery()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT s.id, s.baseline_orders, s.baseline_revenue FROM stores s WHERE s.baseline_orders IS NOT NULL AND s.baseline_revenue IS NOT NULL",
		query,
	)
}
