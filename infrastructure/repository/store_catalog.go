package repository

import (
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
)

//go:generate mockgen -source=store_catalog.go -destination=mocks/store_catalog.go -package=mocks

// StoreCatalog fornece a lista fixa de lojas carregada na inicialização
type StoreCatalog interface {
	ListStores() ([]domain.Store, error)
	ListBaselines() (map[string]domain.Baseline, error)
}

type seedStoreCatalog struct {
	stores    []domain.Store
	baselines map[string]domain.Baseline
}

// NewSeedStoreCatalog retorna o catálogo embutido com as lojas conectadas
func NewSeedStoreCatalog() StoreCatalog {
	return &seedStoreCatalog{
		stores:    seedStores(),
		baselines: seedBaselines(),
	}
}

func (c *seedStoreCatalog) ListStores() ([]domain.Store, error) {
	stores := make([]domain.Store, len(c.stores))
	copy(stores, c.stores)
	return stores, nil
}

func (c *seedStoreCatalog) ListBaselines() (map[string]domain.Baseline, error) {
	baselines := make(map[string]domain.Baseline, len(c.baselines))
	for id, baseline := range c.baselines {
		baselines[id] = baseline
	}
	return baselines, nil
}

func seedStores() []domain.Store {
	return []domain.Store{
		{
			ID:               "store-1",
			Name:             "Bella Vista Boutique",
			Domain:           "bellavista.myshopify.com",
			ClientName:       stringPtr("Sarah Johnson"),
			Notes:            "Last invoice sent 2024-12-15. Monthly billing cycle.",
			LastInvoiceDate:  stringPtr("2024-12-15"),
			BillingFrequency: domain.BillingFrequencyMonthly,
			BillingStatus:    "Invoiced",
		},
		{
			ID:               "store-2",
			Name:             "Urban Edge Fashion",
			Domain:           "urbanedge.myshopify.com",
			ClientName:       stringPtr("Marcus Chen"),
			Notes:            "Invoice #INV-2024-003 sent. Awaiting payment.",
			LastInvoiceDate:  stringPtr("2024-12-10"),
			BillingFrequency: domain.BillingFrequencyMonthly,
			BillingStatus:    "Awaiting Payment",
		},
		{
			ID:               "store-3",
			Name:             "Coastal Collections",
			Domain:           "coastal.myshopify.com",
			ClientName:       stringPtr("Emma Rodriguez"),
			Notes:            "New client. First invoice due end of month.",
			BillingFrequency: domain.BillingFrequencyMonthly,
			BillingStatus:    "Not Invoiced",
		},
		{
			ID:               "store-4",
			Name:             "Metro Style Co",
			Domain:           "metrostyle.myshopify.com",
			ClientName:       stringPtr("David Kim"),
			Notes:            "Quarterly billing. Next invoice due March 2025.",
			LastInvoiceDate:  stringPtr("2024-12-01"),
			BillingFrequency: domain.BillingFrequencyQuarterly,
			BillingStatus:    "Invoiced",
		},
		{
			ID:               "store-5",
			Name:             "Artisan Crafts",
			Domain:           "artisancrafts.myshopify.com",
			ClientName:       stringPtr("Lisa Thompson"),
			Notes:            "Invoice sent 2024-12-18. Payment terms: NET 30.",
			LastInvoiceDate:  stringPtr("2024-12-18"),
			BillingFrequency: domain.BillingFrequencyMonthly,
			BillingStatus:    "Invoiced",
		},
	}
}

func seedBaselines() map[string]domain.Baseline {
	return map[string]domain.Baseline{
		"store-1": {Orders: 145, Revenue: 24580},
		"store-2": {Orders: 203, Revenue: 38420},
		"store-3": {Orders: 89, Revenue: 15690},
		"store-4": {Orders: 167, Revenue: 31240},
		"store-5": {Orders: 72, Revenue: 12890},
	}
}

func stringPtr(s string) *string {
	return &s
}
