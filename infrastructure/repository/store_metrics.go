// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
)

//go:generate mockgen -source=store_metrics.go -destination=mocks/store_metrics.go -package=mocks

// StoreMetricsRepository guarda o conjunto de StoreMetrics da sessão.
// Há sempre exatamente um registro por loja, na ordem do catálogo.
type StoreMetricsRepository interface {
	ListAll() []domain.StoreMetrics
	FindByID(storeID string) (domain.StoreMetrics, bool)
	UpdateFields(request *domain.UpdateStoreRequest) (domain.StoreMetrics, bool)
	ReplaceMetrics(metrics map[string]domain.OrderMetrics) []domain.StoreMetrics
}

type inMemoryStoreMetricsRepository struct {
	mu       sync.RWMutex
	snapshot []domain.StoreMetrics
	index    map[string]int
}

func NewInMemoryStoreMetricsRepository(stores []domain.Store) StoreMetricsRepository {
	snapshot := make([]domain.StoreMetrics, 0, len(stores))
	index := make(map[string]int, len(stores))

	for _, store := range stores {
		if _, exists := index[store.ID]; exists {
			logrus.WithField("store_id", store.ID).Warn("Loja duplicada no catálogo, mantendo a primeira ocorrência")
			continue
		}

		index[store.ID] = len(snapshot)
		snapshot = append(snapshot, domain.StoreMetrics{Store: store})
	}

	return &inMemoryStoreMetricsRepository{
		snapshot: snapshot,
		index:    index,
	}
}

// NewStoreMetricsRepositoryFromCatalog carrega as lojas do catálogo e monta o repositório
func NewStoreMetricsRepositoryFromCatalog(catalog StoreCatalog) (StoreMetricsRepository, error) {
	stores, err := catalog.ListStores()
	if err != nil {
		return nil, err
	}

	return NewInMemoryStoreMetricsRepository(stores), nil
}

func (r *inMemoryStoreMetricsRepository) ListAll() []domain.StoreMetrics {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSnapshot(r.snapshot)
}

func (r *inMemoryStoreMetricsRepository) FindByID(storeID string) (domain.StoreMetrics, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[storeID]
	if !ok {
		return domain.StoreMetrics{}, false
	}

	return r.snapshot[i], true
}

// UpdateFields mescla os campos editáveis na loja sem tocar nas métricas
func (r *inMemoryStoreMetricsRepository) UpdateFields(request *domain.UpdateStoreRequest) (domain.StoreMetrics, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[request.ID]
	if !ok {
		return domain.StoreMetrics{}, false
	}

	next := cloneSnapshot(r.snapshot)
	request.ApplyTo(&next[i].Store)
	r.snapshot = next

	return next[i], true
}

// ReplaceMetrics troca as métricas de todas as lojas em um único passo.
// Lojas ausentes do mapa mantêm as métricas atuais.
func (r *inMemoryStoreMetricsRepository) ReplaceMetrics(metrics map[string]domain.OrderMetrics) []domain.StoreMetrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSnapshot(r.snapshot)
	for i := range next {
		if m, ok := metrics[next[i].ID]; ok {
			next[i].Metrics = m
		}
	}
	r.snapshot = next

	return cloneSnapshot(next)
}

func cloneSnapshot(snapshot []domain.StoreMetrics) []domain.StoreMetrics {
	cloned := make([]domain.StoreMetrics, len(snapshot))
	copy(cloned, snapshot)
	return cloned
}
