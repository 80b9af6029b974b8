// Package dashboarding mantém a sessão do painel de faturamento: as métricas
// das lojas, as edições de cobrança e o estado das atualizações.
package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/frontrow-invoice-api/infrastructure/repository"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/generating"
	"github.com/vfg2006/frontrow-invoice-api/pkg/apiErrors"
	"github.com/vfg2006/frontrow-invoice-api/pkg/metrics"
	"github.com/vfg2006/frontrow-invoice-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Dashboarder interface {
	RefreshAll(ctx context.Context, dateRange domain.DateRange, trigger string) ([]domain.StoreMetrics, error)
	UpdateFields(request *domain.UpdateStoreRequest) (*domain.StoreMetrics, error)
	ListAll() []domain.StoreMetrics
	FindByID(storeID string) (domain.StoreMetrics, bool)
	CurrentGlobalMetrics() *domain.GlobalMetrics
	Snapshot() domain.Snapshot
	CurrentDateRange() (domain.DateRange, bool)
	Status() domain.DashboardStatus
	Dashboard(storeID string) *domain.DashboardResponse
}

type Options struct {
	SimulatedLatency time.Duration
	Metrics          *metrics.RefreshMetrics
	Clock            func() time.Time
	Sleep            func(time.Duration)
}

type Service struct {
	repo      repository.StoreMetricsRepository
	generator generating.MetricsGenerator
	metrics   *metrics.RefreshMetrics
	latency   time.Duration
	now       func() time.Time
	sleep     func(time.Duration)

	group singleflight.Group

	mu          sync.RWMutex
	issuedSeq   uint64
	appliedSeq  uint64
	inFlight    int
	lastUpdated *time.Time
	dateRange   *domain.DateRange
	runID       string
}

type refreshResult struct {
	stores []domain.StoreMetrics
}

func NewService(repo repository.StoreMetricsRepository, generator generating.MetricsGenerator, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}

	return &Service{
		repo:      repo,
		generator: generator,
		metrics:   opts.Metrics,
		latency:   opts.SimulatedLatency,
		now:       opts.Clock,
		sleep:     opts.Sleep,
	}
}

// RefreshAll regenera as métricas de todas as lojas para o período e troca o
// conjunto inteiro de uma vez. Chamadas para o mesmo período enquanto uma
// atualização está em andamento compartilham o resultado. Entre períodos
// diferentes vence a requisição mais recente: um resultado mais antigo que o
// último aplicado é descartado com ErrRefreshSuperseded.
//
// A atualização não é cancelada pelo contexto; o chamador apenas deixa de
// esperar por ela.
func (s *Service) RefreshAll(ctx context.Context, dateRange domain.DateRange, trigger string) ([]domain.StoreMetrics, error) {
	ch := s.group.DoChan(dateRange.Key(), func() (interface{}, error) {
		return s.refresh(dateRange, trigger)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logrus.WithField("date_range", dateRange.String()).Debug("Atualização compartilhada com requisição em andamento")
		}
		return res.Val.(*refreshResult).stores, nil
	}
}

func (s *Service) refresh(dateRange domain.DateRange, trigger string) (*refreshResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, NewStoreError(ErrGenerateRunID, apiErrors.ErrInternalServer, err.Error())
	}

	s.mu.Lock()
	s.issuedSeq++
	seq := s.issuedSeq
	s.inFlight++
	s.mu.Unlock()

	s.metrics.Started()
	startedAt := s.now()

	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()

		s.metrics.Finished()
		s.metrics.ObserveDuration(trigger, s.now().Sub(startedAt))
	}()

	logger := logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"trigger":    trigger,
		"date_range": dateRange.String(),
	})
	logger.Info("Iniciando atualização das métricas das lojas")

	if s.latency > 0 {
		s.sleep(s.latency)
	}

	stores := s.repo.ListAll()
	generated := make(map[string]domain.OrderMetrics, len(stores))
	for _, store := range stores {
		generated[store.ID] = s.generator.Generate(store.ID, dateRange)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.appliedSeq {
		s.metrics.IncRun(trigger, metrics.OutcomeSuperseded)
		logger.WithField("applied_seq", s.appliedSeq).Warn("Atualização descartada, já existe resultado mais recente")
		return nil, NewStoreError(ErrRefreshSuperseded, apiErrors.ErrRefreshSuperseded, dateRange.String())
	}

	updated := s.repo.ReplaceMetrics(generated)

	now := s.now()
	applied := dateRange
	s.appliedSeq = seq
	s.lastUpdated = &now
	s.dateRange = &applied
	s.runID = runID

	global := domain.Aggregate(updated, dateRange)
	s.metrics.SetGlobalRevenue(global.TotalRevenue)
	s.metrics.IncRun(trigger, metrics.OutcomeSuccess)

	logger.WithFields(logrus.Fields{
		"stores":        global.TotalStores,
		"total_orders":  global.TotalOrders,
		"total_revenue": global.TotalRevenue,
	}).Info("Atualização das métricas das lojas concluída")

	return &refreshResult{stores: updated}, nil
}

// UpdateFields altera os dados de cobrança da loja sem tocar nas métricas
func (s *Service) UpdateFields(request *domain.UpdateStoreRequest) (*domain.StoreMetrics, error) {
	if request == nil || request.IsEmpty() {
		return nil, NewStoreError(ErrEmptyUpdate, apiErrors.ErrMissingRequiredData, "")
	}

	updated, ok := s.repo.UpdateFields(request)
	if !ok {
		return nil, NewStoreErrorWithID(ErrStoreNotFound, apiErrors.ErrStoreNotFound, request.ID, "")
	}

	logrus.WithField("store_id", request.ID).Info("Dados de cobrança da loja atualizados")

	return &updated, nil
}

func (s *Service) ListAll() []domain.StoreMetrics {
	return s.repo.ListAll()
}

func (s *Service) FindByID(storeID string) (domain.StoreMetrics, bool) {
	return s.repo.FindByID(storeID)
}

// CurrentGlobalMetrics recalcula o consolidado a partir do conjunto atual.
// Retorna nil enquanto nenhuma atualização foi aplicada.
func (s *Service) CurrentGlobalMetrics() *domain.GlobalMetrics {
	return s.Snapshot().GlobalMetrics
}

// Snapshot lê lojas, consolidado e estado sob o mesmo lock de leitura. A
// troca de métricas de RefreshAll acontece sob o lock de escrita, então
// nenhuma atualização é aplicada no meio da leitura.
func (s *Service) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := domain.Snapshot{
		Stores: s.repo.ListAll(),
		Status: s.statusLocked(),
	}
	if s.dateRange != nil {
		global := domain.Aggregate(snapshot.Stores, *s.dateRange)
		snapshot.GlobalMetrics = &global
	}

	return snapshot
}

// CurrentDateRange retorna o período da última atualização aplicada
func (s *Service) CurrentDateRange() (domain.DateRange, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dateRange == nil {
		return domain.DateRange{}, false
	}
	return *s.dateRange, true
}

func (s *Service) Status() domain.DashboardStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.statusLocked()
}

// statusLocked exige s.mu já adquirido
func (s *Service) statusLocked() domain.DashboardStatus {
	status := domain.DashboardStatus{
		Loading: s.inFlight > 0,
		RunID:   s.runID,
	}
	if s.lastUpdated != nil {
		lastUpdated := *s.lastUpdated
		status.LastUpdated = &lastUpdated
	}
	if s.dateRange != nil {
		dateRange := *s.dateRange
		status.DateRange = &dateRange
	}

	return status
}

// Dashboard monta a visão do painel. Com storeID informado a lista contém
// apenas essa loja (ou fica vazia se ela não existir); o consolidado é
// sempre de todas as lojas.
func (s *Service) Dashboard(storeID string) *domain.DashboardResponse {
	snapshot := s.Snapshot()

	stores := snapshot.Stores
	var selected *string
	if storeID != "" {
		selected = &storeID
		stores = filterByID(stores, storeID)
	}

	response := &domain.DashboardResponse{
		Stores:        stores,
		GlobalMetrics: snapshot.GlobalMetrics,
		Loading:       snapshot.Status.Loading,
		DateRange:     snapshot.Status.DateRange,
		SelectedStore: selected,
	}
	if snapshot.Status.LastUpdated != nil {
		response.LastUpdated = snapshot.Status.LastUpdated.UTC().Format(time.RFC3339)
	}

	return response
}

func filterByID(stores []domain.StoreMetrics, storeID string) []domain.StoreMetrics {
	filtered := make([]domain.StoreMetrics, 0, 1)
	for _, store := range stores {
		if store.ID == storeID {
			filtered = append(filtered, store)
		}
	}
	return filtered
}
