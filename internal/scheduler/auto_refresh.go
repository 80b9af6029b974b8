package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/frontrow-invoice-api/internal/config"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
	"github.com/vfg2006/frontrow-invoice-api/pkg/metrics"
)

//go:generate mockgen -source=auto_refresh.go -destination=mocks/refresher.go -package=mocks

// Refresher é o subconjunto do painel usado pelo agendador
type Refresher interface {
	RefreshAll(ctx context.Context, dateRange domain.DateRange, trigger string) ([]domain.StoreMetrics, error)
	CurrentDateRange() (domain.DateRange, bool)
}

// AutoRefreshConfig representa a configuração da atualização automática
type AutoRefreshConfig struct {
	CronSchedule string
	LookbackDays int
	Enabled      bool
}

// AutoRefreshService regenera periodicamente as métricas das lojas
type AutoRefreshService struct {
	scheduler *gocron.Scheduler
	config    AutoRefreshConfig
	refresher Refresher
	now       func() time.Time
	ctx       context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastDateRange       *domain.DateRange
}

func NewAutoRefreshService(refresher Refresher, appConfig *config.Config) *AutoRefreshService {
	refreshConfig := AutoRefreshConfig{
		CronSchedule: appConfig.AutoRefresh.CronSchedule,
		LookbackDays: appConfig.Refresh.LookbackDays,
		Enabled:      appConfig.AutoRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"lookback_days": refreshConfig.LookbackDays,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração da atualização automática carregada")

	return &AutoRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    refreshConfig,
		refresher: refresher,
		now:       time.Now,
		ctx:       context.Background(),
	}
}

// Start agenda a atualização e para o agendador quando o contexto termina
func (s *AutoRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização automática desabilitada por configuração")
		return nil
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização automática")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshCurrentRange()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização automática: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização automática")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshCurrentRange atualiza as métricas do período em exibição
func (s *AutoRefreshService) refreshCurrentRange() {
	if !s.beginSync() {
		logrus.Info("Atualização automática já em andamento, ignorando")
		return
	}

	s.runSync()
}

// beginSync marca a execução como em andamento. Retorna false quando já
// existe uma execução.
func (s *AutoRefreshService) beginSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()

	return true
}

// runSync executa a atualização já marcada por beginSync
func (s *AutoRefreshService) runSync() {
	dateRange := s.rangeToRefresh(s.now())

	_, err := s.refresher.RefreshAll(s.ctx, dateRange, metrics.TriggerCron)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastDateRange = &dateRange
	s.lastSyncError = ""

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).WithField("date_range", dateRange.String()).Error("Erro na atualização automática das métricas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date_range": dateRange.String(),
		"duration":   s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("Atualização automática concluída")
}

// rangeToRefresh decide o período da execução. Sem período aplicado usa os
// últimos LookbackDays dias. Um período que termina ontem ou hoje avança
// até hoje mantendo o tamanho; períodos mais antigos são repetidos.
func (s *AutoRefreshService) rangeToRefresh(now time.Time) domain.DateRange {
	current, ok := s.refresher.CurrentDateRange()
	if !ok {
		return domain.DefaultDateRange(now, s.config.LookbackDays)
	}

	today := domain.DefaultDateRange(now, 0).End
	if current.End.Before(today.AddDate(0, 0, -1)) {
		return current
	}

	span := int(current.Days())
	return domain.DateRange{
		Start: today.AddDate(0, 0, -span),
		End:   today,
	}
}

// TriggerManualSync dispara a atualização fora do agendamento. Retorna false
// quando já existe uma execução em andamento.
func (s *AutoRefreshService) TriggerManualSync() bool {
	if !s.beginSync() {
		logrus.Info("Atualização automática já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando atualização automática manual")
	go s.runSync()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *AutoRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastSyncError != "" {
		status["last_sync_error"] = s.lastSyncError
	}
	if s.lastDateRange != nil {
		status["last_date_range"] = *s.lastDateRange
	}

	return status
}
