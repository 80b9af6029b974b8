// Package exporting gera os arquivos CSV e o relatório em texto das lojas
package exporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
	"github.com/vfg2006/frontrow-invoice-api/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Format string

const (
	FormatCSV    Format = "csv"
	FormatReport Format = "report"
)

const (
	csvContentType    = "text/csv; charset=utf-8"
	reportContentType = "text/plain; charset=utf-8"
)

// StoreReader é o subconjunto do painel usado pela exportação
type StoreReader interface {
	Snapshot() domain.Snapshot
}

type Exporter interface {
	Export(format Format, storeID string) (*domain.ExportFile, error)
}

type Service struct {
	reader  StoreReader
	prefix  string
	now     func() time.Time
	metrics *metrics.ExportMetrics
}

func NewService(reader StoreReader, prefix string, exportMetrics *metrics.ExportMetrics, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		reader:  reader,
		prefix:  prefix,
		now:     clock,
		metrics: exportMetrics,
	}
}

// Export gera o arquivo no formato pedido. storeID vazio exporta todas as
// lojas; o consolidado do relatório é sempre o de todas as lojas.
func (s *Service) Export(format Format, storeID string) (*domain.ExportFile, error) {
	snapshot := s.reader.Snapshot()

	stores := snapshot.Stores
	if storeID != "" {
		stores = selectStore(stores, storeID)
		if len(stores) == 0 {
			return nil, ErrStoreNotFound
		}
	}

	now := s.now()
	file := &domain.ExportFile{}

	switch format {
	case FormatCSV:
		file.Filename = s.filename(now, "csv")
		file.ContentType = csvContentType
		file.Content = []byte(ToCSV(stores))
	case FormatReport:
		file.Filename = s.filename(now, "txt")
		file.ContentType = reportContentType
		file.Content = []byte(ToTextReport(stores, snapshot.GlobalMetrics, now.UTC()))
	default:
		return nil, ErrUnknownFormat
	}

	s.metrics.Observe(string(format), len(file.Content))

	logrus.WithFields(logrus.Fields{
		"format":   format,
		"filename": file.Filename,
		"stores":   len(stores),
	}).Info("Exportação gerada")

	return file, nil
}

func (s *Service) filename(now time.Time, ext string) string {
	return s.prefix + "-" + now.UTC().Format(time.DateOnly) + "." + ext
}

func selectStore(stores []domain.StoreMetrics, storeID string) []domain.StoreMetrics {
	for _, store := range stores {
		if store.ID == storeID {
			return []domain.StoreMetrics{store}
		}
	}
	return nil
}
