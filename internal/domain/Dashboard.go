package domain

import "time"

// DashboardStatus é o estado da sessão exposto para a interface
type DashboardStatus struct {
	Loading     bool       `json:"loading"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	DateRange   *DateRange `json:"date_range,omitempty"`
	RunID       string     `json:"run_id,omitempty"`
}

type DashboardResponse struct {
	Stores        []StoreMetrics `json:"stores"`
	GlobalMetrics *GlobalMetrics `json:"global_metrics"`
	Loading       bool           `json:"loading"`
	LastUpdated   string         `json:"last_updated"`
	DateRange     *DateRange     `json:"date_range,omitempty"`
	SelectedStore *string        `json:"selected_store,omitempty"`
}

// Snapshot é uma leitura consistente da sessão: lojas, consolidado e estado
// vêm da mesma atualização aplicada
type Snapshot struct {
	Stores        []StoreMetrics
	GlobalMetrics *GlobalMetrics
	Status        DashboardStatus
}

// ExportFile é um arquivo gerado pela exportação
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
