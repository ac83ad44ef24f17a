package reporting

import (
	"time"

	"github.com/vfg2006/heladeria-dashboard/internal/domain"
)

// Reporter define a interface para obter e recarregar os dados do painel
type Reporter interface {
	// GetDashboard retorna o snapshot atual do painel
	GetDashboard() domain.Dashboard

	// Reload relê a fonte de dados e troca o snapshot se os dados forem válidos
	Reload() error

	// Status retorna o estado da última recarga
	Status() ReloadStatus
}

// ReloadStatus descreve a última recarga dos dados do painel
type ReloadStatus struct {
	Source        string     `json:"source"`
	LastStarted   *time.Time `json:"last_started,omitempty"`
	LastCompleted *time.Time `json:"last_completed,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
	Reloads       int        `json:"reloads"`
}
