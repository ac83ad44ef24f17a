package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/heladeria-dashboard/internal/config"
	"github.com/vfg2006/heladeria-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/heladeria-dashboard/pkg/metrics"
)

// ErrReloadInProgress indica que já existe uma recarga em execução
var ErrReloadInProgress = errors.New("dashboard reload already in progress")

// DashboardReloadConfig representa a configuração do agendador de recarga do painel
type DashboardReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardReloadService agenda a releitura periódica do arquivo de dados do painel
type DashboardReloadService struct {
	scheduler             *gocron.Scheduler
	config                DashboardReloadConfig
	reporter              reporting.Reporter
	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastReloadError       string
}

// NewDashboardReloadService cria uma nova instância do serviço de recarga do painel
func NewDashboardReloadService(reporter reporting.Reporter, appConfig *config.Config) *DashboardReloadService {
	reloadConfig := DashboardReloadConfig{
		CronSchedule: appConfig.Dashboard.ReloadCron,
		Enabled:      appConfig.Dashboard.ReloadEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reloadConfig.CronSchedule,
		"reload_enabled": reloadConfig.Enabled,
	}).Info("Configuração do agendador de recarga do painel carregada")

	return &DashboardReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		reporter:  reporter,
	}
}

// Start inicia o agendador
func (s *DashboardReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga agendada do painel desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do painel")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.reloadDashboard(); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Warn("Recarga agendada do painel falhou, mantendo dados anteriores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do painel: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do painel")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualReload executa uma recarga imediata e devolve o resultado
func (s *DashboardReloadService) TriggerManualReload() error {
	logrus.Info("Iniciando recarga manual do painel")
	return s.reloadDashboard()
}

func (s *DashboardReloadService) reloadDashboard() error {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga do painel já em andamento, ignorando")
		metrics.DashboardReloadsTotal.WithLabelValues(metrics.ReloadSkipped).Inc()
		return ErrReloadInProgress
	}
	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()
	s.reloadMutex.Unlock()

	err := s.reporter.Reload()

	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	s.reloadRunning = false
	s.lastReloadCompletedAt = time.Now()

	if err != nil {
		s.lastReloadError = err.Error()
		metrics.DashboardReloadsTotal.WithLabelValues(metrics.ReloadError).Inc()
		return err
	}

	s.lastReloadError = ""
	metrics.DashboardReloadsTotal.WithLabelValues(metrics.ReloadSuccess).Inc()

	logrus.WithField("duration", s.lastReloadCompletedAt.Sub(s.lastReloadStartedAt).String()).Info("Recarga do painel concluída")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DashboardReloadService) GetStatus() map[string]any {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	return map[string]any{
		"reload_enabled":           s.config.Enabled,
		"reload_cron":              s.config.CronSchedule,
		"reload_running":           s.reloadRunning,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
		"last_reload_error":        s.lastReloadError,
	}
}
