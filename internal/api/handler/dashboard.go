package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/vfg2006/heladeria-dashboard/internal/scheduler"
	"github.com/vfg2006/heladeria-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/heladeria-dashboard/internal/view/dashboard"
	"github.com/vfg2006/heladeria-dashboard/pkg/apiErrors"
	"github.com/vfg2006/heladeria-dashboard/pkg/log"
	"github.com/vfg2006/heladeria-dashboard/pkg/metrics"
)

// DashboardReloader dispara a recarga manual e informa o status do agendador
type DashboardReloader interface {
	TriggerManualReload() error
	GetStatus() map[string]any
}

// DashboardPage renderiza o painel em HTML
func DashboardPage(reporter reporting.Reporter, view dashboard.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := view.Render(&buf, reporter.GetDashboard()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar o painel")
			apiErrors.WriteError(w, apiErrors.ErrDashboardRender, "Erro ao renderizar o painel", nil)
			return
		}

		metrics.DashboardRendersTotal.WithLabelValues(metrics.FormatHTML).Inc()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar o painel")
		}
	}
}

// GetDashboardData retorna o objeto de configuração atual do painel
func GetDashboardData(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reporter.GetDashboard())
	}
}

// GetDashboardView retorna o modelo da página já calculado (cards, barras, ranking)
func GetDashboardView(reporter reporting.Reporter, view dashboard.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := view.Build(reporter.GetDashboard())
		metrics.DashboardRendersTotal.WithLabelValues(metrics.FormatJSON).Inc()
		writeJSON(w, http.StatusOK, page)
	}
}

// ReloadDashboard relê os dados do painel imediatamente
func ReloadDashboard(reloader DashboardReloader, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := reloader.TriggerManualReload()
		if err != nil {
			logger := log.ForContext(r.Context()).WithError(err)

			var dashErr *reporting.DashboardError
			switch {
			case errors.Is(err, scheduler.ErrReloadInProgress):
				apiErrors.WriteError(w, apiErrors.ErrReloadInProgress, "Recarga do painel já em andamento", nil)
			case errors.As(err, &dashErr):
				logger.Warn("Recarga manual do painel rejeitada")
				apiErrors.WriteError(w, dashErr.Code, dashErr.Err.Error(), map[string]any{"reason": dashErr.Details})
			default:
				logger.Error("Erro inesperado na recarga do painel")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recarregar o painel", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Painel recarregado com sucesso",
			"status":  reporter.Status(),
		})
	}
}

// GetDashboardStatus retorna o estado da última recarga e do agendador
func GetDashboardStatus(reloader DashboardReloader, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"dashboard": reporter.Status(),
			"scheduler": reloader.GetStatus(),
		})
	}
}
