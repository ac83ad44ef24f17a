package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/heladeria-dashboard/pkg/metrics"
)

// UnmatchedRoute é o rótulo das requisições que não casam com nenhuma rota
const UnmatchedRoute = "unmatched"

type routeKey struct{}

type routeLabel struct {
	value string
}

// SetRoute registra o padrão da rota atendida para os rótulos das métricas
func SetRoute(r *http.Request, route string) {
	if label, ok := r.Context().Value(routeKey{}).(*routeLabel); ok {
		label.value = route
	}
}

// MetricsMiddleware conta requisições e mede a duração por método e rota
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			label := &routeLabel{value: UnmatchedRoute}
			r = r.WithContext(context.WithValue(r.Context(), routeKey{}, label))

			rec := newStatusRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(rec, r)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, label.value, strconv.Itoa(rec.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, label.value).Observe(time.Since(startTime).Seconds())
		})
	}
}
