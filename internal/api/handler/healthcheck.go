package handler

import (
	"net/http"
	"time"
)

// HealthcheckHandler responde com o identificador da instância e o horário atual
func HealthcheckHandler(instanceID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":      "ok",
			"instance_id": instanceID,
			"time":        time.Now().Format(time.RFC3339),
		})
	})
}
