package controllers

import (
	"net/http"

	"notes_api_go/config"
	"notes_api_go/models"
)

// HealthController обрабатывает проверку состояния сервера.
type HealthController struct {
	settings *config.Settings
}

// NewHealthController создает контроллер проверки состояния.
func NewHealthController(settings *config.Settings) *HealthController {
	return &HealthController{settings: settings}
}

// HealthCheck возвращает статус "ok" и метаданные приложения.
func (c *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		App:     c.settings.AppTitle,
		Version: c.settings.AppVersion,
	})
}
