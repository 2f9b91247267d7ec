package controllers

import (
	"net/http"

	"github.com/blvshy/doodleart-backend/api/responses"
	"github.com/blvshy/doodleart-backend/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-DoodleArt-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}
