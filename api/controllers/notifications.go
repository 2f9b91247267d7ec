package controllers

import (
	"net/http"

	"github.com/blvshy/doodleart-backend/api/middleware"
	"github.com/blvshy/doodleart-backend/api/responses"
	"github.com/blvshy/doodleart-backend/internal/notifications"
	pkgerrors "github.com/blvshy/doodleart-backend/pkg/errors"
	"github.com/blvshy/doodleart-backend/pkg/logger"
)

// NotificationsDrain returns and clears the buyer's pending toasts.
func NotificationsDrain(svc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		toasts := svc.Drain(sessionID)
		if toasts == nil {
			toasts = []notifications.Toast{}
		}
		responses.WriteSuccess(w, map[string]any{"notifications": toasts})
	}
}
