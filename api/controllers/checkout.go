package controllers

import (
	"net/http"

	"github.com/blvshy/doodleart-backend/api/middleware"
	"github.com/blvshy/doodleart-backend/api/responses"
	"github.com/blvshy/doodleart-backend/api/validators"
	"github.com/blvshy/doodleart-backend/internal/checkout"
	pkgerrors "github.com/blvshy/doodleart-backend/pkg/errors"
	"github.com/blvshy/doodleart-backend/pkg/logger"
)

// CheckoutOpen starts (or returns) the buyer's checkout session with the
// cart contents frozen at this moment.
func CheckoutOpen(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		summary, err := svc.Open(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, summary)
	}
}

// CheckoutGet reports the current checkout state.
func CheckoutGet(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		summary, err := svc.Get(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// CheckoutSubmit validates the buyer's details and kicks off the
// simulated payment.
func CheckoutSubmit(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		var details checkout.BuyerDetails
		if err := validators.DecodeJSONBody(r, &details); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		summary, err := svc.Submit(ctx, sessionID, details)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, summary)
	}
}

// CheckoutClose abandons the session. A close that lands while payment
// is still processing cancels the pending confirmation.
func CheckoutClose(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		if err := svc.Close(ctx, sessionID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"closed": true})
	}
}
