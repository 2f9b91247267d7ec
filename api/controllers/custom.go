package controllers

import (
	"net/http"

	"github.com/blvshy/doodleart-backend/api/middleware"
	"github.com/blvshy/doodleart-backend/api/responses"
	"github.com/blvshy/doodleart-backend/api/validators"
	"github.com/blvshy/doodleart-backend/internal/cart"
	"github.com/blvshy/doodleart-backend/internal/custom"
	"github.com/blvshy/doodleart-backend/internal/notifications"
	"github.com/blvshy/doodleart-backend/pkg/enums"
	pkgerrors "github.com/blvshy/doodleart-backend/pkg/errors"
	"github.com/blvshy/doodleart-backend/pkg/logger"
)

type customOrderPayload struct {
	Style       string `json:"style" validate:"required"`
	Size        string `json:"size" validate:"required"`
	Deadline    string `json:"deadline" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (p customOrderPayload) toInput() (custom.OrderInput, error) {
	details := map[string]string{}

	style, err := enums.ParseCustomStyle(p.Style)
	if err != nil {
		details["style"] = "is invalid"
	}
	size, err := enums.ParseCustomSize(p.Size)
	if err != nil {
		details["size"] = "is invalid"
	}
	deadline, err := enums.ParseCustomDeadline(p.Deadline)
	if err != nil {
		details["deadline"] = "is invalid"
	}

	if len(details) > 0 {
		return custom.OrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid custom order selection").WithDetails(details)
	}

	return custom.OrderInput{
		Style:       style,
		Size:        size,
		Deadline:    deadline,
		Description: p.Description,
	}, nil
}

// CustomOptions returns the selectable styles, sizes, and deadlines.
func CustomOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, custom.ListOptions())
	}
}

// CustomQuote prices a selection without creating a cart line.
func CustomQuote(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload struct {
			Style    string `json:"style"`
			Size     string `json:"size"`
			Deadline string `json:"deadline"`
		}
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		style, _ := enums.ParseCustomStyle(payload.Style)
		size, _ := enums.ParseCustomSize(payload.Size)
		deadline, _ := enums.ParseCustomDeadline(payload.Deadline)

		price, err := custom.Quote(style, size, deadline)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]int{"price": price})
	}
}

// CustomOrderCreate builds a custom order line and adds it to the cart.
// Every submission gets its own line, even when the selections match an
// earlier one.
func CustomOrderCreate(carts *cart.Registry, notifier notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil || notifier == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		var payload customOrderPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := custom.BuildItem(input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		line := carts.Get(sessionID).Add(item)
		notifier.Push(sessionID, notifications.KindSuccess, "Custom doodle added to cart!")

		responses.WriteSuccessStatus(w, http.StatusCreated, line)
	}
}
