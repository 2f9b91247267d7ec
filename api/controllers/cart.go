package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/blvshy/doodleart-backend/api/middleware"
	"github.com/blvshy/doodleart-backend/api/responses"
	"github.com/blvshy/doodleart-backend/api/validators"
	"github.com/blvshy/doodleart-backend/internal/cart"
	"github.com/blvshy/doodleart-backend/internal/catalog"
	"github.com/blvshy/doodleart-backend/internal/notifications"
	pkgerrors "github.com/blvshy/doodleart-backend/pkg/errors"
	"github.com/blvshy/doodleart-backend/pkg/logger"
)

type addCartItemPayload struct {
	ItemID int `json:"item_id" validate:"required,min=1"`
}

type updateCartLinePayload struct {
	Quantity int `json:"quantity" validate:"min=0,max=99"`
}

// CartGet returns the buyer's current cart snapshot.
func CartGet(carts *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		responses.WriteSuccess(w, carts.Get(sessionID).Snapshot())
	}
}

// CartAddItem puts a catalog artwork into the cart, merging with an
// existing line for the same artwork. The buyer gets a toast for every
// add, merged or not.
func CartAddItem(carts *cart.Registry, catalogSvc catalog.Service, notifier notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil || catalogSvc == nil || notifier == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := catalogSvc.GetByID(payload.ItemID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		line := carts.Get(sessionID).Add(cart.Item{
			Key:      cart.CatalogLineKey(item.ID),
			ItemID:   item.ID,
			Title:    item.Title,
			Price:    item.Price,
			Image:    item.Image,
			Category: item.Category,
		})
		notifier.Push(sessionID, notifications.KindSuccess, item.Title+" added to cart!")

		responses.WriteSuccessStatus(w, http.StatusCreated, line)
	}
}

// CartUpdateLine sets the quantity of one line. Quantity zero removes
// the line.
func CartUpdateLine(carts *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		key := strings.TrimSpace(chi.URLParam(r, "key"))
		if key == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line key is required"))
			return
		}

		var payload updateCartLinePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		store := carts.Get(sessionID)
		if !store.UpdateQuantity(key, payload.Quantity) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found"))
			return
		}

		responses.WriteSuccess(w, store.Snapshot())
	}
}

// CartRemoveLine drops one line from the cart.
func CartRemoveLine(carts *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		key := strings.TrimSpace(chi.URLParam(r, "key"))
		if key == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line key is required"))
			return
		}

		store := carts.Get(sessionID)
		if !store.Remove(key) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found"))
			return
		}

		responses.WriteSuccess(w, store.Snapshot())
	}
}

// CartClear empties the cart.
func CartClear(carts *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "buyer session missing"))
			return
		}

		store := carts.Get(sessionID)
		store.Clear()
		responses.WriteSuccess(w, store.Snapshot())
	}
}
