package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/blvshy/doodleart-backend/api/responses"
	"github.com/blvshy/doodleart-backend/api/validators"
	"github.com/blvshy/doodleart-backend/internal/catalog"
	"github.com/blvshy/doodleart-backend/pkg/enums"
	pkgerrors "github.com/blvshy/doodleart-backend/pkg/errors"
	"github.com/blvshy/doodleart-backend/pkg/logger"
)

// CatalogList returns the artworks, optionally filtered by category and
// a free-text query. A limit of 0 means no cap.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		filters := catalog.ListFilters{
			Query: strings.TrimSpace(r.URL.Query().Get("q")),
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
			category, err := enums.ParseCategory(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category").
					WithDetails(map[string]string{"category": "is invalid"}))
				return
			}
			filters.Category = &category
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 100)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items := svc.List(filters)
		if limit > 0 && limit < len(items) {
			items = items[:limit]
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}

// CatalogGet returns a single artwork by its numeric id.
func CatalogGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		raw := strings.TrimSpace(chi.URLParam(r, "itemId"))
		id, err := strconv.Atoi(raw)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "item id must be numeric"))
			return
		}

		item, err := svc.GetByID(id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}
