package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/blvshy/doodleart-backend/internal/catalog"
	"github.com/blvshy/doodleart-backend/pkg/types"
)

func TestCatalogList(t *testing.T) {
	t.Parallel()

	svc := catalog.NewService()

	t.Run("all items", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CatalogList(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body struct {
			Data struct {
				Items []catalog.Item `json:"items"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.Data.Items) != 8 {
			t.Fatalf("expected 8 items, got %d", len(body.Data.Items))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CatalogList(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?category=nature", nil))

		var body struct {
			Data struct {
				Items []catalog.Item `json:"items"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, item := range body.Data.Items {
			if item.Category != "nature" {
				t.Fatalf("unexpected category %q", item.Category)
			}
		}
		if len(body.Data.Items) == 0 {
			t.Fatal("expected at least one nature item")
		}
	})

	t.Run("limit caps the list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CatalogList(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?limit=3", nil))

		var body struct {
			Data struct {
				Items []catalog.Item `json:"items"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.Data.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(body.Data.Items))
		}
	})

	t.Run("non-numeric limit rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CatalogList(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?limit=abc", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CatalogList(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?category=bogus", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCatalogGet(t *testing.T) {
	t.Parallel()

	svc := catalog.NewService()

	makeRequest := func(itemID string) *httptest.ResponseRecorder {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("itemId", itemID)
		ctx := context.WithValue(context.Background(), chi.RouteCtxKey, routeCtx)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/"+itemID, nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		CatalogGet(svc, nil).ServeHTTP(rec, req)
		return rec
	}

	t.Run("found", func(t *testing.T) {
		rec := makeRequest("1")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body struct {
			Data catalog.Item `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Data.ID != 1 || body.Data.Price != 249 {
			t.Fatalf("unexpected item: %+v", body.Data)
		}
	})

	t.Run("missing", func(t *testing.T) {
		rec := makeRequest("999")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		var body types.ErrorEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error.Code != "NOT_FOUND" {
			t.Fatalf("unexpected error code %q", body.Error.Code)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := makeRequest("abc")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
