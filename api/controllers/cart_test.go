package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/blvshy/doodleart-backend/api/middleware"
	"github.com/blvshy/doodleart-backend/internal/cart"
	"github.com/blvshy/doodleart-backend/internal/catalog"
	"github.com/blvshy/doodleart-backend/internal/notifications"
)

func sessionContext(t *testing.T) (context.Context, string) {
	t.Helper()
	sid := uuid.NewString()
	return middleware.WithSessionID(context.Background(), sid), sid
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) cart.Snapshot {
	t.Helper()
	var body struct {
		Data cart.Snapshot `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body.Data
}

func TestCartAddItem(t *testing.T) {
	t.Parallel()

	carts := cart.NewRegistry()
	catalogSvc := catalog.NewService()
	notifier := notifications.NewService(0)
	ctx, sid := sessionContext(t)

	addItem := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)).WithContext(ctx)
		rec := httptest.NewRecorder()
		CartAddItem(carts, catalogSvc, notifier, nil).ServeHTTP(rec, req)
		return rec
	}

	t.Run("adds catalog item", func(t *testing.T) {
		rec := addItem(`{"item_id":1}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		snap := carts.Get(sid).Snapshot()
		if snap.TotalQuantity != 1 || snap.TotalPrice != 249 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		toasts := notifier.Drain(sid)
		if len(toasts) != 1 || toasts[0].Message != "Cloud Dreams added to cart!" {
			t.Fatalf("expected item-added toast, got %+v", toasts)
		}
	})

	t.Run("same item merges", func(t *testing.T) {
		addItem(`{"item_id":1}`)
		snap := carts.Get(sid).Snapshot()
		if len(snap.Lines) != 1 || snap.Lines[0].Quantity != 2 {
			t.Fatalf("expected merged line with quantity 2, got %+v", snap.Lines)
		}
	})

	t.Run("unknown item is 404", func(t *testing.T) {
		notifier.Drain(sid)
		rec := addItem(`{"item_id":999}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if toasts := notifier.Drain(sid); len(toasts) != 0 {
			t.Fatalf("rejected add must not toast, got %+v", toasts)
		}
	})

	t.Run("missing item id is 400", func(t *testing.T) {
		rec := addItem(`{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCartUpdateAndRemoveLine(t *testing.T) {
	t.Parallel()

	carts := cart.NewRegistry()
	catalogSvc := catalog.NewService()
	ctx, sid := sessionContext(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"item_id":2}`)).WithContext(ctx)
	CartAddItem(carts, catalogSvc, notifications.NewService(0), nil).ServeHTTP(httptest.NewRecorder(), req)
	key := cart.CatalogLineKey(2)

	withKey := func(method, body, lineKey string) *httptest.ResponseRecorder {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("key", lineKey)
		reqCtx := context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
		req := httptest.NewRequest(method, "/api/v1/cart/items/"+lineKey, strings.NewReader(body)).WithContext(reqCtx)
		rec := httptest.NewRecorder()
		switch method {
		case http.MethodPatch:
			CartUpdateLine(carts, nil).ServeHTTP(rec, req)
		case http.MethodDelete:
			CartRemoveLine(carts, nil).ServeHTTP(rec, req)
		}
		return rec
	}

	t.Run("set quantity", func(t *testing.T) {
		rec := withKey(http.MethodPatch, `{"quantity":5}`, key)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if snap := decodeSnapshot(t, rec); snap.TotalQuantity != 5 {
			t.Fatalf("expected quantity 5, got %+v", snap)
		}
	})

	t.Run("quantity zero removes", func(t *testing.T) {
		rec := withKey(http.MethodPatch, `{"quantity":0}`, key)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if snap := decodeSnapshot(t, rec); len(snap.Lines) != 0 {
			t.Fatalf("expected empty cart, got %+v", snap)
		}
	})

	t.Run("unknown key is 404", func(t *testing.T) {
		rec := withKey(http.MethodPatch, `{"quantity":3}`, "item:42")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		rec = withKey(http.MethodDelete, "", "item:42")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("remove existing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"item_id":3}`)).WithContext(ctx)
		CartAddItem(carts, catalogSvc, notifications.NewService(0), nil).ServeHTTP(httptest.NewRecorder(), req)

		rec := withKey(http.MethodDelete, "", cart.CatalogLineKey(3))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := carts.Get(sid).Snapshot().TotalQuantity; got != 0 {
			t.Fatalf("expected empty cart, got quantity %d", got)
		}
	})
}

func TestCartGetAndClear(t *testing.T) {
	t.Parallel()

	carts := cart.NewRegistry()
	catalogSvc := catalog.NewService()
	ctx, _ := sessionContext(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"item_id":1}`)).WithContext(ctx)
	CartAddItem(carts, catalogSvc, notifications.NewService(0), nil).ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	CartGet(carts, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil).WithContext(ctx))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if snap := decodeSnapshot(t, rec); snap.TotalQuantity != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	rec = httptest.NewRecorder()
	CartClear(carts, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil).WithContext(ctx))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if snap := decodeSnapshot(t, rec); len(snap.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", snap)
	}
}

func TestCartRequiresSession(t *testing.T) {
	t.Parallel()

	carts := cart.NewRegistry()

	rec := httptest.NewRecorder()
	CartGet(carts, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without session middleware, got %d", rec.Code)
	}
}
