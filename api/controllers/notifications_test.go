package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blvshy/doodleart-backend/internal/notifications"
)

func TestNotificationsDrain(t *testing.T) {
	t.Parallel()

	svc := notifications.NewService(0)
	ctx, sid := sessionContext(t)

	drain := func() []notifications.Toast {
		rec := httptest.NewRecorder()
		NotificationsDrain(svc, nil).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil).WithContext(ctx))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body struct {
			Data struct {
				Notifications []notifications.Toast `json:"notifications"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return body.Data.Notifications
	}

	if got := drain(); len(got) != 0 {
		t.Fatalf("expected empty feed, got %+v", got)
	}

	svc.Push(sid, notifications.KindSuccess, "Payment successful! 🎉")

	got := drain()
	if len(got) != 1 || got[0].Message != "Payment successful! 🎉" {
		t.Fatalf("unexpected toasts: %+v", got)
	}

	if got := drain(); len(got) != 0 {
		t.Fatalf("drain should clear the feed, got %+v", got)
	}
}
