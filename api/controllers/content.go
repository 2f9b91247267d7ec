package controllers

import (
	"net/http"

	"github.com/blvshy/doodleart-backend/api/responses"
	"github.com/blvshy/doodleart-backend/internal/content"
)

func ContentFAQ(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"faq": svc.FAQ()})
	}
}

func ContentTeam(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"team":   svc.Team(),
			"values": svc.Values(),
		})
	}
}

func ContentPaymentMethods(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"payment_methods": svc.PaymentMethods()})
	}
}
