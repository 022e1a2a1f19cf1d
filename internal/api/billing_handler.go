package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"lifehub/internal/auth"
	"lifehub/internal/service"
)

type BillingHandler struct {
	StripeSecret string
	Service      *service.BillingService
}

func NewBillingHandler(stripeSecret string, svc *service.BillingService) *BillingHandler {
	return &BillingHandler{StripeSecret: stripeSecret, Service: svc}
}

// CreateCheckout opens a Stripe checkout session for the premium plan.
func (h *BillingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.CreatePremiumCheckout(r.Context(), auth.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleWebhook processes signed Stripe events for plan changes.
func (h *BillingHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading body: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, h.StripeSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("Error parsing checkout.session: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if sess.ID == "" {
			log.Printf("No session ID in checkout.session.completed")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		userID, err := h.Service.ActivatePremiumBySessionID(r.Context(), sess.ID)
		if err != nil {
			log.Printf("DB error: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		log.Printf("Premium activated for user %s (session %s)", userID, sess.ID)

	case "charge.refunded":
		var charge stripe.Charge
		json.Unmarshal(event.Data.Raw, &charge)
		if charge.PaymentIntent != nil && charge.PaymentIntent.ID != "" {
			sessionID, err := h.Service.SessionIDByPaymentIntentID(charge.PaymentIntent.ID)
			if err != nil {
				log.Printf("No session_id found for PaymentIntent %s: %v", charge.PaymentIntent.ID, err)
				return
			}
			userID, err := h.Service.RevokePremiumBySessionID(r.Context(), sessionID)
			if err != nil {
				log.Printf("DB error: %v", err)
				return
			}
			log.Printf("Premium revoked for user %s (session %s)", userID, sessionID)
		}
	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}
