package service

import (
	"context"
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/refund"

	"lifehub/internal/entities"
	"lifehub/internal/repository"
)

// premiumPriceCent is the one-time upgrade price in euro cents.
const premiumPriceCent = 4900

type BillingService struct {
	Repo     *repository.BillingRepository
	UserRepo repository.UserRepository
}

func NewBillingService(repo *repository.BillingRepository, userRepo repository.UserRepository) *BillingService {
	return &BillingService{Repo: repo, UserRepo: userRepo}
}

// CreatePremiumCheckout opens a Stripe checkout session for the premium plan
// and records it against the user.
func (s *BillingService) CreatePremiumCheckout(ctx context.Context, userID string) (*entities.CheckoutResponse, error) {
	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Plan == "premium" {
		return nil, fmt.Errorf("user %s is already on the premium plan", userID)
	}

	baseURL := os.Getenv("CHECKOUT_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("eur"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("LifeHub Premium"),
					},
					UnitAmount: stripe.Int64(premiumPriceCent),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(baseURL + "/billing/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(baseURL + "/billing/cancelled?session_id={CHECKOUT_SESSION_ID}"),
		CustomerEmail: stripe.String(user.Email),
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	if err := s.Repo.SetCheckoutSession(ctx, userID, sess.ID, "pending"); err != nil {
		return nil, fmt.Errorf("recording checkout session: %w", err)
	}
	return &entities.CheckoutResponse{URL: sess.URL, SessionID: sess.ID}, nil
}

// ActivatePremiumBySessionID is called from the Stripe webhook once the
// checkout completes.
func (s *BillingService) ActivatePremiumBySessionID(ctx context.Context, sessionID string) (string, error) {
	return s.Repo.UpdatePlanBySessionID(ctx, sessionID, "premium", "succeeded")
}

// RevokePremiumBySessionID downgrades the user when the charge was refunded.
func (s *BillingService) RevokePremiumBySessionID(ctx context.Context, sessionID string) (string, error) {
	return s.Repo.UpdatePlanBySessionID(ctx, sessionID, "free", "refunded")
}

// SessionIDByPaymentIntentID looks up the checkout session behind a
// PaymentIntent, used when Stripe reports a refund by charge.
func (s *BillingService) SessionIDByPaymentIntentID(paymentIntentID string) (string, error) {
	params := &stripe.CheckoutSessionListParams{
		PaymentIntent: &paymentIntentID,
	}
	it := session.List(params)
	for it.Next() {
		return it.CheckoutSession().ID, nil
	}
	if err := it.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no session found for PaymentIntent %s", paymentIntentID)
}

// RefundBySessionID refunds the payment behind a checkout session.
func (s *BillingService) RefundBySessionID(sessionID string) error {
	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return err
	}
	if sess.PaymentIntent == nil || sess.PaymentIntent.ID == "" {
		return fmt.Errorf("no PaymentIntent found for session %s", sessionID)
	}
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(sess.PaymentIntent.ID),
	}
	_, err = refund.New(params)
	return err
}
