package payment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"stayfront/internal/domain"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// StripeProvider implements Provider on top of Stripe Checkout.
type StripeProvider struct {
	successURL string
	cancelURL  string
	logger     *zap.Logger
}

func NewStripeProvider(apiKey, successURL, cancelURL string, logger *zap.Logger) *StripeProvider {
	stripe.Key = apiKey
	return &StripeProvider{
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params:            stripe.Params{Context: ctx},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(p.successURL),
		CancelURL:         stripe.String(p.cancelURL),
		ClientReferenceID: stripe.String(req.BookingID),
		CustomerEmail:     stripe.String(req.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(int64(math.Round(req.Amount * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create checkout session: %v", ErrProvider, err)
	}

	p.logger.Info("checkout session created",
		zap.String("booking_id", req.BookingID),
		zap.String("provider_session_id", s.ID),
	)

	return &CheckoutSession{ProviderSessionID: s.ID, CheckoutURL: s.URL}, nil
}

func (p *StripeProvider) GetSessionStatus(ctx context.Context, providerSessionID string) (*SessionStatus, error) {
	s, err := session.Get(providerSessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get checkout session: %v", ErrProvider, err)
	}

	switch {
	case s.Status == stripe.CheckoutSessionStatusComplete && s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		return &SessionStatus{Status: domain.PaymentSessionPaid}, nil
	case s.Status == stripe.CheckoutSessionStatusExpired:
		return &SessionStatus{Status: domain.PaymentSessionCancelled, Reason: "checkout session expired"}, nil
	default:
		return &SessionStatus{Status: domain.PaymentSessionPending}, nil
	}
}
