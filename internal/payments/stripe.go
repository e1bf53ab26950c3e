// Package payments confirms and refunds card payments through Stripe.
package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

type paymentIntentAPI interface {
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type refundAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type Config struct {
	SecretKey string
}

type StripeProvider struct {
	logger  *slog.Logger
	intents paymentIntentAPI
	refunds refundAPI
}

func NewStripeProvider(logger *slog.Logger, cfg Config) (*StripeProvider, error) {
	key := strings.TrimSpace(cfg.SecretKey)
	if key == "" {
		return nil, errors.New("stripe: secret key is required")
	}
	sc := client.New(key, nil)
	return newStripeProvider(logger, sc.PaymentIntents, sc.Refunds), nil
}

func newStripeProvider(logger *slog.Logger, intents paymentIntentAPI, refunds refundAPI) *StripeProvider {
	return &StripeProvider{
		logger:  logger.With(slog.String("client", "stripe")),
		intents: intents,
		refunds: refunds,
	}
}

// ConfirmPayment reports whether the payment intent has been captured successfully.
func (p *StripeProvider) ConfirmPayment(ctx context.Context, intentID string) (bool, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := p.intents.Get(intentID, params)
	if err != nil {
		return false, fmt.Errorf("stripe: lookup payment intent: %w", err)
	}

	confirmed := intent.Status == stripe.PaymentIntentStatusSucceeded
	p.logger.Debug("payment intent checked",
		slog.String("payment_intent_id", intentID),
		slog.String("status", string(intent.Status)),
		slog.Bool("confirmed", confirmed),
	)
	return confirmed, nil
}

// RefundPayment refunds the intent. A zero amount refunds it in full.
func (p *StripeProvider) RefundPayment(ctx context.Context, req entities.RefundRequest) (entities.Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.PaymentIntentID),
	}
	params.Context = ctx
	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		params.SetIdempotencyKey(key)
	}
	if req.AmountMinor > 0 {
		params.Amount = stripe.Int64(req.AmountMinor)
	}

	refund, err := p.refunds.New(params)
	if err != nil {
		return entities.Refund{}, fmt.Errorf("stripe: refund payment intent: %w", err)
	}

	p.logger.Info("payment refunded",
		slog.String("payment_intent_id", req.PaymentIntentID),
		slog.String("refund_id", refund.ID),
		slog.Int64("amount", refund.Amount),
	)
	return entities.Refund{ID: refund.ID, Status: string(refund.Status), AmountMinor: refund.Amount}, nil
}
