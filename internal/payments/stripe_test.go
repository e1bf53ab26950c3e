package payments

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"
)

type fakeIntents struct {
	intents map[string]*stripe.PaymentIntent
	params  *stripe.PaymentIntentParams
}

func (f *fakeIntents) Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.params = params
	intent, ok := f.intents[id]
	if !ok {
		return nil, errors.New("no such payment_intent")
	}
	return intent, nil
}

type fakeRefunds struct {
	params []*stripe.RefundParams
	err    error
}

func (f *fakeRefunds) New(params *stripe.RefundParams) (*stripe.Refund, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	amount := int64(5000)
	if params.Amount != nil {
		amount = *params.Amount
	}
	return &stripe.Refund{ID: "re_1", Status: stripe.RefundStatusSucceeded, Amount: amount}, nil
}

func newTestProvider(intents *fakeIntents, refunds *fakeRefunds) *StripeProvider {
	return newStripeProvider(slog.New(slog.NewTextHandler(io.Discard, nil)), intents, refunds)
}

func TestStripeProvider_ConfirmPayment(t *testing.T) {
	intents := &fakeIntents{intents: map[string]*stripe.PaymentIntent{
		"pi_ok":      {ID: "pi_ok", Status: stripe.PaymentIntentStatusSucceeded},
		"pi_pending": {ID: "pi_pending", Status: stripe.PaymentIntentStatusRequiresPaymentMethod},
	}}
	p := newTestProvider(intents, &fakeRefunds{})
	ctx := context.Background()

	ok, err := p.ConfirmPayment(ctx, "pi_ok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, ctx, intents.params.Context)

	ok, err = p.ConfirmPayment(ctx, "pi_pending")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = p.ConfirmPayment(ctx, "pi_missing")
	assert.Error(t, err)
}

func TestStripeProvider_RefundPayment(t *testing.T) {
	refunds := &fakeRefunds{}
	p := newTestProvider(&fakeIntents{}, refunds)

	refund, err := p.RefundPayment(context.Background(), entities.RefundRequest{
		PaymentIntentID: "pi_ok",
		AmountMinor:     3259,
		IdempotencyKey:  "order-1-refund",
	})

	require.NoError(t, err)
	assert.Equal(t, entities.Refund{ID: "re_1", Status: "succeeded", AmountMinor: 3259}, refund)
	require.Len(t, refunds.params, 1)
	assert.Equal(t, "pi_ok", *refunds.params[0].PaymentIntent)
	assert.Equal(t, int64(3259), *refunds.params[0].Amount)
	assert.Equal(t, "order-1-refund", *refunds.params[0].IdempotencyKey)
}

func TestStripeProvider_RefundPaymentFull(t *testing.T) {
	refunds := &fakeRefunds{}
	p := newTestProvider(&fakeIntents{}, refunds)

	_, err := p.RefundPayment(context.Background(), entities.RefundRequest{PaymentIntentID: "pi_ok"})

	require.NoError(t, err)
	assert.Nil(t, refunds.params[0].Amount)
	assert.Nil(t, refunds.params[0].IdempotencyKey)
}

func TestStripeProvider_RefundPaymentError(t *testing.T) {
	p := newTestProvider(&fakeIntents{}, &fakeRefunds{err: errors.New("card_declined")})

	_, err := p.RefundPayment(context.Background(), entities.RefundRequest{PaymentIntentID: "pi_ok"})
	assert.ErrorContains(t, err, "card_declined")
}

func TestNewStripeProvider_RequiresKey(t *testing.T) {
	_, err := NewStripeProvider(slog.New(slog.NewTextHandler(io.Discard, nil)), Config{SecretKey: "  "})
	assert.Error(t, err)
}
