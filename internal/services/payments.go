package services

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentService creates payment intents with the processor. Amounts are
// converted to minor units (price * 100); the currency is fixed at USD.
type PaymentService struct{}

func NewPaymentService(apiKey string) *PaymentService {
	stripe.Key = apiKey
	return &PaymentService{}
}

// CreateIntent registers an intent to charge price dollars and returns the
// client secret the frontend completes the payment with.
func (s *PaymentService) CreateIntent(price int) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(price) * 100),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
