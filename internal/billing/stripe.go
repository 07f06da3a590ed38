// Package billing wraps the Stripe API surface the product needs:
// customer creation, subscription checkout, and webhook verification.
package billing

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	checksession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/webhook"
)

type Config struct {
	SecretKey      string
	WebhookSecret  string
	MonthlyPriceID string
	AnnualPriceID  string
	SuccessURL     string
	CancelURL      string
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	stripe.Key = cfg.SecretKey
	return &Client{cfg: cfg}
}

// Configured reports whether checkout can be offered at all.
func (c *Client) Configured() bool {
	return c.cfg.SecretKey != ""
}

// CreateCustomer creates a Stripe customer and returns the customer ID.
func (c *Client) CreateCustomer(email string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe customer: %w", err)
	}
	return cust.ID, nil
}

// CreateCheckoutSession creates a subscription-mode checkout session and
// returns its redirect URL. returnURL overrides the configured success
// URL when non-empty, matching the UI contract of sending the buyer
// back to onboarding.
func (c *Client) CreateCheckoutSession(customerID, priceID, returnURL string) (string, error) {
	successURL := c.cfg.SuccessURL
	if returnURL != "" {
		successURL = returnURL
	}
	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		AllowPromotionCodes: stripe.Bool(true),
		SuccessURL:          stripe.String(successURL),
		CancelURL:           stripe.String(c.cfg.CancelURL),
	}
	sess, err := checksession.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}

// ConstructWebhookEvent verifies the signature and returns the parsed event.
func (c *Client) ConstructWebhookEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, c.cfg.WebhookSecret)
}

// Plan is one purchasable option shown on the pricing page.
type Plan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Interval string `json:"interval"`
	Popular  bool   `json:"popular"`
}

// Plans returns the purchasable options. Amounts are display values in
// cents; the authoritative price lives on the Stripe price object.
func (c *Client) Plans() []Plan {
	var plans []Plan
	if c.cfg.MonthlyPriceID != "" {
		plans = append(plans, Plan{ID: c.cfg.MonthlyPriceID, Name: "Pro", Amount: 1900, Interval: "month", Popular: true})
	}
	if c.cfg.AnnualPriceID != "" {
		plans = append(plans, Plan{ID: c.cfg.AnnualPriceID, Name: "Pro Annual", Amount: 15900, Interval: "year"})
	}
	return plans
}

// DefaultPriceID returns the price used when checkout is requested
// without an explicit plan.
func (c *Client) DefaultPriceID() string {
	return c.cfg.MonthlyPriceID
}
