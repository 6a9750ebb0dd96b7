package billing

import (
	"net/http"

	"omniplex-backend/config"
	"omniplex-backend/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// CreateCheckoutSession builds a subscription-mode gateway session for a plan
// from the static catalog. Purely request/response: one attempt, no state.
func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		Plan   string `json:"plan"`
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// allow-list the plan key
	product, ok := plans.Lookup(body.Plan)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan selected"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe not configured"})
		return
	}

	userID := body.UserID
	if userID == "" {
		userID = "anonymous"
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:         stripe.String(config.APP_URL + "/payment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(config.APP_URL + "/payment/cancel"),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(product.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(product.Name),
						Description: stripe.String(product.Description),
					},
					UnitAmount: stripe.Int64(product.Price),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(product.Interval),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if body.UserID != "" {
		params.ClientReferenceID = stripe.String(body.UserID)
	}
	params.AddMetadata("userId", userID)
	params.AddMetadata("plan", body.Plan)

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": s.ID})
}
