package paymentControllers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
)

type createIntentRequest struct {
	AmountInPaise int64             `json:"amountInPaise" binding:"required,min=100"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

// POST /payments/stripe/create-intent
func CreateStripeIntentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.UserID(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		secretKey := os.Getenv("STRIPE_SECRET_KEY")
		if secretKey == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe not configured"})
			return
		}
		stripe.Key = secretKey

		var req createIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		currency := strings.ToLower(req.Currency)
		if currency == "" {
			currency = "inr"
		}

		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(req.AmountInPaise),
			Currency: stripe.String(currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		for k, v := range req.Metadata {
			params.AddMetadata(k, v)
		}

		intent, err := paymentintent.New(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
	}
}

// POST /payments/stripe/webhook
//
// Signature verification is delegated to the Stripe SDK.
func StripeWebhookHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpointSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
		if endpointSecret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe webhook secret missing"})
			return
		}

		rawBody, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
			return
		}

		event, err := webhook.ConstructEvent(rawBody, c.GetHeader("Stripe-Signature"), endpointSecret)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook signature"})
			return
		}

		// TODO: act on payment_intent.succeeded / payment_intent.payment_failed
		// once the fulfilment flow consumes them.
		c.JSON(http.StatusOK, gin.H{"received": true, "type": string(event.Type)})
	}
}
