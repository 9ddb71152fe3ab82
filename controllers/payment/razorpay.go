package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/razorpay/razorpay-go"

	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
)

type createOrderRequest struct {
	AmountInPaise int64  `json:"amountInPaise" binding:"required,min=100"`
	Currency      string `json:"currency"`
	Receipt       string `json:"receipt"`
}

// POST /payments/create-order
//
// Creates a Razorpay order for the given amount. The gateway is an external
// collaborator: an unconfigured or failing gateway surfaces as 500.
func CreateRazorpayOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.UserID(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		keyID := os.Getenv("RAZORPAY_KEY_ID")
		keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
		if keyID == "" || keySecret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Razorpay not configured"})
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		currency := req.Currency
		if currency == "" {
			currency = "INR"
		}

		client := razorpay.NewClient(keyID, keySecret)
		data := map[string]interface{}{
			"amount":   req.AmountInPaise,
			"currency": currency,
		}
		if req.Receipt != "" {
			data["receipt"] = req.Receipt
		}

		order, err := client.Order.Create(data, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// VerifyWebhookSignature checks the Razorpay webhook signature: HMAC-SHA256
// over the raw body, hex encoded, compared in constant time.
func VerifyWebhookSignature(rawBody []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// POST /payments/webhook
//
// Always answers 200 with {received, verified} — an error status would make
// the gateway retry a webhook we have already rejected.
func RazorpayWebhookHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawBody, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
			return
		}

		signature := c.GetHeader("X-Razorpay-Signature")
		secret := os.Getenv("RAZORPAY_KEY_SECRET")

		if !VerifyWebhookSignature(rawBody, signature, secret) {
			c.JSON(http.StatusOK, gin.H{"received": true, "verified": false})
			return
		}

		// TODO: act on payment.captured / order.paid events once the
		// fulfilment flow consumes them.
		c.JSON(http.StatusOK, gin.H{"received": true, "verified": true})
	}
}
