package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/payment"
	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
)

// SetupPaymentRoutes registers the gateway endpoints. Webhooks stay public;
// their authenticity comes from the signature over the raw body.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	payments := r.Group("/payments")
	{
		payments.POST("/create-order", middleware.ValidateToken, paymentControllers.CreateRazorpayOrderHandler())
		payments.POST("/webhook", paymentControllers.RazorpayWebhookHandler())

		payments.POST("/stripe/create-intent", middleware.ValidateToken, paymentControllers.CreateStripeIntentHandler())
		payments.POST("/stripe/webhook", paymentControllers.StripeWebhookHandler())
	}
}
