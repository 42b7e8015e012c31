package checkoutcontroller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/cart"
	ordercontroller "github.com/Jrgn63/keyking/controllers/order"
	"github.com/Jrgn63/keyking/events"
	"github.com/Jrgn63/keyking/mailer"
	"github.com/Jrgn63/keyking/models"
	"github.com/Jrgn63/keyking/payment"
)

type notificationInput struct {
	OrderID           string `json:"order_id" binding:"required"`
	TransactionStatus string `json:"transaction_status"`
}

// HandleNotification processes the gateway's payment callback. The payload's
// status is never trusted: the authoritative status is re-fetched from the
// gateway. Settlement marks the order paid, clears the session cart (the one
// CLEAR_CART in the system), and fans out to the feed, event bus, and mailer.
// The handler is idempotent — a replayed notification for a paid order acks
// without side effects.
func HandleNotification(db *gorm.DB, carts *cart.Store, payments *payment.Client,
	feed *ordercontroller.Feed, publisher *events.Publisher, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input notificationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification payload"})
			return
		}

		logger := log.Ctx(c.Request.Context())

		status, err := payments.TransactionStatus(input.OrderID)
		if err != nil {
			logger.Error().Err(err).Str("order_ref", input.OrderID).Msg("status check failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not verify transaction"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "ref = ?", input.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Unknown order"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			}
			return
		}

		switch status {
		case "settlement", "capture":
			if order.Status == models.OrderStatusPaid {
				c.JSON(http.StatusOK, gin.H{"message": "Already processed"})
				return
			}
			order.Status = models.OrderStatusPaid
			if err := db.Model(&models.Order{}).Where("ref = ?", order.Ref).
				Update("status", models.OrderStatusPaid).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}

			carts.Clear(order.SessionID)
			feed.Broadcast(order)

			go func(order models.Order) {
				if err := publisher.OrderPaid(context.Background(), order); err != nil {
					log.Error().Err(err).Str("order_ref", order.Ref).Msg("order event not published")
				}
				if err := mail.SendOrderConfirmation(order); err != nil {
					log.Error().Err(err).Str("order_ref", order.Ref).Msg("confirmation mail not sent")
				}
			}(order)

			logger.Info().Str("order_ref", order.Ref).Msg("order paid")

		case "deny", "cancel", "expire":
			if err := db.Model(&models.Order{}).Where("ref = ?", order.Ref).
				Update("status", models.OrderStatusFailed).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
			logger.Info().Str("order_ref", order.Ref).Str("status", status).Msg("order failed")
		}

		c.JSON(http.StatusOK, gin.H{"message": "Notification processed"})
	}
}
