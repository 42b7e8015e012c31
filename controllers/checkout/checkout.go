package checkoutcontroller

import (
	"errors"
	"io"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/cart"
	"github.com/Jrgn63/keyking/middleware"
	"github.com/Jrgn63/keyking/models"
	"github.com/Jrgn63/keyking/payment"
	"github.com/Jrgn63/keyking/pkg/errs"
)

type checkoutInput struct {
	CustomerEmail string `json:"customerEmail" binding:"omitempty,email"`
}

// CreateSession turns the session cart into a pending order and opens a
// hosted payment page for it. The cart is NOT cleared here — that happens
// only when the gateway confirms settlement — so a failed or abandoned
// checkout leaves the cart intact for retry.
func CreateSession(db *gorm.DB, carts *cart.Store, payments *payment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The body is optional: checkout without an email is fine.
		var input checkoutInput
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sessionID := middleware.SessionID(c)
		snapshot := carts.Get(sessionID)
		if len(snapshot.Items) == 0 {
			c.JSON(errs.HTTPStatus(errs.ErrEmptyCart), gin.H{"error": errs.ErrEmptyCart.Error()})
			return
		}

		order := models.Order{
			Ref:           uuid.NewString(),
			SessionID:     sessionID,
			CustomerEmail: input.CustomerEmail,
			Status:        models.OrderStatusPending,
			Items:         lineItems(snapshot.Items),
		}
		for _, it := range order.Items {
			order.Amount += it.UnitPrice * int64(it.Quantity)
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record order"})
			return
		}

		url, err := payments.CreatePaymentURL(order)
		if err != nil {
			log.Ctx(c.Request.Context()).Error().Err(err).Str("order_ref", order.Ref).Msg("payment session failed")
			db.Model(&models.Order{}).Where("ref = ?", order.Ref).
				Update("status", models.OrderStatusFailed)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": "Checkout is unavailable, please try again"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url, "order_ref": order.Ref})
	}
}

// lineItems converts cart lines to the gateway's shape: discount-adjusted
// unit price in minor units (round-to-nearest), plus the primary image.
func lineItems(items []cart.Item) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		li := models.OrderItem{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			UnitPrice: int64(math.Round(it.Product.EffectivePrice() * 100)),
			Quantity:  it.Quantity,
		}
		if len(it.Product.ImageURLs) > 0 {
			li.ImageURL = it.Product.ImageURLs[0]
		}
		out = append(out, li)
	}
	return out
}
