package cartcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/cart"
	"github.com/Jrgn63/keyking/middleware"
	"github.com/Jrgn63/keyking/models"
	"github.com/Jrgn63/keyking/pkg/errs"
)

type addItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	// Revision the client last saw; omit to skip the staleness check.
	Revision *int64 `json:"revision"`
}

type updateQuantityInput struct {
	Quantity *int   `json:"quantity" binding:"required"`
	Revision *int64 `json:"revision"`
}

func revisionOf(rev *int64) int64 {
	if rev == nil {
		return cart.AnyRevision
	}
	return *rev
}

// GET /cart
func GetCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, carts.Get(middleware.SessionID(c)))
	}
}

// POST /cart/items
// Adds one unit of the product, snapshotting it into the line item. The
// reducer clamps to stock, so adding a sold-out product is a no-op.
func AddItem(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		snapshot, err := carts.Add(middleware.SessionID(c), product, revisionOf(input.Revision))
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error(), "cart": snapshot})
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// PUT /cart/items/:product_id
// Sets the line quantity; zero or less removes the line.
func UpdateQuantity(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input updateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		snapshot, err := carts.UpdateQuantity(middleware.SessionID(c), c.Param("product_id"), *input.Quantity, revisionOf(input.Revision))
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error(), "cart": snapshot})
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// DELETE /cart/items/:product_id
func RemoveItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := carts.Remove(middleware.SessionID(c), c.Param("product_id"), cart.AnyRevision)
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error(), "cart": snapshot})
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// DELETE /cart
// Manual clear by the shopper; the checkout-success clear goes through the
// notification handler instead.
func ClearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Clear(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
