package routes

import (
	"github.com/gin-gonic/gin"

	cartcontroller "github.com/Jrgn63/keyking/controllers/cart"
	checkoutcontroller "github.com/Jrgn63/keyking/controllers/checkout"
	productcontroller "github.com/Jrgn63/keyking/controllers/product"
	reviewcontroller "github.com/Jrgn63/keyking/controllers/review"
	"github.com/Jrgn63/keyking/middleware"
)

// SetupPublicRoutes registers the shopper-facing endpoints.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	r.GET("/products", productcontroller.GetProducts(d.DB))
	r.GET("/products/slug/:slug", productcontroller.GetProductBySlug(d.DB))
	r.GET("/products/:id", productcontroller.GetProductByID(d.DB))
	r.GET("/categories", productcontroller.GetCategories(d.DB))
	r.GET("/reviews", reviewcontroller.GetReviews(d.DB))
	r.GET("/reviews/:id", reviewcontroller.GetReview(d.DB))

	session := r.Group("/", middleware.EnsureSession())
	{
		session.GET("/cart", cartcontroller.GetCart(d.Carts))
		session.POST("/cart/items", cartcontroller.AddItem(d.DB, d.Carts))
		session.PUT("/cart/items/:product_id", cartcontroller.UpdateQuantity(d.Carts))
		session.DELETE("/cart/items/:product_id", cartcontroller.RemoveItem(d.Carts))
		session.DELETE("/cart", cartcontroller.ClearCart(d.Carts))

		session.POST("/checkout", checkoutcontroller.CreateSession(d.DB, d.Carts, d.Payments))
	}

	r.POST("/checkout/notification", checkoutcontroller.HandleNotification(
		d.DB, d.Carts, d.Payments, d.Feed, d.Publisher, d.Mailer))
}
