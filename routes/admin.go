package routes

import (
	"github.com/gin-gonic/gin"

	ordercontroller "github.com/Jrgn63/keyking/controllers/order"
	productcontroller "github.com/Jrgn63/keyking/controllers/product"
	reviewcontroller "github.com/Jrgn63/keyking/controllers/review"
	"github.com/Jrgn63/keyking/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the shared
// secret guard.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(d.Cfg.AdminSecret))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.DB, d.Cfg.SlugPolicy))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.DB, d.Cfg.SlugPolicy))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.DB))
		}

		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.POST("", reviewcontroller.CreateReview(d.DB))
			reviewAdmin.PUT("/:id", reviewcontroller.UpdateReview(d.DB))
			reviewAdmin.DELETE("/:id", reviewcontroller.DeleteReview(d.DB))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", ordercontroller.GetOrders(d.DB))
			orderAdmin.GET("/feed", d.Feed.Handle)
		}
	}
}
