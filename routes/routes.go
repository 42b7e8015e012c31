package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/cart"
	"github.com/Jrgn63/keyking/config"
	ordercontroller "github.com/Jrgn63/keyking/controllers/order"
	"github.com/Jrgn63/keyking/events"
	"github.com/Jrgn63/keyking/mailer"
	"github.com/Jrgn63/keyking/payment"
)

// Deps carries everything the handlers need; constructed once in main and
// passed down explicitly.
type Deps struct {
	DB        *gorm.DB
	Cfg       *config.Config
	Carts     *cart.Store
	Payments  *payment.Client
	Feed      *ordercontroller.Feed
	Publisher *events.Publisher
	Mailer    *mailer.Mailer
}

// SetupRoutes wires up the public storefront and the admin surface.
func SetupRoutes(r *gin.Engine, d Deps) {
	SetupPublicRoutes(r, d)
	SetupAdminRoutes(r, d)
}
