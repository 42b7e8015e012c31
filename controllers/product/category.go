package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/models"
)

// GetCategories returns the distinct category labels in use, for the
// storefront filter UI. Degrades to an empty list on store failure.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		err := db.Model(&models.Product{}).
			Distinct().
			Where("category <> ''").
			Order("category ASC").
			Pluck("category", &categories).Error
		if err != nil {
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("listing categories failed")
			categories = nil
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, categories)
	}
}
