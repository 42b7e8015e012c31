package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/catalog"
	"github.com/Jrgn63/keyking/models"
)

// GetProductByID returns a single enriched product.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		err := db.First(&product, "id = ?", c.Param("id")).Error
		respondProduct(c, db, product, err)
	}
}

// GetProductBySlug resolves a product by its slug. When slugs collide the
// most recently created product wins.
// URL param: /products/slug/:slug
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		err := db.Order("created_at DESC").First(&product, "slug = ?", c.Param("slug")).Error
		respondProduct(c, db, product, err)
	}
}

func respondProduct(c *gin.Context, db *gorm.DB, product models.Product, err error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	var reviews []models.Review
	if err := db.Find(&reviews, "product_id = ?", product.ID).Error; err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Str("product_id", product.ID).Msg("loading reviews failed")
		reviews = nil
	}
	c.JSON(http.StatusOK, rate(product, catalog.Summarize(reviews)))
}
