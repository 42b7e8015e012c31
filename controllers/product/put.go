package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/config"
	"github.com/Jrgn63/keyking/models"
	"github.com/Jrgn63/keyking/pkg/errs"
)

type updateProductInput struct {
	Name             *string  `json:"name"`
	ShortDescription *string  `json:"shortDescription"`
	LongDescription  *string  `json:"longDescription"`
	Price            *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURLs        []string `json:"imageUrls"`
	Stock            *int     `json:"stock" binding:"omitempty,gte=0"`
	Category         *string  `json:"category"`
	Tags             []string `json:"tags"`
	Discount         *int     `json:"discount" binding:"omitempty,gte=0,lte=100"`
}

// UpdateProduct applies a partial update. Renaming recomputes the slug under
// the collision policy; omitted fields are left alone.
func UpdateProduct(db *gorm.DB, slugPolicy config.SlugPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input updateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if input.Name != nil && *input.Name != product.Name {
			slug, err := resolveSlug(db, *input.Name, slugPolicy, product.ID)
			if err != nil {
				c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
				return
			}
			product.Name = *input.Name
			product.Slug = slug
		}
		if input.ShortDescription != nil {
			product.ShortDescription = *input.ShortDescription
		}
		if input.LongDescription != nil {
			product.LongDescription = *input.LongDescription
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Tags != nil {
			product.Tags = input.Tags
		}
		if input.Discount != nil {
			product.Discount = input.Discount
		}
		if input.ImageURLs != nil {
			product.ImageURLs = input.ImageURLs
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
