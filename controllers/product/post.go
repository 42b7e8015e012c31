package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/config"
	"github.com/Jrgn63/keyking/models"
	"github.com/Jrgn63/keyking/pkg/errs"
)

type createProductInput struct {
	Name             string   `json:"name" binding:"required"`
	ShortDescription string   `json:"shortDescription" binding:"required"`
	LongDescription  string   `json:"longDescription" binding:"required"`
	Price            *float64 `json:"price" binding:"required,gte=0"`
	ImageURLs        []string `json:"imageUrls" binding:"required,min=1"`
	Stock            *int     `json:"stock" binding:"required,gte=0"`
	Category         string   `json:"category" binding:"required"`
	Tags             []string `json:"tags"`
	Discount         *int     `json:"discount" binding:"omitempty,gte=0,lte=100"`
}

// CreateProduct validates and inserts a new product; the slug is derived
// from the name before anything is written.
func CreateProduct(db *gorm.DB, slugPolicy config.SlugPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		slug, err := resolveSlug(db, input.Name, slugPolicy, "")
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		tags := input.Tags
		if tags == nil {
			tags = []string{}
		}

		product := models.Product{
			Name:             input.Name,
			ShortDescription: input.ShortDescription,
			LongDescription:  input.LongDescription,
			Price:            *input.Price,
			Discount:         input.Discount,
			Stock:            *input.Stock,
			Category:         input.Category,
			Tags:             tags,
			Slug:             slug,
			ImageURLs:        input.ImageURLs,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": product.ID})
	}
}
