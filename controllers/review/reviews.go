package reviewcontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/models"
)

type createReviewInput struct {
	ProductID string `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Text      string `json:"text" binding:"required"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"` // optional RFC3339, for back-dating
}

type updateReviewInput struct {
	ProductID *string `json:"productId"`
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Text      *string `json:"text"`
	Author    *string `json:"author"`
	CreatedAt *string `json:"createdAt"`
}

// GET /reviews?product_id=
// Newest first; without product_id all reviews are returned (admin view).
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Order("created_at DESC")
		if productID := c.Query("product_id"); productID != "" {
			q = q.Where("product_id = ?", productID)
		}
		var reviews []models.Review
		if err := q.Find(&reviews).Error; err != nil {
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("listing reviews failed")
			reviews = nil
		}
		if reviews == nil {
			reviews = []models.Review{}
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// GET /reviews/:id
func GetReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review models.Review
		if err := db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
			}
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// POST /admin/reviews
// The product reference is not checked; a review for a deleted product is
// simply never joined to anything.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review := models.Review{
			ProductID: input.ProductID,
			Rating:    input.Rating,
			Text:      input.Text,
			Author:    input.Author,
		}
		if input.CreatedAt != "" {
			t, err := time.Parse(time.RFC3339, input.CreatedAt)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid createdAt: must be RFC3339"})
				return
			}
			review.CreatedAt = t
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": review.ID})
	}
}

// PUT /admin/reviews/:id
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input updateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var review models.Review
		if err := db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
			}
			return
		}

		if input.ProductID != nil {
			review.ProductID = *input.ProductID
		}
		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if input.Text != nil {
			if *input.Text == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Review text must not be empty"})
				return
			}
			review.Text = *input.Text
		}
		if input.Author != nil {
			review.Author = *input.Author
		}
		if input.CreatedAt != nil {
			t, err := time.Parse(time.RFC3339, *input.CreatedAt)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid createdAt: must be RFC3339"})
				return
			}
			review.CreatedAt = t
		}

		if err := db.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /admin/reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Review{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
