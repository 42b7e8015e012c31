package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/catalog"
	"github.com/Jrgn63/keyking/models"
)

// ratedProduct is a product enriched with its review summary; the rating
// fields are absent for products without reviews.
type ratedProduct struct {
	models.Product
	AverageRating *float64 `json:"averageRating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
}

func rate(p models.Product, summary *catalog.RatingSummary) ratedProduct {
	rp := ratedProduct{Product: p}
	if summary != nil {
		rp.AverageRating = &summary.AverageRating
		rp.ReviewCount = summary.ReviewCount
	}
	return rp
}

// GetProducts lists the catalog through the query pipeline.
// Query params: search, category, tags (comma-separated), sort_by
// (price|name|created_at), order (asc|desc). A store failure degrades to an
// empty listing rather than an error page.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := catalog.Params{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			SortBy:   catalog.ParseSortField(c.DefaultQuery("sort_by", "created_at")),
			Order:    catalog.ParseSortOrder(c.DefaultQuery("order", "desc")),
		}
		if raw := c.Query("tags"); raw != "" {
			for _, t := range strings.Split(raw, ",") {
				if t = strings.TrimSpace(t); t != "" {
					params.Tags = append(params.Tags, t)
				}
			}
		}

		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("listing products failed")
			c.JSON(http.StatusOK, []ratedProduct{})
			return
		}

		results := catalog.Filter(products, params)

		var reviews []models.Review
		if err := db.Find(&reviews).Error; err != nil {
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("loading reviews for listing failed")
			reviews = nil
		}
		summaries := catalog.SummarizeByProduct(reviews)

		resp := make([]ratedProduct, 0, len(results))
		for _, p := range results {
			resp = append(resp, rate(p, summaries[p.ID]))
		}
		c.JSON(http.StatusOK, resp)
	}
}
