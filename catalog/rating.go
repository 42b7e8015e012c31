package catalog

import (
	"math"

	"github.com/Jrgn63/keyking/models"
)

type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// Summarize averages the given reviews, rounded to one decimal place
// (half away from zero). Returns nil when there are no reviews.
func Summarize(reviews []models.Review) *RatingSummary {
	if len(reviews) == 0 {
		return nil
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return &RatingSummary{
		AverageRating: math.Round(avg*10) / 10,
		ReviewCount:   len(reviews),
	}
}

// SummarizeByProduct joins reviews to products by product id, for enriching
// a whole listing in one pass.
func SummarizeByProduct(reviews []models.Review) map[string]*RatingSummary {
	byProduct := make(map[string][]models.Review)
	for _, r := range reviews {
		byProduct[r.ProductID] = append(byProduct[r.ProductID], r)
	}
	out := make(map[string]*RatingSummary, len(byProduct))
	for id, rs := range byProduct {
		out[id] = Summarize(rs)
	}
	return out
}
