package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jrgn63/keyking/models"
)

func reviews(productID string, ratings ...int) []models.Review {
	out := make([]models.Review, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, models.Review{ProductID: productID, Rating: r})
	}
	return out
}

func TestSummarizeAveragesToOneDecimal(t *testing.T) {
	s := Summarize(reviews("p", 5, 5, 4))
	require.NotNil(t, s)
	assert.Equal(t, 4.7, s.AverageRating) // 4.666... rounds up
	assert.Equal(t, 3, s.ReviewCount)
}

func TestSummarizeRoundsHalfAwayFromZero(t *testing.T) {
	// mean 4.5 on the scaled value: 45 stays 45 -> 4.5; mean 3.25 -> 3.3
	s := Summarize(reviews("p", 4, 5))
	require.NotNil(t, s)
	assert.Equal(t, 4.5, s.AverageRating)

	s = Summarize(reviews("p", 3, 3, 3, 4))
	require.NotNil(t, s)
	assert.Equal(t, 3.3, s.AverageRating)
}

func TestSummarizeNoReviewsIsAbsent(t *testing.T) {
	assert.Nil(t, Summarize(nil))
	assert.Nil(t, Summarize([]models.Review{}))
}

func TestSummarizeByProductJoinsOnProductID(t *testing.T) {
	all := append(reviews("a", 5, 3), reviews("b", 1)...)
	all = append(all, models.Review{ProductID: "orphaned", Rating: 2})

	byProduct := SummarizeByProduct(all)
	require.Len(t, byProduct, 3)
	assert.Equal(t, 4.0, byProduct["a"].AverageRating)
	assert.Equal(t, 2, byProduct["a"].ReviewCount)
	assert.Equal(t, 1.0, byProduct["b"].AverageRating)
	assert.Equal(t, 2.0, byProduct["orphaned"].AverageRating)
	assert.Nil(t, byProduct["missing"])
}
