package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID               string   `gorm:"primaryKey" json:"id"`
	Name             string   `gorm:"not null" json:"name"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Price            float64  `gorm:"not null" json:"price"`
	Discount         *int     `json:"discount,omitempty"` // percent, 0-100
	Stock            int      `json:"stock"`
	Category         string   `gorm:"index" json:"category"`
	Tags             []string `gorm:"serializer:json" json:"tags"`
	Slug             string   `gorm:"index" json:"slug"`
	ImageURLs        []string `gorm:"serializer:json" json:"imageUrls"`

	// Rows written before the multi-image migration carry a single image_url
	// column instead; AfterFind folds it into ImageURLs.
	LegacyImageURL string `gorm:"column:image_url" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.Normalize()
	return nil
}

// Normalize applies the legacy single-image fallback and coerces a nil tag
// set to empty, so consumers never see the pre-migration shape.
func (p *Product) Normalize() {
	if len(p.ImageURLs) == 0 && p.LegacyImageURL != "" {
		p.ImageURLs = []string{p.LegacyImageURL}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// EffectivePrice is the price after the percentage discount, if any.
func (p Product) EffectivePrice() float64 {
	if p.Discount != nil {
		return p.Price * (1 - float64(*p.Discount)/100)
	}
	return p.Price
}
