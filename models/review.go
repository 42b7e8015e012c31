package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review references a product by id only; there is no foreign key, and
// reviews orphaned by a product deletion are tolerated.
type Review struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ProductID string    `gorm:"index" json:"productId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1-5
	Text      string    `gorm:"not null" json:"text"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"` // back-datable at create
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
