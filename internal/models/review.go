// internal/models/review.go
package models

import "github.com/google/uuid"

// Review is visitor-submitted and invisible to the public until an
// admin approves it.
type Review struct {
	BaseModel
	ProductID  uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	AuthorName string    `json:"author_name" gorm:"size:200;not null"`
	Rating     int       `json:"rating" gorm:"not null"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	IsApproved bool      `json:"is_approved" gorm:"default:false;index"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
