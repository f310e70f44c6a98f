// internal/models/inquiry.go
package models

type Inquiry struct {
	BaseModel
	Name    string `json:"name" gorm:"size:200;not null"`
	Email   string `json:"email" gorm:"size:200;not null"`
	Phone   string `json:"phone" gorm:"size:20"`
	Subject string `json:"subject" gorm:"size:300;default:'General Inquiry'"`
	Message string `json:"message" gorm:"type:text;not null"`
	IsRead  bool   `json:"is_read" gorm:"default:false;index"`
}
