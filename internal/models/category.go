// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Slug        string `json:"slug" gorm:"size:120;not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
	Image       string `json:"image" gorm:"size:255"`
	SortOrder   int    `json:"sort_order" gorm:"default:0;index"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}
