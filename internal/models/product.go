// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name          string          `json:"name" gorm:"size:200;not null"`
	Slug          string          `json:"slug" gorm:"size:220;not null;uniqueIndex"`
	Description   string          `json:"description" gorm:"type:text"`
	ShortDesc     string          `json:"short_desc" gorm:"size:300"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice decimal.Decimal `json:"original_price" gorm:"type:decimal(10,2);default:0"`
	CategoryID    uuid.UUID       `json:"category_id" gorm:"type:uuid;not null;index"`
	Images        pq.StringArray  `json:"images" gorm:"type:text[]"`
	Material      string          `json:"material" gorm:"size:100;default:'PLA'"`
	Colors        string          `json:"colors" gorm:"size:300"`
	Dimensions    string          `json:"dimensions" gorm:"size:100"`
	WeightGrams   int             `json:"weight_grams" gorm:"default:0"`
	StockStatus   StockStatus     `json:"stock_status" gorm:"type:varchar(20);default:'in_stock';index"`
	IsFeatured    bool            `json:"is_featured" gorm:"default:false;index"`
	IsActive      bool            `json:"is_active" gorm:"default:true;index"`
	MetaTitle     string          `json:"meta_title" gorm:"size:200"`
	MetaDesc      string          `json:"meta_description" gorm:"size:300"`
	ViewCount     int64           `json:"view_count" gorm:"default:0"`

	// Relationships
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews  []Review `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

// DiscountPercent returns the strike-through discount when an original
// price above the selling price is set, else 0.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice.IsPositive() && p.OriginalPrice.GreaterThan(p.Price) {
		off := decimal.NewFromInt(1).Sub(p.Price.Div(p.OriginalPrice))
		return int(off.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}
	return 0
}

// Purchasable reports whether the product can enter a cart.
func (p *Product) Purchasable() bool {
	return p.IsActive && p.StockStatus != StockStatusOutOfStock
}
