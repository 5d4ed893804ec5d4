package models

// Product is the catalog entry shown in the shop. Prices are stored in
// cents to avoid floating point rounding on totals.
type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	PriceCents  int    `gorm:"not null" json:"price"`
	ImageURL    string `gorm:"not null" json:"imageUrl"`
	Category    string `gorm:"not null" json:"category"`
	Stock       int    `gorm:"default:0" json:"stock"`
	IsFeatured  bool   `gorm:"default:false" json:"isFeatured"`
}
