// Package seed fills an empty catalog with the launch collection.
package seed

import (
	"log"

	"gorm.io/gorm"

	"github.com/khushi161014/studio-treta/models"
)

// Run inserts the starter products if the catalog is empty. Safe to call on
// every boot.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:        "Structured Linen Blazer",
			Description: "A tailored blazer made from 100% organic linen. Features sharp shoulders and a relaxed fit, embodying the balance of structure and fluidity.",
			PriceCents:  18900, // $189.00
			ImageURL:    "/images/img_3_1769605774163.png",
			Category:    "Outerwear",
			Stock:       10,
			IsFeatured:  true,
		},
		{
			Name:        "Flowing Silk Tunic",
			Description: "Soft, breathable silk tunic that drapes elegantly. Perfect for everyday wear or layering.",
			PriceCents:  12500, // $125.00
			ImageURL:    "/images/img_2_1769605774160.png",
			Category:    "Tops",
			Stock:       15,
			IsFeatured:  true,
		},
		{
			Name:        "Wide Leg Pleated Trousers",
			Description: "High-waisted trousers with deep pleats for movement and comfort. A staple piece for any wardrobe.",
			PriceCents:  14500, // $145.00
			ImageURL:    "/images/img_4_1769605774165.png",
			Category:    "Bottoms",
			Stock:       12,
			IsFeatured:  true,
		},
		{
			Name:        "Handwoven Scarf",
			Description: "Artisanal scarf featuring intricate weave patterns. Adds a touch of texture to any outfit.",
			PriceCents:  6500, // $65.00
			ImageURL:    "/images/img_1_1769605774157.png",
			Category:    "Accessories",
			Stock:       20,
			IsFeatured:  false,
		},
		{
			Name:        "Minimalist Trench Coat",
			Description: "Classic trench coat reimagined with clean lines and minimal detailing. Water-resistant and durable.",
			PriceCents:  24500, // $245.00
			ImageURL:    "/images/img_5_1769605774167.png",
			Category:    "Outerwear",
			Stock:       8,
			IsFeatured:  true,
		},
	}

	for _, p := range products {
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Seeded database with products")
	return nil
}
