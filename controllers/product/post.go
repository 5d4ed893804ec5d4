package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/khushi161014/studio-treta/models"
	"github.com/khushi161014/studio-treta/validation"
)

type CreateProductInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	PriceCents  *int   `json:"price" binding:"required,gte=0"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Stock       *int   `json:"stock" binding:"omitempty,gte=0"`
	IsFeatured  bool   `json:"isFeatured"`
}

// CreateProduct adds a catalog entry.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			field, message := validation.FirstError(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": message, "field": field})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			PriceCents:  *input.PriceCents,
			ImageURL:    input.ImageURL,
			Category:    input.Category,
			IsFeatured:  input.IsFeatured,
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
