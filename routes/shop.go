package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/khushi161014/studio-treta/controllers/product"
)

// SetupShopRoutes registers the public catalog endpoints.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))        // GET /products
		products.GET("/:id", productcontroller.GetProductByID(db)) // GET /products/:id
	}
}
