package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up shop, order, auth,
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public shop routes (no middleware)
	SetupShopRoutes(r, db)

	// 2️⃣ Order routes (guest checkout + admin reads)
	SetupOrderRoutes(r, db)

	// 3️⃣ Auth routes
	SetupAuthRoutes(r, db)

	// 4️⃣ Admin dashboard routes (JWT-protected)
	SetupAdminRoutes(r, db)
}
