package adminController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/khushi161014/studio-treta/models"
	"github.com/khushi161014/studio-treta/validation"
)

type approvalRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ListPendingAdmins returns the admins still waiting for approval.
// GET /admin/admin-management/pending
func ListPendingAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Admin
		if err := db.Where("approved = ?", false).Order("id").Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending admins"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

// ApproveAdmin flips a pending admin to approved so their next login
// succeeds.
// POST /admin/admin-management/approve
func ApproveAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req approvalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			field, message := validation.FirstError(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": message, "field": field})
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admin"})
			return
		}

		if err := db.Model(&admin).Update("approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve admin"})
			return
		}

		log.Printf("✅ Admin approved: %s", admin.Email)
		c.JSON(http.StatusOK, gin.H{"message": "Admin approved"})
	}
}

// RejectAdmin removes a registration; the next login starts over as
// pending.
// POST /admin/admin-management/reject
func RejectAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req approvalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			field, message := validation.FirstError(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": message, "field": field})
			return
		}

		result := db.Where("email = ?", req.Email).Delete(&models.Admin{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject admin"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}

		log.Printf("🗑️ Admin rejected: %s", req.Email)
		c.JSON(http.StatusOK, gin.H{"message": "Admin rejected"})
	}
}
