package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khushi161014/studio-treta/models"
	"github.com/khushi161014/studio-treta/validation"
)

// -------- Request Structs --------

type CreateOrderItemInput struct {
	ProductID *uint `json:"productId" binding:"required"`
	Quantity  *int  `json:"quantity" binding:"required,gte=1"`
	Price     *int  `json:"price" binding:"required,gte=0"`
}

type CreateOrderInput struct {
	Items         []CreateOrderItemInput `json:"items" binding:"required,min=1,dive"`
	Total         *int                   `json:"total" binding:"required,gte=0"`
	Status        string                 `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	CustomerEmail string                 `json:"customerEmail" binding:"omitempty,email"`
	CustomerName  string                 `json:"customerName"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// CreateOrderHandler is the single write path for orders. Guest checkout:
// no auth required. The payload is validated field by field before anything
// touches storage; the stored rows are a frozen snapshot of the submitted
// items and total.
//
// POST /orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			field, message := validation.FirstError(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": message, "field": field})
			return
		}

		status := models.OrderStatusPending
		if input.Status != "" {
			var err error
			if status, err = mapOrderStatus(input.Status); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "status"})
				return
			}
		}

		items := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, models.OrderItem{
				ProductID:  *item.ProductID,
				Quantity:   *item.Quantity,
				PriceCents: *item.Price,
			})
		}

		order := models.Order{
			OrderRef:      generateOrderRef(),
			Status:        status,
			TotalCents:    *input.Total,
			CustomerEmail: input.CustomerEmail,
			CustomerName:  input.CustomerName,
			Items:         items,
			CreatedAt:     time.Now(),
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrdersHandler lists every order, newest first. Admin only.
// GET /orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler fetches a single order by numeric id or order_ref.
// GET /admin/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		// Numeric ids look up by primary key, anything else by order_ref
		query := db.Preload("Items")
		if _, err := strconv.Atoi(id); err == nil {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("order_ref = ?", id)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler mutates status, the only mutable order field.
// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if _, err := strconv.Atoi(orderID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			field, message := validation.FirstError(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": message, "field": field})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "status"})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
