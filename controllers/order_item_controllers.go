package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

type OrderItemController struct {
	DB *gorm.DB
}

func NewOrderItemController(db *gorm.DB) *OrderItemController {
	return &OrderItemController{DB: db}
}

// GetAllOrderItems -> list item order, bisa difilter per order
func (oic *OrderItemController) GetAllOrderItems(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	query := oic.DB.Model(&models.OrderItem{})
	if orderIDStr := c.Query("order_id"); orderIDStr != "" {
		orderID, err := strconv.ParseUint(orderIDStr, 10, 32)
		if err != nil {
			utils.RespondErrorCode(c, http.StatusBadRequest, errors.New("invalid order_id"))
			return
		}
		query = query.Where("order_id = ?", orderID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	var items []models.OrderItem
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"page":    page,
		"limit":   limit,
		"total":   total,
		"records": items,
	})
}

func (oic *OrderItemController) GetOrderItemByID(c *gin.Context) {
	id, err := parseUintParam(c, "item_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var item models.OrderItem
	if err := oic.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("order item not found"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, item)
}

// DeleteOrderItem menghapus satu item; stok tidak dikembalikan
func (oic *OrderItemController) DeleteOrderItem(c *gin.Context) {
	id, err := parseUintParam(c, "item_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result := oic.DB.Delete(&models.OrderItem{}, id)
	if result.Error != nil {
		utils.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, utils.NotFoundError("order item not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"item_id": id})
}
