package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/services"
	"github.com/yeremiapane/cafeteria-app/utils"
)

type OrderController struct {
	DB      *gorm.DB
	service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:      db,
		service: services.NewOrderService(db),
	}
}

// CreateOrder -> buat order + items + pengurangan stok dalam satu transaksi
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableID    uint                      `json:"table_id" binding:"required"`
		EmployeeID uint                      `json:"employee_id" binding:"required"`
		Items      []services.OrderItemInput `json:"items" binding:"required,min=1,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	orderID, err := oc.service.CreateOrder(req.TableID, req.EmployeeID, req.Items)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created with %d items", orderID, len(req.Items))
	utils.RespondJSON(c, http.StatusCreated, gin.H{"orderId": orderID})
}

// GetAllOrders -> list orders beserta items
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	result, err := oc.service.GetAllOrders(page, limit, c.Query("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, result)
}

// GetOrderByID -> detail 1 order dengan item + data produk saat ini
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := parseUintParam(c, "order_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	order, err := oc.service.GetOrderByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, order)
}

// UpdateOrder -> update status order. Cancel tidak mengembalikan stok.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := parseUintParam(c, "order_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.service.UpdateOrderStatus(id, req.Status); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Order updated"})
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := parseUintParam(c, "order_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := oc.service.DeleteOrder(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"order_id": id})
}
