package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboardStats mengambil statistik agregat, opsional dibatasi window
// start_date / end_date (format "2006-01-02 15:04:05")
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	start, err := parseOptionalTime(c.Query("start_date"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	end, err := parseOptionalTime(c.Query("end_date"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	inWindow := func(query *gorm.DB, column string) *gorm.DB {
		if start != nil {
			query = query.Where(column+" >= ?", *start)
		}
		if end != nil {
			query = query.Where(column+" <= ?", *end)
		}
		return query
	}

	var stats struct {
		TotalOrders  int64   `json:"total_orders"`
		TotalRevenue float64 `json:"total_revenue"`
		OrderStats   struct {
			Pending       int64 `json:"pending"`
			InPreparation int64 `json:"in_preparation"`
			Delivered     int64 `json:"delivered"`
			Canceled      int64 `json:"canceled"`
		} `json:"order_stats"`
		ReservationStats struct {
			Active    int64 `json:"active"`
			Canceled  int64 `json:"canceled"`
			Completed int64 `json:"completed"`
		} `json:"reservation_stats"`
		TableStats struct {
			Available   int64 `json:"available"`
			Unavailable int64 `json:"unavailable"`
		} `json:"table_stats"`
		TopProducts []struct {
			ProductID uint    `json:"product_id"`
			Name      string  `json:"name"`
			Quantity  int64   `json:"quantity"`
			Revenue   float64 `json:"revenue"`
		} `json:"top_products"`
	}

	inWindow(dc.DB.Model(&models.Order{}), "created_at").Count(&stats.TotalOrders)

	// Order status counts
	inWindow(dc.DB.Model(&models.Order{}), "created_at").
		Where("status = ?", models.OrderStatusPending).Count(&stats.OrderStats.Pending)
	inWindow(dc.DB.Model(&models.Order{}), "created_at").
		Where("status = ?", models.OrderStatusInPreparation).Count(&stats.OrderStats.InPreparation)
	inWindow(dc.DB.Model(&models.Order{}), "created_at").
		Where("status = ?", models.OrderStatusDelivered).Count(&stats.OrderStats.Delivered)
	inWindow(dc.DB.Model(&models.Order{}), "created_at").
		Where("status = ?", models.OrderStatusCanceled).Count(&stats.OrderStats.Canceled)

	// Revenue dari snapshot harga item, order canceled tidak dihitung
	revenueQuery := dc.DB.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status <> ?", models.OrderStatusCanceled).
		Select("COALESCE(SUM(order_items.quantity * order_items.price_at_order_time), 0)")
	inWindow(revenueQuery, "orders.created_at").Row().Scan(&stats.TotalRevenue)

	// Reservation status counts
	inWindow(dc.DB.Model(&models.Reservation{}), "start_time").
		Where("status = ?", models.ReservationStatusActive).Count(&stats.ReservationStats.Active)
	inWindow(dc.DB.Model(&models.Reservation{}), "start_time").
		Where("status = ?", models.ReservationStatusCanceled).Count(&stats.ReservationStats.Canceled)
	inWindow(dc.DB.Model(&models.Reservation{}), "start_time").
		Where("status = ?", models.ReservationStatusCompleted).Count(&stats.ReservationStats.Completed)

	// Table stats
	dc.DB.Model(&models.Table{}).Where("status = ?", "available").Count(&stats.TableStats.Available)
	dc.DB.Model(&models.Table{}).Where("status = ?", "unavailable").Count(&stats.TableStats.Unavailable)

	// Top products berdasarkan jumlah terjual
	topQuery := dc.DB.Model(&models.OrderItem{}).
		Select("products.id AS product_id, products.name AS name, SUM(order_items.quantity) AS quantity, SUM(order_items.quantity * order_items.price_at_order_time) AS revenue").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status <> ?", models.OrderStatusCanceled)
	inWindow(topQuery, "orders.created_at").
		Group("products.id, products.name").
		Order("quantity DESC").
		Limit(10).
		Scan(&stats.TopProducts)

	utils.RespondJSON(c, http.StatusOK, stats)
}
