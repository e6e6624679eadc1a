package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/controllers"
	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

func setupTestDBForOrders(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Employee{}, &models.Table{}, &models.Product{},
		&models.Order{}, &models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.Create(&models.Employee{Name: "Jonas", Email: "jonas@example.com", Password: "x", Role: "attendant"})
	db.Create(&models.Table{Number: "T1", Capacity: 4, Status: "available"})
	db.Create(&models.Product{Name: "Espresso", Description: "double shot", Price: 5.5, StockQuantity: 10})
	return db
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	ctrl := controllers.NewOrderController(db)
	router.POST("/orders", ctrl.CreateOrder)
	router.GET("/orders/:order_id", ctrl.GetOrderByID)
	router.PUT("/orders/:order_id", ctrl.UpdateOrder)
	return router
}

func TestCreateAndGetOrderEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"table_id":    1,
		"employee_id": 1,
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.Equal(t, float64(1), createResp["orderId"])

	w = doJSON(t, router, "GET", "/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var order struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		Items  []struct {
			ProductName      string  `json:"product_name"`
			Quantity         int     `json:"quantity"`
			PriceAtOrderTime float64 `json:"price_at_order_time"`
		} `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "pending", order.Status)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "Espresso", order.Items[0].ProductName)
	assert.Equal(t, 5.5, order.Items[0].PriceAtOrderTime)

	w = doJSON(t, router, "GET", "/orders/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderInsufficientStockEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"table_id":    1,
		"employee_id": 1,
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 999},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "error", errResp["status"])
	assert.Contains(t, errResp["message"], "Not enough stock")

	// Tidak ada order yang tertulis, stok utuh
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)

	var product models.Product
	db.First(&product, 1)
	assert.Equal(t, 10, product.StockQuantity)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"table_id":    1,
		"employee_id": 1,
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "PUT", "/orders/1", map[string]interface{}{"status": "in_preparation"})
	assert.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	db.First(&order, 1)
	assert.Equal(t, "in_preparation", order.Status)

	w = doJSON(t, router, "PUT", "/orders/999", map[string]interface{}{"status": "delivered"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
