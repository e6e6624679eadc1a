package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/router"
	"github.com/yeremiapane/cafeteria-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestDB -> migrasi semua model di SQLite in-memory
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Employee{},
		&models.Customer{},
		&models.Table{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func request(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// TestEndToEndIntegration menguji flow utama:
// 0. Register admin + login -> token
// 1. Seed table, product, customer lewat API
// 2. Create reservation, reservasi bentrok ditolak, cek availability
// 3. Create order -> stok berkurang
// 4. Order dengan stok kurang ditolak utuh
// 5. Dashboard stats
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	// Register + login
	w := request(t, r, "POST", "/register", "", map[string]interface{}{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, "POST", "/login", "", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	token, _ := decode(t, w)["token"].(string)
	assert.NotEmpty(t, token)

	// Tanpa token -> 401
	w = request(t, r, "GET", "/tables", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Seed data lewat API
	w = request(t, r, "POST", "/tables", token, map[string]interface{}{
		"number": "T1", "capacity": 4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, "POST", "/products", token, map[string]interface{}{
		"name": "Espresso", "description": "double shot", "price": 5.5, "stock_quantity": 10,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, "POST", "/customers", token, map[string]interface{}{
		"name": "Maria", "email": "maria@example.com", "phone": "555-0101", "password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Reservasi pertama sukses
	w = request(t, r, "POST", "/reservations", token, map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"start_time":  "2025-06-01 10:00:00",
		"end_time":    "2025-06-01 12:00:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Reservasi overlap ditolak
	w = request(t, r, "POST", "/reservations", token, map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"start_time":  "2025-06-01 11:00:00",
		"end_time":    "2025-06-01 13:00:00",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Availability: satu-satunya meja sedang terisi pada window itu
	w = request(t, r, "GET",
		"/reservations/check-availability?start=2025-06-01%2010:30:00&end=2025-06-01%2011:30:00", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var avail struct {
		AvailableTables []models.Table `json:"available_tables"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &avail))
	assert.Len(t, avail.AvailableTables, 0)

	// Create order -> stok berkurang
	w = request(t, r, "POST", "/orders", token, map[string]interface{}{
		"table_id":    1,
		"employee_id": 1,
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 3},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, "GET", "/products/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	product := decode(t, w)
	assert.Equal(t, float64(7), product["stock_quantity"])

	// Order melebihi stok ditolak utuh
	w = request(t, r, "POST", "/orders", token, map[string]interface{}{
		"table_id":    1,
		"employee_id": 1,
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 100},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(t, r, "GET", "/products/1", token, nil)
	product = decode(t, w)
	assert.Equal(t, float64(7), product["stock_quantity"])

	// Stock adjustment endpoints
	w = request(t, r, "POST", "/products/1/increase", token, map[string]interface{}{"quantity": 3})
	assert.Equal(t, http.StatusOK, w.Code)
	product = decode(t, w)
	assert.Equal(t, float64(10), product["stock_quantity"])

	w = request(t, r, "POST", "/products/1/decrease", token, map[string]interface{}{"quantity": 100})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Dashboard
	w = request(t, r, "GET", "/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.Equal(t, float64(1), stats["total_orders"])
	assert.Equal(t, 3*5.5, stats["total_revenue"])
}

// TestRoleGating memastikan allow-list role per route ditegakkan
func TestRoleGating(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	// Customer login -> role "customer"
	db.Create(&models.Customer{Name: "Maria", Email: "maria2@example.com", Password: "$2a$10$invalid"})
	token, err := utils.GenerateToken(1, "customer")
	assert.NoError(t, err)

	// Customer tidak boleh menyentuh stok
	w := request(t, r, "POST", "/products/1/increase", token, map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Customer tidak boleh melihat dashboard
	w = request(t, r, "GET", "/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Tapi boleh melihat reservasi
	w = request(t, r, "GET", "/reservations", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
