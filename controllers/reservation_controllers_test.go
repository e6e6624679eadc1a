package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/controllers"
	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

func setupTestDBForReservations(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Table{}, &models.Customer{}, &models.Reservation{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.Create(&models.Table{Number: "A1", Capacity: 4, Status: "available"})
	db.Create(&models.Table{Number: "A2", Capacity: 2, Status: "available"})
	db.Create(&models.Customer{Name: "Maria", Email: "maria@example.com", Password: "x"})
	return db
}

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	ctrl := controllers.NewReservationController(db)
	router.POST("/reservations", ctrl.CreateReservation)
	router.GET("/reservations", ctrl.GetAllReservations)
	router.GET("/reservations/check-availability", ctrl.CheckAvailability)
	router.GET("/reservations/:reservation_id", ctrl.GetReservationByID)
	router.PUT("/reservations/:reservation_id", ctrl.UpdateReservation)
	router.PATCH("/reservations/:reservation_id/cancel", ctrl.CancelReservation)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
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
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReservationEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"start_time":  "2025-06-01 10:00:00",
		"end_time":    "2025-06-01 12:00:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp["reservationId"])

	// Interval terbalik -> 400
	w = doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"start_time":  "2025-06-01 14:00:00",
		"end_time":    "2025-06-01 13:00:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Timestamp tidak valid -> 400
	w = doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"start_time":  "not-a-date",
		"end_time":    "2025-06-01 13:00:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Overlap dengan reservasi pertama -> 409 dengan body error standar
	w = doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"start_time":  "2025-06-01 11:00:00",
		"end_time":    "2025-06-01 13:00:00",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var errResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "error", errResp["status"])
	assert.NotEmpty(t, errResp["message"])
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	// Meja 1 terisi 10-12
	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"start_time":  "2025-06-01 10:00:00",
		"end_time":    "2025-06-01 12:00:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET",
		"/reservations/check-availability?start=2025-06-01%2009:00:00&end=2025-06-01%2011:00:00", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AvailableTables []models.Table `json:"available_tables"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.AvailableTables, 1)
	assert.Equal(t, "A2", resp.AvailableTables[0].Number)

	// Parameter hilang -> 400
	w = doJSON(t, router, "GET", "/reservations/check-availability?start=2025-06-01%2009:00:00", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelReservationEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"start_time":  "2025-06-01 10:00:00",
		"end_time":    "2025-06-01 12:00:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "PATCH", "/reservations/1/cancel", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Cancel ulang -> 404 (sudah canceled)
	w = doJSON(t, router, "PATCH", "/reservations/1/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Id tidak ada -> 404
	w = doJSON(t, router, "PATCH", "/reservations/999/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReservationEndpoints(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"table_id":    1,
		"customer_id": 1,
		"start_time":  "2025-06-01 10:00:00",
		"end_time":    "2025-06-01 12:00:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/reservations/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/reservations/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "GET", "/reservations?page=1&limit=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Page    int                      `json:"page"`
		Limit   int                      `json:"limit"`
		Total   int64                    `json:"total"`
		Records []map[string]interface{} `json:"records"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, "Maria", list.Records[0]["customer_name"])
}
