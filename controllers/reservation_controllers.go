package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/services"
	"github.com/yeremiapane/cafeteria-app/utils"
)

type ReservationController struct {
	DB      *gorm.DB
	service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:      db,
		service: services.NewReservationService(db),
	}
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, utils.BadRequestError("invalid %s", name)
	}
	return uint(value), nil
}

// CreateReservation -> buat reservasi baru setelah cek interval dan bentrok
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		TableID    uint   `json:"table_id" binding:"required"`
		CustomerID uint   `json:"customer_id" binding:"required"`
		StartTime  string `json:"start_time" binding:"required"`
		EndTime    string `json:"end_time" binding:"required"`
		Status     string `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	start, err := utils.ParseDateTime(req.StartTime)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	end, err := utils.ParseDateTime(req.EndTime)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	reservationID, err := rc.service.CreateReservation(services.CreateReservationInput{
		TableID:    req.TableID,
		CustomerID: req.CustomerID,
		StartTime:  start,
		EndTime:    end,
		Status:     req.Status,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created for table %d", reservationID, req.TableID)
	utils.RespondJSON(c, http.StatusCreated, gin.H{"reservationId": reservationID})
}

// GetAllReservations -> list reservasi dengan paging dan filter
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	filter := services.ReservationListFilter{
		Status: c.Query("status"),
	}

	if tableIDStr := c.Query("table_id"); tableIDStr != "" {
		tableID, err := strconv.ParseUint(tableIDStr, 10, 32)
		if err != nil {
			utils.RespondErrorCode(c, http.StatusBadRequest, errors.New("invalid table_id"))
			return
		}
		filter.TableID = uint(tableID)
	}

	var err error
	filter.StartTime, err = parseOptionalTime(c.Query("start_time"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	filter.EndTime, err = parseOptionalTime(c.Query("end_time"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result, err := rc.service.GetAllReservations(page, limit, filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, result)
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := utils.ParseDateTime(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CheckAvailability -> daftar meja yang bebas pada window [start, end)
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		utils.RespondErrorCode(c, http.StatusBadRequest, errors.New("start and end query parameters are required"))
		return
	}

	start, err := utils.ParseDateTime(startStr)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	end, err := utils.ParseDateTime(endStr)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	tables, err := rc.service.CheckAvailability(start, end)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"available_tables": tables})
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := parseUintParam(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	reservation, err := rc.service.GetReservationByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, reservation)
}

// UpdateReservation -> update parsial, field yang tidak dikirim dibiarkan
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := parseUintParam(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		TableID    *uint   `json:"table_id"`
		CustomerID *uint   `json:"customer_id"`
		StartTime  *string `json:"start_time"`
		EndTime    *string `json:"end_time"`
		Status     *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	patch := services.ReservationPatch{
		TableID:    req.TableID,
		CustomerID: req.CustomerID,
		Status:     req.Status,
	}

	if req.StartTime != nil {
		start, err := utils.ParseDateTime(*req.StartTime)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		patch.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := utils.ParseDateTime(*req.EndTime)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		patch.EndTime = &end
	}

	if err := rc.service.UpdateReservation(id, patch); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Reservation updated"})
}

// CancelReservation -> transisi active => canceled
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, err := parseUintParam(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := rc.service.CancelReservation(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d canceled", id)
	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Reservation canceled"})
}
