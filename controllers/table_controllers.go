package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable -> menambahkan meja baru
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Number   string `json:"number" binding:"required"`
		Capacity int    `json:"capacity" binding:"required,gt=0"`
		Status   string `json:"status"` // optional, default "available"
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	table := models.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   "available",
	}
	if req.Status != "" {
		table.Status = req.Status
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (capacity=%d)", table.Number, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, table)
}

// GetAllTables -> list meja dengan paging dan pencarian nomor
func (tc *TableController) GetAllTables(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	query := tc.DB.Model(&models.Table{})
	if search := c.Query("search"); search != "" {
		query = query.Where("number LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	var tables []models.Table
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&tables).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"page":    page,
		"limit":   limit,
		"total":   total,
		"records": tables,
	})
}

func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := parseUintParam(c, "table_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("table not found"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, table)
}

func (tc *TableController) UpdateTable(c *gin.Context) {
	id, err := parseUintParam(c, "table_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		Number   *string `json:"number"`
		Capacity *int    `json:"capacity"`
		Status   *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("table not found"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Number != nil {
		updates["number"] = *req.Number
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := tc.DB.Model(&table).Updates(updates).Error; err != nil {
			utils.RespondError(c, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, table)
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	id, err := parseUintParam(c, "table_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result := tc.DB.Delete(&models.Table{}, id)
	if result.Error != nil {
		utils.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, utils.NotFoundError("table not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"table_id": id})
}
