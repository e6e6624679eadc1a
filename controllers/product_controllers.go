package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/services"
	"github.com/yeremiapane/cafeteria-app/utils"
)

type ProductController struct {
	DB      *gorm.DB
	service *services.ProductService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{
		DB:      db,
		service: services.NewProductService(db),
	}
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required"`
		Description   string  `json:"description"`
		Price         float64 `json:"price" binding:"required,gt=0"`
		StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New product created: %s", product.Name)
	utils.RespondJSON(c, http.StatusCreated, product)
}

// GetAllProducts -> list produk dengan paging dan pencarian nama
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	query := pc.DB.Model(&models.Product{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	var products []models.Product
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"page":    page,
		"limit":   limit,
		"total":   total,
		"records": products,
	})
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := parseUintParam(c, "product_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("product not found"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := parseUintParam(c, "product_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		Price         *float64 `json:"price"`
		StockQuantity *int     `json:"stock_quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("product not found"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			utils.RespondError(c, utils.BadRequestError("stock_quantity cannot be negative"))
			return
		}
		updates["stock_quantity"] = *req.StockQuantity
	}

	if len(updates) > 0 {
		if err := pc.DB.Model(&product).Updates(updates).Error; err != nil {
			utils.RespondError(c, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := parseUintParam(c, "product_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result := pc.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		utils.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, utils.NotFoundError("product not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"product_id": id})
}

// IncreaseStock -> POST /products/:product_id/increase
func (pc *ProductController) IncreaseStock(c *gin.Context) {
	pc.adjustStock(c, pc.service.IncreaseStock)
}

// DecreaseStock -> POST /products/:product_id/decrease, gagal jika stok kurang
func (pc *ProductController) DecreaseStock(c *gin.Context) {
	pc.adjustStock(c, pc.service.DecreaseStock)
}

func (pc *ProductController) adjustStock(c *gin.Context, adjust func(uint, int) (*models.Product, error)) {
	id, err := parseUintParam(c, "product_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	product, err := adjust(id, req.Quantity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, product)
}
