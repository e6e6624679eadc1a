package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	customer := models.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
	}

	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer registered: %s", customer.Email)
	utils.RespondJSON(c, http.StatusCreated, customer)
}

// Login customer -> return JWT dengan role "customer"
func (cc *CustomerController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	if err := cc.DB.Where("email = ?", input.Email).First(&customer).Error; err != nil {
		utils.RespondErrorCode(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(input.Password)); err != nil {
		utils.RespondErrorCode(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(customer.ID, "customer")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"token": token, "role": "customer"})
}

// GetAllCustomers -> list customer dengan paging dan pencarian nama
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	query := cc.DB.Model(&models.Customer{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	var customers []models.Customer
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&customers).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"page":    page,
		"limit":   limit,
		"total":   total,
		"records": customers,
	})
}

func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := parseUintParam(c, "customer_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("customer not found"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, customer)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := parseUintParam(c, "customer_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("customer not found"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	if len(updates) > 0 {
		if err := cc.DB.Model(&customer).Updates(updates).Error; err != nil {
			utils.RespondError(c, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, customer)
}

func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := parseUintParam(c, "customer_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result := cc.DB.Delete(&models.Customer{}, id)
	if result.Error != nil {
		utils.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, utils.NotFoundError("customer not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"customer_id": id})
}
