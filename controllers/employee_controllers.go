package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

var validEmployeeRoles = map[string]bool{
	"admin":     true,
	"manager":   true,
	"attendant": true,
}

// Register employee baru
func (ec *EmployeeController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role" binding:"required"` // admin, manager, attendant
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	role := strings.ToLower(req.Role)
	if !validEmployeeRoles[role] {
		utils.RespondError(c, utils.BadRequestError("invalid role %q", req.Role))
		return
	}

	// Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	employee := models.Employee{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}

	if err := ec.DB.Create(&employee).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New employee registered: %s (role=%s)", employee.Email, employee.Role)
	utils.RespondJSON(c, http.StatusCreated, gin.H{"employee_id": employee.ID})
}

// Login employee -> return JWT
func (ec *EmployeeController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	var employee models.Employee
	if err := ec.DB.Where("email = ?", input.Email).First(&employee).Error; err != nil {
		utils.RespondErrorCode(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(input.Password)); err != nil {
		utils.RespondErrorCode(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(employee.ID, employee.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"token": token,
		"role":  employee.Role,
	})
}

// Logout -> blacklist token yang sedang dipakai
func (ec *EmployeeController) Logout(c *gin.Context) {
	tokenInterface, exists := c.Get("token")
	if !exists {
		utils.RespondErrorCode(c, http.StatusUnauthorized, errors.New("token not found in context"))
		return
	}

	utils.BlacklistToken(tokenInterface.(string))
	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile -> identitas dari JWT
func (ec *EmployeeController) GetProfile(c *gin.Context) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondErrorCode(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	userID, ok := userIDInterface.(uint)
	if !ok {
		utils.RespondErrorCode(c, http.StatusInternalServerError, errors.New("invalid user id type"))
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, userID).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("employee not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, employee)
}

// GetAllEmployees -> list dengan paging dan pencarian nama
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	query := ec.DB.Model(&models.Employee{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	var employees []models.Employee
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&employees).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"page":    page,
		"limit":   limit,
		"total":   total,
		"records": employees,
	})
}

func (ec *EmployeeController) GetEmployeeByID(c *gin.Context) {
	id, err := parseUintParam(c, "employee_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("employee not found"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, employee)
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, err := parseUintParam(c, "employee_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Role  *string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorCode(c, http.StatusBadRequest, err)
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("employee not found"))
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
	if req.Role != nil {
		role := strings.ToLower(*req.Role)
		if !validEmployeeRoles[role] {
			utils.RespondError(c, utils.BadRequestError("invalid role %q", *req.Role))
			return
		}
		updates["role"] = role
	}

	if len(updates) > 0 {
		if err := ec.DB.Model(&employee).Updates(updates).Error; err != nil {
			utils.RespondError(c, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, employee)
}

func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, err := parseUintParam(c, "employee_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result := ec.DB.Delete(&models.Employee{}, id)
	if result.Error != nil {
		utils.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, utils.NotFoundError("employee not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"employee_id": id})
}
