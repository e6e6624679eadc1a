package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

// ProductService menangani primitive stok di luar pembuatan order
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) getProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("product not found")
		}
		return nil, err
	}
	return &product, nil
}

// IncreaseStock menambah stok tanpa syarat
func (s *ProductService) IncreaseStock(id uint, quantity int) (*models.Product, error) {
	product, err := s.getProduct(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(product).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity)).Error; err != nil {
		return nil, err
	}

	return s.getProduct(id)
}

// DecreaseStock menolak pengurangan yang membuat stok negatif
func (s *ProductService) DecreaseStock(id uint, quantity int) (*models.Product, error) {
	product, err := s.getProduct(id)
	if err != nil {
		return nil, err
	}

	if product.StockQuantity-quantity < 0 {
		return nil, utils.BadRequestError("Not enough stock for product ID %d", id)
	}

	if err := s.db.Model(product).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity)).Error; err != nil {
		return nil, err
	}

	return s.getProduct(id)
}
