package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

// OrderService membuat order beserta item-itemnya secara atomik
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// OrderItemDetail adalah item order plus field produk saat ini
// (name/description/price/stock seperti sekarang, bukan saat order dibuat)
type OrderItemDetail struct {
	models.OrderItem
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	ProductPrice       float64 `json:"product_price"`
	StockQuantity      int     `json:"stock_quantity"`
}

type OrderWithItems struct {
	models.Order
	Items []OrderItemDetail `json:"items"`
}

type OrderPage struct {
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Total   int64            `json:"total"`
	Records []OrderWithItems `json:"records"`
}

// CreateOrder menjalankan seluruh pembuatan order dalam satu transaksi:
// insert order, lalu per item (urut sesuai input) validasi produk dan stok,
// insert item dengan snapshot harga, dan kurangi stok. Kegagalan di item
// manapun membatalkan seluruh transaksi.
func (s *OrderService) CreateOrder(tableID, employeeID uint, items []OrderItemInput) (uint, error) {
	if len(items) == 0 {
		return 0, utils.BadRequestError("order must contain at least one item")
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	order := models.Order{
		TableID:    tableID,
		EmployeeID: employeeID,
		Status:     models.OrderStatusPending,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	for _, item := range items {
		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, utils.NotFoundError("Product not found: ID %d", item.ProductID)
			}
			return 0, err
		}

		if product.StockQuantity < item.Quantity {
			tx.Rollback()
			return 0, utils.BadRequestError("Not enough stock for product ID %d", item.ProductID)
		}

		orderItem := models.OrderItem{
			OrderID:          order.ID,
			ProductID:        product.ID,
			Quantity:         item.Quantity,
			PriceAtOrderTime: product.Price,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return 0, err
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity)).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *OrderService) itemsForOrder(orderID uint) ([]OrderItemDetail, error) {
	var items []OrderItemDetail
	err := s.db.Model(&models.OrderItem{}).
		Select("order_items.*, products.name AS product_name, products.description AS product_description, products.price AS product_price, products.stock_quantity AS stock_quantity").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []OrderItemDetail{}
	}
	return items, nil
}

func (s *OrderService) GetOrderByID(id uint) (*OrderWithItems, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("order not found")
		}
		return nil, err
	}

	items, err := s.itemsForOrder(order.ID)
	if err != nil {
		return nil, err
	}

	return &OrderWithItems{Order: order, Items: items}, nil
}

func (s *OrderService) GetAllOrders(page, limit int, status string) (*OrderPage, error) {
	query := s.db.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := query.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	records := make([]OrderWithItems, 0, len(orders))
	for _, order := range orders {
		items, err := s.itemsForOrder(order.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, OrderWithItems{Order: order, Items: items})
	}

	return &OrderPage{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Records: records,
	}, nil
}

// UpdateOrderStatus mengubah status order. Membatalkan order TIDAK
// mengembalikan stok -- stok hanya berkurang saat order dibuat.
func (s *OrderService) UpdateOrderStatus(id uint, status string) error {
	result := s.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("order not found")
	}
	return nil
}

func (s *OrderService) DeleteOrder(id uint) error {
	result := s.db.Select("OrderItems").Delete(&models.Order{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("order not found")
	}
	return nil
}
