package store

import (
	"errors"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// ownerSummary limits the preloaded owner to the fields staff listings need.
func ownerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "email", "first_name", "last_name")
}

func withOrderDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Items.MenuItem").Preload("User", ownerSummary)
}

// GetOrderByID returns the order joined with its items and their menu item
// details, or ErrNotFound.
func GetOrderByID(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items.MenuItem").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns all orders, newest first, with items, menu details and
// the owner summary.
func ListOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := withOrderDetails(db).Order("created_at desc").Find(&orders).Error
	return orders, err
}

// ListOrdersByEmail returns the orders owned by the user registered under
// email, newest first.
func ListOrdersByEmail(db *gorm.DB, email string) ([]models.Order, error) {
	var orders []models.Order
	err := withOrderDetails(db).
		Joins("JOIN users ON users.id = orders.user_id").
		Where("users.email = ?", email).
		Order("orders.created_at desc").
		Find(&orders).Error
	return orders, err
}

// CreateOrderWithItems creates the order row and all of its items in a
// single transaction. Every item's menu item reference is checked inside
// the transaction; any failure rolls the whole order back.
func CreateOrderWithItems(db *gorm.DB, order *models.Order) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			var count int64
			if err := tx.Model(&models.MenuItem{}).Where("id = ?", item.MenuItemID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrMenuItemRef
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:  order.ID,
			ToStatus: models.StatusPending,
			Note:     "Order placed",
		}
		return tx.Create(&history).Error
	})
}

// UpdateOrderStatus moves the order to status, appends a history row and
// returns the order with items and menu details. ErrNotFound if the order
// does not exist.
func UpdateOrderStatus(db *gorm.DB, id uint, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		prev := order.Status
		if err := tx.Model(&order).Update("status", status).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: prev,
			ToStatus:   status,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}
	return GetOrderByID(db, id)
}

// DeleteOrder hard-deletes the order and its items. ErrNotFound if absent.
func DeleteOrder(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderStatusHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}
