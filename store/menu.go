package store

import (
	"errors"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// ListAvailableMenuItems returns every available menu item sorted by name.
func ListAvailableMenuItems(db *gorm.DB) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := db.Where("is_available = ?", true).Order("name asc").Find(&items).Error
	return items, err
}

func CreateMenuItem(db *gorm.DB, item *models.MenuItem) error {
	return db.Create(item).Error
}

// GetMenuItem returns the item by id, or ErrNotFound.
func GetMenuItem(db *gorm.DB, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// UpdateMenuItem applies the given field changes to an existing item and
// returns the updated row.
func UpdateMenuItem(db *gorm.DB, id uint, changes map[string]interface{}) (*models.MenuItem, error) {
	item, err := GetMenuItem(db, id)
	if err != nil {
		return nil, err
	}
	if err := db.Model(item).Updates(changes).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func DeleteMenuItem(db *gorm.DB, id uint) error {
	res := db.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
