package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

type Order struct {
	ID            uint                 `json:"id" gorm:"primaryKey"`
	Address       string               `json:"address" gorm:"not null"`
	Date          time.Time            `json:"date" gorm:"not null"`
	Description   string               `json:"description"`
	Status        OrderStatus          `json:"status" gorm:"not null;default:'PENDING'"`
	UserID        uint                 `json:"userId" gorm:"not null"`
	User          *User                `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items         []OrderItem          `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"orderId" gorm:"not null"`
	MenuItemID uint     `json:"menuItemId" gorm:"not null"`
	MenuItem   MenuItem `json:"menuItem" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
}

// OrderStatusHistory records every status change on an order.
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"orderId" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
