package model

import (
	"time"
)

type Subscription struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	UserID          int64     `gorm:"not null;index" json:"user_id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Description     *string   `gorm:"size:1000" json:"description,omitempty"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Currency        string    `gorm:"size:3;not null;default:USD" json:"currency"`
	BillingCycle    string    `gorm:"size:20;not null" json:"billing_cycle"` // daily, weekly, monthly, yearly
	NextBillingDate time.Time `gorm:"not null" json:"next_billing_date"`
	Status          string    `gorm:"size:20;not null;default:active;index" json:"status"` // active, cancelled, paused
	Category        *string   `gorm:"size:100;index" json:"category,omitempty"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// 关联（删除用户时级联删除订阅）
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
