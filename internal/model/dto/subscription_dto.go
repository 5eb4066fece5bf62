package dto

import (
	"time"
)

// CreateSubscriptionRequest 创建订阅请求
type CreateSubscriptionRequest struct {
	Name            string    `json:"name" binding:"required,min=1,max=255"`
	Description     *string   `json:"description,omitempty" binding:"omitempty,max=1000"`
	Price           float64   `json:"price" binding:"required,gt=0"`
	Currency        string    `json:"currency" binding:"omitempty,len=3"`
	BillingCycle    string    `json:"billing_cycle" binding:"required,oneof=daily weekly monthly yearly"`
	NextBillingDate time.Time `json:"next_billing_date" binding:"required"`
	Category        *string   `json:"category,omitempty" binding:"omitempty,max=100"`
}

// UpdateSubscriptionRequest 更新订阅请求（字段均可选）
type UpdateSubscriptionRequest struct {
	Name            *string    `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description     *string    `json:"description,omitempty" binding:"omitempty,max=1000"`
	Price           *float64   `json:"price,omitempty" binding:"omitempty,gt=0"`
	Currency        *string    `json:"currency,omitempty" binding:"omitempty,len=3"`
	BillingCycle    *string    `json:"billing_cycle,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
	NextBillingDate *time.Time `json:"next_billing_date,omitempty"`
	Status          *string    `json:"status,omitempty" binding:"omitempty,oneof=active cancelled paused"`
	Category        *string    `json:"category,omitempty" binding:"omitempty,max=100"`
}

// IsEmpty 是否没有任何待更新字段
func (r *UpdateSubscriptionRequest) IsEmpty() bool {
	return r.Name == nil &&
		r.Description == nil &&
		r.Price == nil &&
		r.Currency == nil &&
		r.BillingCycle == nil &&
		r.NextBillingDate == nil &&
		r.Status == nil &&
		r.Category == nil
}

// ListSubscriptionsQuery 订阅列表过滤条件（价格区间为闭区间）
type ListSubscriptionsQuery struct {
	Category string   `form:"category"`
	Status   string   `form:"status" binding:"omitempty,oneof=active cancelled paused"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,gte=0"`
}
