package testutil

import (
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/subtrackify/subtrackify/internal/model"
)

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		Email:        fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz123456", // bcrypt hash placeholder
		Name:         "Test User",
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithName 设置姓名
func WithName(name string) func(*model.User) {
	return func(u *model.User) {
		u.Name = name
	}
}

// WithPassword 设置密码（使用最小 bcrypt cost，仅测试用）
func WithPassword(t *testing.T, password string) func(*model.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	return func(u *model.User) {
		u.PasswordHash = string(hash)
	}
}

// TestSubscription 创建测试订阅
func TestSubscription(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.Subscription)) *model.Subscription {
	t.Helper()

	sub := &model.Subscription{
		UserID:          userID,
		Name:            fmt.Sprintf("Test Subscription %d", time.Now().UnixNano()%10000),
		Price:           9.99,
		Currency:        "USD",
		BillingCycle:    "monthly",
		NextBillingDate: time.Now().AddDate(0, 1, 0),
		Status:          "active",
	}

	for _, opt := range opts {
		opt(sub)
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}

// WithSubscriptionName 设置订阅名称
func WithSubscriptionName(name string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Name = name
	}
}

// WithPrice 设置价格
func WithPrice(price float64) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Price = price
	}
}

// WithCategory 设置分类
func WithCategory(category string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Category = &category
	}
}

// WithStatus 设置状态
func WithStatus(status string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Status = status
	}
}

// WithBillingCycle 设置计费周期
func WithBillingCycle(cycle string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.BillingCycle = cycle
	}
}
