package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/subtrackify/subtrackify/internal/model"
	"github.com/subtrackify/subtrackify/internal/model/dto"
	"github.com/subtrackify/subtrackify/internal/repository"
)

var (
	ErrSubscriptionNotFound = errors.New("Subscription not found")
	ErrNoFieldsToUpdate     = errors.New("No fields to update")
)

const defaultCurrency = "USD"

type SubscriptionService struct {
	subRepo *repository.SubscriptionRepository
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{
		subRepo: subRepo,
	}
}

// List 获取用户订阅列表
func (s *SubscriptionService) List(userID int64, filters *dto.ListSubscriptionsQuery) ([]*model.Subscription, error) {
	return s.subRepo.ListByUser(userID, filters)
}

// Get 获取单个订阅，越权访问和不存在统一返回 NotFound
func (s *SubscriptionService) Get(id, userID int64) (*model.Subscription, error) {
	sub, err := s.subRepo.GetByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}

// Create 创建订阅
func (s *SubscriptionService) Create(userID int64, req *dto.CreateSubscriptionRequest) (*model.Subscription, error) {
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	sub := &model.Subscription{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Currency:        currency,
		BillingCycle:    req.BillingCycle,
		NextBillingDate: req.NextBillingDate,
		Status:          "active",
		Category:        req.Category,
	}

	if err := s.subRepo.Create(sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// Update 更新订阅，先确认归属
func (s *SubscriptionService) Update(id, userID int64, req *dto.UpdateSubscriptionRequest) (*model.Subscription, error) {
	if req.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	sub, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Description != nil {
		sub.Description = req.Description
	}
	if req.Price != nil {
		sub.Price = *req.Price
	}
	if req.Currency != nil {
		sub.Currency = *req.Currency
	}
	if req.BillingCycle != nil {
		sub.BillingCycle = *req.BillingCycle
	}
	if req.NextBillingDate != nil {
		sub.NextBillingDate = *req.NextBillingDate
	}
	if req.Status != nil {
		sub.Status = *req.Status
	}
	if req.Category != nil {
		sub.Category = req.Category
	}

	if err := s.subRepo.Update(sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// Delete 删除订阅，先确认归属
func (s *SubscriptionService) Delete(id, userID int64) error {
	if _, err := s.Get(id, userID); err != nil {
		return err
	}
	return s.subRepo.DeleteByIDAndUser(id, userID)
}
