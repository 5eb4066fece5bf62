package repository

import (
	"gorm.io/gorm"

	"github.com/subtrackify/subtrackify/internal/model"
	"github.com/subtrackify/subtrackify/internal/model/dto"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.db.Create(sub).Error
}

// GetByIDAndUser 按所有者查询，未命中返回 gorm.ErrRecordNotFound
func (r *SubscriptionRepository) GetByIDAndUser(id, userID int64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListByUser 获取用户的订阅列表，支持分类/状态/价格区间过滤
func (r *SubscriptionRepository) ListByUser(userID int64, filters *dto.ListSubscriptionsQuery) ([]*model.Subscription, error) {
	// 无结果时返回空切片而不是 nil，序列化为 []
	subs := make([]*model.Subscription, 0)

	query := r.db.Model(&model.Subscription{}).Where("user_id = ?", userID)

	if filters != nil {
		if filters.Category != "" {
			query = query.Where("category = ?", filters.Category)
		}
		if filters.Status != "" {
			query = query.Where("status = ?", filters.Status)
		}
		if filters.MinPrice != nil {
			query = query.Where("price >= ?", *filters.MinPrice)
		}
		if filters.MaxPrice != nil {
			query = query.Where("price <= ?", *filters.MaxPrice)
		}
	}

	if err := query.Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *SubscriptionRepository) Update(sub *model.Subscription) error {
	return r.db.Save(sub).Error
}

func (r *SubscriptionRepository) DeleteByIDAndUser(id, userID int64) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Subscription{}).Error
}

// CategoryCount 单个分类的订阅数量
type CategoryCount struct {
	Category string
	Count    int64
}

// CountByCategory 一次分组查询统计各分类的订阅数
func (r *SubscriptionRepository) CountByCategory(userID int64) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.Model(&model.Subscription{}).
		Select("category, COUNT(*) AS count").
		Where("user_id = ? AND category IS NOT NULL AND category <> ''", userID).
		Group("category").
		Order("category").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
