package service

import (
	"github.com/subtrackify/subtrackify/internal/model/dto"
	"github.com/subtrackify/subtrackify/internal/repository"
)

type CategoryService struct {
	subRepo *repository.SubscriptionRepository
}

func NewCategoryService(subRepo *repository.SubscriptionRepository) *CategoryService {
	return &CategoryService{
		subRepo: subRepo,
	}
}

// List 返回用户订阅中出现过的分类（去重），可选附带每个分类的订阅数
func (s *CategoryService) List(userID int64, includeCount bool) ([]*dto.CategoryInfo, error) {
	counts, err := s.subRepo.CountByCategory(userID)
	if err != nil {
		return nil, err
	}

	categories := make([]*dto.CategoryInfo, 0, len(counts))
	for _, c := range counts {
		info := &dto.CategoryInfo{Name: c.Category}
		if includeCount {
			count := c.Count
			info.Count = &count
		}
		categories = append(categories, info)
	}

	return categories, nil
}
