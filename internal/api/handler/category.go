package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/subtrackify/subtrackify/internal/api/middleware"
	"github.com/subtrackify/subtrackify/internal/model/dto"
	"github.com/subtrackify/subtrackify/internal/pkg/response"
	"github.com/subtrackify/subtrackify/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List 获取用户订阅的分类列表
// GET /api/categories?include_count=true
func (h *CategoryHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var query dto.ListCategoriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	categories, err := h.categoryService.List(userID, query.IncludeCount)
	if err != nil {
		log.Printf("list categories failed: %v", err)
		response.ServerError(c, "Failed to fetch categories")
		return
	}

	response.Success(c, categories)
}
