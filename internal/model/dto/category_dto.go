package dto

// ListCategoriesQuery 分类列表查询参数
type ListCategoriesQuery struct {
	IncludeCount bool `form:"include_count"`
}

// CategoryInfo 分类信息（Count 仅在 include_count=true 时返回）
type CategoryInfo struct {
	Name  string `json:"name"`
	Count *int64 `json:"count,omitempty"`
}
