package category

type CreateCategoryRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid4"`
	Name     string `json:"name" validate:"required"`
	ParentID string `json:"parent_id" validate:"omitempty,uuid4"`
	IsPinned bool   `json:"is_pinned"`
}

type UpdateCategoryRequest struct {
	ID       string `json:"id" validate:"required,uuid4"`
	UserID   string `json:"user_id" validate:"required,uuid4"`
	Name     string `json:"name" validate:"required"`
	IsPinned *bool  `json:"is_pinned"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	ParentID  string `json:"parent_id,omitempty"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
	IsPinned  bool   `json:"is_pinned"`
	CreatedAt string `json:"created_at"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Count      int                `json:"count"`
}
