package tag

type CreateTagRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Name   string `json:"name" validate:"required"`
}

type UpdateTagRequest struct {
	ID     string `json:"id" validate:"required,uuid4"`
	UserID string `json:"user_id" validate:"required,uuid4"`
	Name   string `json:"name" validate:"required"`
}

type TagResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Counter int    `json:"counter"`
}

type TagListResponse struct {
	Tags  []TagResponse `json:"tags"`
	Count int           `json:"count"`
}
