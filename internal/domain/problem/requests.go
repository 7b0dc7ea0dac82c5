package problem

type CreateRequest struct {
	Name        string  `json:"name" validate:"notblank"`
	Category    string  `json:"category" validate:"notblank"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
}

// NewCreateRequest returns a request for an active problem.
func NewCreateRequest(name, category string) CreateRequest {
	return CreateRequest{Name: name, Category: category, IsActive: true}
}

type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
