package user

const DefaultRole = "user"

// Roles offered when creating a user.
var Roles = []string{"admin", "mechanic", "user"}

type CreateRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
	Role     string `json:"role"`
}

func NewCreateRequest(name, email, password string) CreateRequest {
	return CreateRequest{Name: name, Email: email, Password: password, Role: DefaultRole}
}

type UpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

type LoginResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token"`
}
