package dto

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// UpdateUserRequest is the payload for PUT /api/users/:id. Empty fields
// leave the stored value unchanged.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Role  string `json:"role"`
}

// UserListResponse wraps a user listing with its count.
type UserListResponse struct {
	Count int         `json:"count"`
	Users interface{} `json:"users"`
}
