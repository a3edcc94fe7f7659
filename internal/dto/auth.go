package dto

// RegisterRequest is the /registro payload. Fields are pointers so that an
// empty string is accepted and only an absent key or null is rejected.
type RegisterRequest struct {
	Name     *string `json:"nombre" validate:"required"`
	Role     *string `json:"rol" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// LoginRequest is the /login payload.
type LoginRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// UserInfo is the public projection of a user. It never carries the password.
type UserInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
	Role string `json:"rol"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string   `json:"mensaje"`
	User    UserInfo `json:"usuario"`
}

// MessageResponse acknowledges a write.
type MessageResponse struct {
	Message string `json:"mensaje"`
}
