package models

// LoginRequest represents a login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}
