package dto

// LoginRequest is the admin login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token and the admin identity
// the dashboard stores client side.
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expiresIn"`
}
