package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResponse carries the authenticated user and the role-based landing
// page. The session itself travels in the cookie.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}
