package request

import "strings"

// LoginRequest is the admin sign-in body. Passwords past bcrypt's 72 byte
// input limit are rejected rather than silently truncated.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

// NormalizedEmail is the email as admin accounts store it
func (r *LoginRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}
