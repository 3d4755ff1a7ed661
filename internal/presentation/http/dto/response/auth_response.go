package response

import (
	"github.com/google/uuid"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
)

// AdminResponse is the public view of an admin account
type AdminResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	BusinessName string    `json:"business_name"`
	Email        string    `json:"email"`
}

// LoginResponse is returned by a successful admin login
type LoginResponse struct {
	Admin       AdminResponse `json:"admin"`
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
}

// NewLoginResponse builds a bearer-token login payload
func NewLoginResponse(admin *entity.Admin, token string, expiresIn int64) LoginResponse {
	return LoginResponse{
		Admin: AdminResponse{
			ID:           admin.ID,
			FullName:     admin.FullName,
			BusinessName: admin.BusinessName,
			Email:        admin.Email,
		},
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}
}
