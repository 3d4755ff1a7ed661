package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bookstore-api/internal/application/service"
	"github.com/sangkips/bookstore-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bookstore-api/internal/presentation/http/dto/response"
)

// AuthHandler serves admin sign-in
type AuthHandler struct {
	authService Authenticator
}

func NewAuthHandler(authService Authenticator) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles admin login
// @Summary Admin login
// @Description Authenticate an admin and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.NormalizedEmail(),
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", response.NewLoginResponse(output.Admin, output.AccessToken, output.ExpiresIn))
}
