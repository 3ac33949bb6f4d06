package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/app/services"
	"github.com/myurcick/profkomlviv-sub000/internal/middleware"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
)

// AuthController handles admin authentication endpoints.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles admin login
// @Summary Admin login
// @Description Verifies admin credentials and issues a bearer token for the dashboard.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("email and password are required"))
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
