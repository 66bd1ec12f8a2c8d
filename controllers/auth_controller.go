package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mattys-media/backend/apperrors"
	"github.com/mattys-media/backend/middleware"
	"github.com/mattys-media/backend/models"
)

type IAuthService interface {
	Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

type AuthController struct {
	service IAuthService
}

func NewAuthController(service IAuthService) *AuthController {
	return &AuthController{service: service}
}

// bindingError turns gin binding failures into a client-facing message.
// Field-level validator errors name the offending field; anything else is
// a generic bad-body error.
func bindingError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "Invalid field: " + verrs[0].Field()
	}
	return "Invalid JSON body"
}

func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	resp, err := ac.service.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	resp, err := ac.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's projection.
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, user.ToResponse())
}
