package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mattys-media/backend/apperrors"
	"github.com/mattys-media/backend/middleware"
	"github.com/mattys-media/backend/models"
)

type ICartService interface {
	Upsert(ctx context.Context, userID string, items []models.CartItem) (*models.CartResponse, error)
	Get(ctx context.Context, userID string) (*models.CartResponse, error)
	Clear(ctx context.Context, userID string) error
	Checkout(ctx context.Context, user *models.User) (*models.CheckoutResponse, error)
}

type CartController struct {
	service ICartService
}

func NewCartController(service ICartService) *CartController {
	return &CartController{service: service}
}

// UpsertCart replaces the authenticated user's cart with the posted items.
func (cc *CartController) UpsertCart(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req models.CartUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	cart, err := cc.service.Upsert(c.Request.Context(), user.ID, req.Items)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) GetCart(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	cart, err := cc.service.Get(c.Request.Context(), user.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) ClearCart(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	if err := cc.service.Clear(c.Request.Context(), user.ID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// Checkout hands the persisted cart off as a WhatsApp deep link.
func (cc *CartController) Checkout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	resp, err := cc.service.Checkout(c.Request.Context(), user)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
