package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattys-media/backend/apperrors"
	"github.com/mattys-media/backend/models"
)

type ICartRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Cart, error)
	Upsert(ctx context.Context, userID string, items []models.CartItem, total float64) (*models.Cart, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type CartService struct {
	repo ICartRepository
}

func NewCartService(repo ICartRepository) *CartService {
	return &CartService{repo: repo}
}

// Total recomputes the cart total from its items. The stored total is
// never trusted independently of this sum.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Upsert replaces the user's cart with the given items. The cart id and
// created_at survive replacement; a first write creates the cart.
func (s *CartService) Upsert(ctx context.Context, userID string, items []models.CartItem) (*models.CartResponse, error) {
	cart, err := s.repo.Upsert(ctx, userID, items, Total(items))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &models.CartResponse{ID: cart.ID, Items: cart.Items, Total: cart.Total}, nil
}

// Get returns the user's cart, or the empty sentinel when none exists.
func (s *CartService) Get(ctx context.Context, userID string) (*models.CartResponse, error) {
	cart, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if cart == nil {
		return &models.CartResponse{ID: "", Items: []models.CartItem{}, Total: 0}, nil
	}
	return &models.CartResponse{ID: cart.ID, Items: cart.Items, Total: cart.Total}, nil
}

// Clear deletes the user's cart. Clearing an absent cart succeeds.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// Checkout builds the pre-filled WhatsApp deep link from the user's
// persisted cart. The line separator is the literal %0A WhatsApp expects
// inside wa.me text parameters.
func (s *CartService) Checkout(ctx context.Context, user *models.User) (*models.CheckoutResponse, error) {
	cart, err := s.repo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	lines := []string{
		fmt.Sprintf("🔥 NEW ORDER from %s", user.Name),
		fmt.Sprintf("📧 Email: %s", user.Email),
		"",
		"📦 ITEMS:",
	}

	for _, item := range cart.Items {
		customText := ""
		if item.CustomText != "" {
			customText = fmt.Sprintf(" | Custom: %s", item.CustomText)
		}
		lines = append(lines, fmt.Sprintf("• %s x%d - $%.2f%s", item.ProductName, item.Quantity, item.Price, customText))
	}

	lines = append(lines, "", fmt.Sprintf("💰 TOTAL: $%.2f", cart.Total))

	message := strings.Join(lines, "%0A")
	return &models.CheckoutResponse{
		WhatsAppURL: "https://wa.me/?text=" + message,
		Message:     message,
	}, nil
}
