package models

import "time"

type CartItem struct {
	ProductID   string  `json:"product_id" bson:"product_id" binding:"required"`
	ProductName string  `json:"product_name" bson:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" bson:"quantity" binding:"required,gt=0"`
	CustomText  string  `json:"custom_text,omitempty" bson:"custom_text,omitempty"`
	Price       float64 `json:"price" bson:"price" binding:"gte=0"`
}

type Cart struct {
	ID        string     `json:"id" bson:"id"`
	UserID    string     `json:"user_id" bson:"user_id"`
	Items     []CartItem `json:"items" bson:"items"`
	Total     float64    `json:"total" bson:"total"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

type CartUpsertRequest struct {
	Items []CartItem `json:"items" binding:"required,dive"`
}

// CartResponse is the cart projection returned to clients. An empty ID
// with no items is the "no cart yet" sentinel, not an addressable key.
type CartResponse struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

type CheckoutResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
	Message     string `json:"message"`
}
