package models

import "time"

type Product struct {
	ID             string            `json:"id" bson:"id"`
	Name           string            `json:"name" bson:"name"`
	Category       string            `json:"category" bson:"category"`
	Description    string            `json:"description" bson:"description"`
	BasePrice      float64           `json:"base_price" bson:"base_price"`
	Images         []string          `json:"images" bson:"images"`
	Specifications map[string]string `json:"specifications" bson:"specifications"`
	CreatedAt      time.Time         `json:"created_at" bson:"created_at"`
}

// ProductResponse is the public projection returned by the catalog
// endpoints. It drops created_at.
type ProductResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	BasePrice      float64           `json:"base_price"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
}

func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Description:    p.Description,
		BasePrice:      p.BasePrice,
		Images:         p.Images,
		Specifications: p.Specifications,
	}
}
