package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/mattys-media/backend/models"
)

// DemoCatalog returns the fixed storefront catalog used by the seed
// endpoint. IDs are regenerated on every seed; everything else is static.
func DemoCatalog() []models.Product {
	now := time.Now().UTC()
	return []models.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Premium Business Cards",
			Category:    "business-cards",
			Description: "Make a lasting impression with our ultra-thick 32pt cards. Matte or gloss finish available.",
			BasePrice:   29.99,
			Images: []string{
				"https://images.unsplash.com/photo-1589939705384-5185137a7f0f?w=800",
				"https://images.unsplash.com/photo-1620714223589-a0ad3b4aaac9?w=800",
				"https://images.unsplash.com/photo-1611926653670-1c0426c4c0c5?w=800",
			},
			Specifications: map[string]string{
				"size":     `3.5" x 2"`,
				"material": "32pt Premium Cardstock",
				"finish":   "Matte/Gloss",
				"quantity": "250 cards",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Vibrant Vinyl Banners",
			Category:    "banners",
			Description: "Weather-resistant vinyl banners perfect for outdoor events. UV-resistant inks guaranteed.",
			BasePrice:   89.99,
			Images: []string{
				"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800",
				"https://images.unsplash.com/photo-1557804506-669a67965ba0?w=800",
				"https://images.unsplash.com/photo-1579547621309-0a9f9ab3bc13?w=800",
			},
			Specifications: map[string]string{
				"size":     "4ft x 8ft",
				"material": "13oz Vinyl",
				"finish":   "Matte",
				"grommets": "Yes",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Museum-Quality Posters",
			Category:    "posters",
			Description: "Gallery-grade posters on premium paper. Perfect for art prints and promotional displays.",
			BasePrice:   39.99,
			Images: []string{
				"https://images.unsplash.com/photo-1724443907272-75019844f658?w=800",
				"https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=800",
			},
			Specifications: map[string]string{
				"size":       `24" x 36"`,
				"material":   "200gsm Silk Paper",
				"finish":     "Satin",
				"lamination": "Optional",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Luxury Business Cards",
			Category:    "business-cards",
			Description: "Ultra-premium black metal cards with laser engraving. The ultimate flex.",
			BasePrice:   199.99,
			Images: []string{
				"https://images.unsplash.com/photo-1632516643720-e7f5d7d6ecc9?w=800",
				"https://images.unsplash.com/photo-1620714223084-8fcacc6dfd8d?w=800",
				"https://images.unsplash.com/photo-1611162616475-46b635cb6868?w=800",
			},
			Specifications: map[string]string{
				"size":     `3.5" x 2"`,
				"material": "Stainless Steel",
				"finish":   "Brushed Metal",
				"quantity": "100 cards",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Mesh Fence Banners",
			Category:    "banners",
			Description: "Wind-resistant mesh banners for construction sites and outdoor venues.",
			BasePrice:   129.99,
			Images: []string{
				"https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=800",
				"https://images.unsplash.com/photo-1487017159836-4e23ece2e4cf?w=800",
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800",
			},
			Specifications: map[string]string{
				"size":       "8ft x 10ft",
				"material":   "Mesh Vinyl",
				"finish":     "Matte",
				"wind_slits": "Yes",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Holographic Posters",
			Category:    "posters",
			Description: "Next-gen holographic posters that shift colors. Pure Gen Z energy.",
			BasePrice:   79.99,
			Images: []string{
				"https://images.unsplash.com/photo-1579783900882-c0d3dad7b119?w=800",
				"https://images.unsplash.com/photo-1634942537034-2531766767d1?w=800",
				"https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=800",
			},
			Specifications: map[string]string{
				"size":     `18" x 24"`,
				"material": "Holographic Film",
				"finish":   "Metallic Shimmer",
				"backing":  "Foam Core",
			},
			CreatedAt: now,
		},
	}
}
