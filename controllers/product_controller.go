package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mattys-media/backend/apperrors"
	"github.com/mattys-media/backend/cache"
	"github.com/mattys-media/backend/models"
)

type IProductService interface {
	List(ctx context.Context, category string) ([]models.ProductResponse, error)
	Get(ctx context.Context, id string) (*models.ProductResponse, error)
	Seed(ctx context.Context) (int, error)
}

type ProductController struct {
	service IProductService
	cache   *cache.ProductCache
}

func NewProductController(service IProductService, cache *cache.ProductCache) *ProductController {
	return &ProductController{service: service, cache: cache}
}

// GetProducts lists the catalog, optionally filtered by ?category=.
func (pc *ProductController) GetProducts(c *gin.Context) {
	category := c.Query("category")
	ctx := c.Request.Context()

	if cached, ok := pc.cache.GetList(ctx, category); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := pc.service.List(ctx, category)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.SetListAsync(category, products)
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// SeedProducts resets the catalog to the fixed demo set.
func (pc *ProductController) SeedProducts(c *gin.Context) {
	count, err := pc.service.Seed(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Seeded %d products", count)})
}
