package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mattys-media/backend/apperrors"
	"github.com/mattys-media/backend/models"
)

type MockProductService struct{ mock.Mock }

func (m *MockProductService) List(ctx context.Context, category string) ([]models.ProductResponse, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductResponse), args.Error(1)
}
func (m *MockProductService) Get(ctx context.Context, id string) (*models.ProductResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductResponse), args.Error(1)
}
func (m *MockProductService) Seed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// Controllers are exercised with a nil cache, which behaves as a no-op.
func setupProductRouter(svc *MockProductService) *gin.Engine {
	r := gin.New()
	pc := NewProductController(svc, nil)
	r.GET("/products", pc.GetProducts)
	r.GET("/products/:id", pc.GetProduct)
	r.POST("/products/seed", pc.SeedProducts)
	return r
}

func TestGetProductsController(t *testing.T) {
	t.Run("List All", func(t *testing.T) {
		mockService := new(MockProductService)
		router := setupProductRouter(mockService)

		products := []models.ProductResponse{
			{ID: "p1", Name: "Premium Business Cards", Category: "business-cards", BasePrice: 29.99},
		}
		mockService.On("List", mock.Anything, "").Return(products, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/products", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Premium Business Cards")
		mockService.AssertExpectations(t)
	})

	t.Run("Category Filter Passed Through", func(t *testing.T) {
		mockService := new(MockProductService)
		router := setupProductRouter(mockService)

		mockService.On("List", mock.Anything, "banners").Return([]models.ProductResponse{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/products?category=banners", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetProductController(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockService := new(MockProductService)
		router := setupProductRouter(mockService)

		product := &models.ProductResponse{ID: "p1", Name: "Holographic Posters", Category: "posters"}
		mockService.On("Get", mock.Anything, "p1").Return(product, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/products/p1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Holographic Posters")
	})

	t.Run("Not Found - 404", func(t *testing.T) {
		mockService := new(MockProductService)
		router := setupProductRouter(mockService)

		mockService.On("Get", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/products/missing", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Product not found")
	})
}

func TestSeedProductsController(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProductService)
		router := setupProductRouter(mockService)

		mockService.On("Seed", mock.Anything).Return(6, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/products/seed", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Seeded 6 products")
	})

	t.Run("Storage Failure - 500", func(t *testing.T) {
		mockService := new(MockProductService)
		router := setupProductRouter(mockService)

		mockService.On("Seed", mock.Anything).Return(0, apperrors.ErrStorage).Once()

		req, _ := http.NewRequest(http.MethodPost, "/products/seed", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
