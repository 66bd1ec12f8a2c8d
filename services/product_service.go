package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mattys-media/backend/apperrors"
	"github.com/mattys-media/backend/models"
)

type IProductRepository interface {
	Find(ctx context.Context, category string) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Replace(ctx context.Context, products []models.Product) error
}

type ProductService struct {
	repo IProductRepository
}

func NewProductService(repo IProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List(ctx context.Context, category string) ([]models.ProductResponse, error) {
	products, err := s.repo.Find(ctx, category)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	responses := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, products[i].ToResponse())
	}
	return responses, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	resp := product.ToResponse()
	return &resp, nil
}

// Seed resets the catalog to the fixed demo set and reports how many
// products were written.
func (s *ProductService) Seed(ctx context.Context) (int, error) {
	catalog := DemoCatalog()
	if err := s.repo.Replace(ctx, catalog); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return len(catalog), nil
}
