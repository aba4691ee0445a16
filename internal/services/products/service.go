package products

import (
	"context"

	"prism/internal/domain"
	"prism/internal/ports"
)

// Service is a thin pass-through over the product store; the store owns all
// invariants (ids, timestamps, ordering).
type Service struct {
	repo ports.ProductRepository
}

func New(repo ports.ProductRepository) *Service { return &Service{repo: repo} }

func (s *Service) Create(ctx context.Context, p domain.NewProduct) (domain.Product, error) {
	return s.repo.Create(ctx, p)
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, p domain.NewProduct) (domain.Product, error) {
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
