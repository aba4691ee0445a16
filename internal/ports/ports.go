package ports

import (
	"context"

	"prism/internal/domain"
)

// Products manages the product catalogue.
type Products interface {
	Create(ctx context.Context, p domain.NewProduct) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Update(ctx context.Context, id string, p domain.NewProduct) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// Reports resolves a product and its effective transparency score for
// rendering, and persists report metadata.
type Reports interface {
	Resolve(ctx context.Context, productID string) (domain.Product, domain.TransparencyScore, error)
	Save(ctx context.Context, r domain.NewReport) (domain.StoredReport, error)
	GetByProduct(ctx context.Context, productID string) (domain.StoredReport, error)
}

// Questions produces transparency questions for a product, falling back to a
// static set when the AI collaborator is unavailable.
type Questions interface {
	Generate(ctx context.Context, productInfo string, previousAnswers []string) (questions []string, source string, err error)
}
