package ports

import (
	"context"

	"prism/internal/domain"
)

// ProductRepository is the durable product store. It owns ids and timestamps.
type ProductRepository interface {
	Create(ctx context.Context, p domain.NewProduct) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Update(ctx context.Context, id string, p domain.NewProduct) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// ReportRepository persists report metadata after generation. Plain
// persistence, no merge or versioning.
type ReportRepository interface {
	Save(ctx context.Context, r domain.NewReport) (domain.StoredReport, error)
	GetByProduct(ctx context.Context, productID string) (domain.StoredReport, error)
}

// ErrNotFound is returned when a referenced product or report is absent.
var ErrNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }
