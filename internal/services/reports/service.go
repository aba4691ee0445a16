package reports

import (
	"context"

	"go.uber.org/zap"

	"prism/internal/domain"
	"prism/internal/ports"
)

// Service resolves the inputs of a transparency report and persists report
// metadata. Score resolution is all-or-nothing: a scorer failure of any kind
// yields the default score, never an error to the caller.
type Service struct {
	products ports.ProductRepository
	reports  ports.ReportRepository
	scorer   ports.ScorerClient
	log      *zap.Logger
}

func New(products ports.ProductRepository, reports ports.ReportRepository, scorer ports.ScorerClient, logger *zap.Logger) *Service {
	return &Service{
		products: products,
		reports:  reports,
		scorer:   scorer,
		log:      logger.Named("reports"),
	}
}

// Resolve fetches the product and its effective transparency score. The
// product read is mandatory and its errors propagate (ports.ErrNotFound for
// unknown ids); the scorer call is optional and never fails the request.
func (s *Service) Resolve(ctx context.Context, productID string) (domain.Product, domain.TransparencyScore, error) {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return domain.Product{}, domain.TransparencyScore{}, err
	}
	return product, s.resolveScore(ctx, product), nil
}

// resolveScore substitutes the default score on any scorer failure: network
// error, non-success status, failure flag, malformed payload. No partial
// merge between a partially valid response and the default.
func (s *Service) resolveScore(ctx context.Context, product domain.Product) domain.TransparencyScore {
	score, err := s.scorer.Score(ctx, product)
	if err != nil {
		s.log.Warn("scorer unavailable, using default scoring",
			zap.String("product_id", product.ID),
			zap.Error(err))
		return domain.DefaultScore()
	}
	return score
}

func (s *Service) Save(ctx context.Context, r domain.NewReport) (domain.StoredReport, error) {
	return s.reports.Save(ctx, r)
}

func (s *Service) GetByProduct(ctx context.Context, productID string) (domain.StoredReport, error) {
	return s.reports.GetByProduct(ctx, productID)
}
