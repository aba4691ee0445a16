package ports

import (
	"context"

	"prism/internal/domain"
)

// ScorerClient calls the external transparency scorer. Implementations must
// return an error for any deviation from the expected response shape; callers
// treat every error the same way and substitute the default score.
type ScorerClient interface {
	Score(ctx context.Context, p domain.Product) (domain.TransparencyScore, error)
}

// QuestionClient calls the external question generator.
type QuestionClient interface {
	Questions(ctx context.Context, productInfo string, previousAnswers []string) ([]string, error)
}
