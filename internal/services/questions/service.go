package questions

import (
	"context"

	"go.uber.org/zap"

	"prism/internal/ports"
)

// Sources reported alongside generated questions.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// fallbackQuestions is served whenever the AI collaborator cannot produce a
// set. Fixed list, independent of the product.
var fallbackQuestions = []string{
	"What are the main ingredients or materials used in this product?",
	"Where is this product manufactured and by whom?",
	"Does this product have any certifications (organic, fair trade, cruelty-free, etc.)?",
	"What is the environmental impact of producing this product?",
	"Are there any health or safety considerations consumers should know about?",
}

// Service generates transparency questions, best-effort like score
// resolution: collaborator failures never surface to the caller.
type Service struct {
	client ports.QuestionClient
	log    *zap.Logger
}

func New(client ports.QuestionClient, logger *zap.Logger) *Service {
	return &Service{client: client, log: logger.Named("questions")}
}

func (s *Service) Generate(ctx context.Context, productInfo string, previousAnswers []string) ([]string, string, error) {
	qs, err := s.client.Questions(ctx, productInfo, previousAnswers)
	if err != nil {
		s.log.Warn("question generator unavailable, using fallback questions", zap.Error(err))
		out := make([]string, len(fallbackQuestions))
		copy(out, fallbackQuestions)
		return out, SourceFallback, nil
	}
	return qs, SourceAI, nil
}
