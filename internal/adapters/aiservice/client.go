// Package aiservice is the HTTP adapter for the external AI collaborator,
// which exposes transparency scoring and question generation. Both calls are
// best-effort from the callers' perspective: any deviation from the expected
// response shape is surfaced as an error and handled upstream by fallback.
package aiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"prism/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New builds a client for the AI service at baseURL. The timeout bounds every
// outbound call; the scorer historically had none, which left report
// generation hanging on a stuck collaborator.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger.Named("aiservice"),
	}
}

type scoreRequest struct {
	ProductData domain.Product `json:"product_data"`
}

type scoreResponse struct {
	Success         bool                  `json:"success"`
	Score           int                   `json:"score"`
	Grade           string                `json:"grade"`
	Breakdown       domain.ScoreBreakdown `json:"breakdown"`
	Recommendations []string              `json:"recommendations"`
}

// Score asks the collaborator for a transparency assessment of p. The
// returned score is the collaborator's payload verbatim; no defaulting
// happens here.
func (c *Client) Score(ctx context.Context, p domain.Product) (domain.TransparencyScore, error) {
	var zero domain.TransparencyScore

	var resp scoreResponse
	if err := c.post(ctx, "/transparency-score", scoreRequest{ProductData: p}, &resp); err != nil {
		return zero, err
	}
	if !resp.Success {
		return zero, fmt.Errorf("scorer reported failure")
	}
	score := domain.TransparencyScore{
		Score:           resp.Score,
		Grade:           resp.Grade,
		Breakdown:       resp.Breakdown,
		Recommendations: resp.Recommendations,
	}
	if err := score.Validate(); err != nil {
		return zero, fmt.Errorf("malformed score payload: %w", err)
	}
	return score, nil
}

type questionRequest struct {
	ProductInfo     string   `json:"product_info"`
	PreviousAnswers []string `json:"previous_answers"`
}

type questionResponse struct {
	Success   bool     `json:"success"`
	Questions []string `json:"questions"`
}

// Questions asks the collaborator for transparency questions about a product.
func (c *Client) Questions(ctx context.Context, productInfo string, previousAnswers []string) ([]string, error) {
	if previousAnswers == nil {
		previousAnswers = []string{}
	}
	var resp questionResponse
	if err := c.post(ctx, "/generate-questions", questionRequest{ProductInfo: productInfo, PreviousAnswers: previousAnswers}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("question generator reported failure")
	}
	if len(resp.Questions) == 0 {
		return nil, fmt.Errorf("question generator returned no questions")
	}
	return resp.Questions, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("calling ai service", zap.String("path", path))
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ai service %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ai service %s: decode response: %w", path, err)
	}
	return nil
}
