package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DeclanJeon/TrendLens/internal/models"
	"github.com/DeclanJeon/TrendLens/internal/prompt"
)

// ErrNoVideos rejects analysis requests with an empty listing.
var ErrNoVideos = errors.New("분석할 데이터가 없습니다.")

// Insight produces the marketing-analysis HTML fragment for a filtered
// trend listing. Results are not cached: the listing is client-filtered and
// rarely identical across requests.
type Insight struct {
	gateway Gateway
}

func NewInsight(gateway Gateway) *Insight {
	return &Insight{gateway: gateway}
}

// Analyze builds the analyst prompt and returns the model's HTML fragment.
func (s *Insight) Analyze(ctx context.Context, videos []models.Video, region, filterContext string) (string, error) {
	if len(videos) == 0 {
		return "", ErrNoVideos
	}

	p := prompt.Insight(videos, region, filterContext)
	text, err := s.gateway.GenerateText(ctx, p)
	if err != nil {
		return "", fmt.Errorf("insight analysis: %w", err)
	}
	return text, nil
}
