package service

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ErrNoPrompts rejects image batches without a prompt sequence.
var ErrNoPrompts = errors.New("유효한 프롬프트 배열이 없습니다.")

// ErrAllImagesFailed reports a batch where no prompt produced an image.
var ErrAllImagesFailed = errors.New("생성된 이미지가 없습니다.")

// ImageBatcher generates one image per prompt strictly sequentially, with a
// fixed delay between calls. The sequencing is a quota-protection contract,
// not an accident: N frames take at least N times (latency + delay). Do not
// parallelize this without renegotiating the upstream rate limits.
type ImageBatcher struct {
	gateway Gateway
	limiter *rate.Limiter
}

// NewImageBatcher builds a batcher whose limiter admits one call per delay.
func NewImageBatcher(gateway Gateway, delay time.Duration) *ImageBatcher {
	if delay <= 0 {
		delay = time.Second
	}
	return &ImageBatcher{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
	}
}

// Generate returns base64 image blobs index-aligned with the input prompts.
// A failing prompt leaves its slot empty and does not abort the rest; the
// batch fails only when every slot is empty.
func (b *ImageBatcher) Generate(ctx context.Context, prompts []string, aspectRatio string) ([]string, error) {
	usable := 0
	for _, p := range prompts {
		if strings.TrimSpace(p) != "" {
			usable++
		}
	}
	if usable == 0 {
		return nil, ErrNoPrompts
	}

	batchID := uuid.NewString()[:8]
	log.Printf("[images] batch %s: %d prompts, aspect %s", batchID, len(prompts), aspectRatio)

	results := make([]string, len(prompts))
	generated := 0
	for i, p := range prompts {
		if strings.TrimSpace(p) == "" {
			log.Printf("[images] batch %s: frame %d has no prompt, skipping", batchID, i)
			continue
		}
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		data, err := b.gateway.GenerateImage(ctx, p, aspectRatio)
		if err != nil {
			log.Printf("[images] batch %s: frame %d failed: %v", batchID, i, err)
			continue
		}
		results[i] = base64.StdEncoding.EncodeToString(data)
		generated++
	}

	if generated == 0 {
		return nil, ErrAllImagesFailed
	}

	log.Printf("[images] batch %s: %d/%d frames generated", batchID, generated, len(prompts))
	return results, nil
}
