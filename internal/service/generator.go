// Package service sequences prompt building, gateway calls, normalization
// and caching for the AI endpoints.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/DeclanJeon/TrendLens/internal/cache"
	"github.com/DeclanJeon/TrendLens/internal/config"
	"github.com/DeclanJeon/TrendLens/internal/models"
	"github.com/DeclanJeon/TrendLens/internal/normalize"
	"github.com/DeclanJeon/TrendLens/internal/prompt"
)

// Gateway is the generative backend the orchestrator talks to. The concrete
// implementation is gemini.Client; tests inject doubles.
type Gateway interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error)
}

// ErrNoVideo rejects generation requests without a video payload.
var ErrNoVideo = errors.New("비디오 데이터가 없습니다.")

// Generator runs the storyboard and script generation pipeline.
type Generator struct {
	gateway     Gateway
	promptCache *cache.Store
	shorts      config.ShortsConfig
}

// NewGenerator wires the gateway and the 7-day prompt cache.
func NewGenerator(gateway Gateway, promptCache *cache.Store, shorts config.ShortsConfig) *Generator {
	return &Generator{
		gateway:     gateway,
		promptCache: promptCache,
		shorts:      shorts,
	}
}

// GeneratePrompts produces the merged storyboard + script payload for one
// video and duration. Each branch is cache-checked independently; a failure
// in either branch fails the whole request so the client never renders half
// a result. Only successful, normalized text is cached.
func (g *Generator) GeneratePrompts(ctx context.Context, video *models.Video, durationSec int) (*models.GeneratedPrompts, error) {
	if video == nil || video.ID == "" {
		return nil, ErrNoVideo
	}
	if durationSec == 0 {
		durationSec = g.shorts.DefaultScriptSec
	}

	frameCount, err := prompt.FrameCount(durationSec, g.shorts.FrameIntervalSec)
	if err != nil {
		return nil, err
	}

	log.Printf("[generator] generating prompts for %ds short-form video (%d frames)", durationSec, frameCount)

	storyboard, err := g.storyboard(ctx, *video, durationSec, frameCount)
	if err != nil {
		return nil, err
	}

	script, err := g.script(ctx, *video, durationSec)
	if err != nil {
		return nil, err
	}

	return &models.GeneratedPrompts{
		ImagePrompts: storyboard,
		VideoScript:  script,
		Duration:     durationSec,
	}, nil
}

// GenerateScript produces a standalone script with the default duration.
func (g *Generator) GenerateScript(ctx context.Context, video *models.Video) (string, error) {
	if video == nil || video.ID == "" {
		return "", ErrNoVideo
	}
	return g.script(ctx, *video, g.shorts.DefaultScriptSec)
}

func (g *Generator) storyboard(ctx context.Context, video models.Video, durationSec, frameCount int) (string, error) {
	key := cache.StoryboardKey(video.ID, durationSec)
	if cached, ok := g.promptCache.GetText(key); ok {
		log.Printf("[generator] serving storyboard from cache: %s (%ds, %d frames)", video.ID, durationSec, frameCount)
		return cached, nil
	}

	p := prompt.Storyboard(video, frameCount, g.shorts.FrameIntervalSec, durationSec)
	raw, err := g.gateway.GenerateJSON(ctx, p)
	if err != nil {
		return "", fmt.Errorf("storyboard generation: %w", err)
	}

	text, err := normalize.JSONText("storyboard", raw)
	if err != nil {
		logMalformed(err)
		return "", err
	}
	g.checkFrameCount(text, frameCount)

	g.promptCache.Set(key, text)
	return text, nil
}

func (g *Generator) script(ctx context.Context, video models.Video, durationSec int) (string, error) {
	key := cache.ScriptKey(video.ID, durationSec)
	if cached, ok := g.promptCache.GetText(key); ok {
		log.Printf("[generator] serving video script from cache: %s (%ds)", video.ID, durationSec)
		return cached, nil
	}

	scenes, err := prompt.ScenePlan(durationSec, g.shorts.MinScenes, g.shorts.MaxScenes)
	if err != nil {
		return "", err
	}

	p := prompt.Script(video, durationSec, scenes)
	raw, err := g.gateway.GenerateJSON(ctx, p)
	if err != nil {
		return "", fmt.Errorf("script generation: %w", err)
	}

	text, err := normalize.JSONText("script", raw)
	if err != nil {
		logMalformed(err)
		return "", err
	}

	g.promptCache.Set(key, text)
	return text, nil
}

// checkFrameCount verifies the model honored the structural constraint. A
// mismatch is logged, not failed — the payload is still renderable and the
// client owns the retry decision.
func (g *Generator) checkFrameCount(text string, want int) {
	var payload struct {
		Storyboard []json.RawMessage `json:"storyboard"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return
	}
	if got := len(payload.Storyboard); got != want {
		log.Printf("[generator] storyboard frame count mismatch: got %d, want %d", got, want)
	}
}

// logMalformed records the offending raw text server-side; the raw text is
// never returned to the client as data.
func logMalformed(err error) {
	var malformed *normalize.MalformedError
	if errors.As(err, &malformed) {
		log.Printf("[generator] %s response was not valid JSON, raw: %.200q", malformed.Task, malformed.Raw)
	}
}
