package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeclanJeon/TrendLens/internal/cache"
	"github.com/DeclanJeon/TrendLens/internal/config"
	"github.com/DeclanJeon/TrendLens/internal/models"
	"github.com/DeclanJeon/TrendLens/internal/normalize"
)

// fakeGateway scripts gateway responses per call and records every prompt.
type fakeGateway struct {
	jsonResponses []string
	jsonErr       error
	textResponse  string
	textErr       error
	imageFn       func(prompt string) ([]byte, error)

	jsonCalls  []string
	imageCalls []string
}

func (f *fakeGateway) GenerateText(_ context.Context, prompt string) (string, error) {
	if f.textErr != nil {
		return "", f.textErr
	}
	return f.textResponse, nil
}

func (f *fakeGateway) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.jsonCalls = append(f.jsonCalls, prompt)
	if f.jsonErr != nil {
		return "", f.jsonErr
	}
	idx := len(f.jsonCalls) - 1
	if idx >= len(f.jsonResponses) {
		idx = len(f.jsonResponses) - 1
	}
	return f.jsonResponses[idx], nil
}

func (f *fakeGateway) GenerateImage(_ context.Context, prompt, _ string) ([]byte, error) {
	f.imageCalls = append(f.imageCalls, prompt)
	if f.imageFn != nil {
		return f.imageFn(prompt)
	}
	return []byte("img"), nil
}

func shortsConfig() config.ShortsConfig {
	return config.ShortsConfig{
		FrameIntervalSec: 3,
		MinScenes:        4,
		MaxScenes:        6,
		ImageCallDelay:   config.Duration(time.Millisecond),
		DefaultScriptSec: 15,
	}
}

func storyboardJSON(frames int) string {
	out := `{"global_concept":{"title":"t"},"storyboard":[`
	for i := 0; i < frames; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"frame_number":%d}`, i+1)
	}
	return out + `]}`
}

const scriptJSON = `{"director_notes":{"genre":"Vlog"},"scenes":[{"time_range":"0:00 - 0:04"}]}`

func testVideo() *models.Video {
	return &models.Video{
		ID:    "vid123",
		Title: "test video",
		Stats: models.VideoStats{Views: 1000, EngagementRate: "2.50"},
	}
}

func TestGeneratePromptsMergesBothBranches(t *testing.T) {
	gw := &fakeGateway{jsonResponses: []string{
		"```json\n" + storyboardJSON(5) + "\n```",
		scriptJSON,
	}}
	gen := NewGenerator(gw, cache.New(time.Minute), shortsConfig())

	got, err := gen.GeneratePrompts(context.Background(), testVideo(), 15)
	require.NoError(t, err)

	assert.Equal(t, storyboardJSON(5), got.ImagePrompts, "fences stripped before returning")
	assert.Equal(t, scriptJSON, got.VideoScript)
	assert.Equal(t, 15, got.Duration)
	require.Len(t, gw.jsonCalls, 2)
	assert.Contains(t, gw.jsonCalls[0], "exactly 5 frames", "15s at 3s interval")
	assert.Contains(t, gw.jsonCalls[1], "EXACTLY total 15 seconds")
}

func TestGeneratePromptsUsesCache(t *testing.T) {
	gw := &fakeGateway{jsonResponses: []string{storyboardJSON(5), scriptJSON}}
	store := cache.New(time.Minute)
	gen := NewGenerator(gw, store, shortsConfig())

	first, err := gen.GeneratePrompts(context.Background(), testVideo(), 15)
	require.NoError(t, err)
	require.Len(t, gw.jsonCalls, 2)

	second, err := gen.GeneratePrompts(context.Background(), testVideo(), 15)
	require.NoError(t, err)
	assert.Len(t, gw.jsonCalls, 2, "both branches served from cache")
	assert.Equal(t, first, second)
}

func TestGeneratePromptsCacheScopedByDuration(t *testing.T) {
	gw := &fakeGateway{jsonResponses: []string{
		storyboardJSON(5), scriptJSON,
		storyboardJSON(14), scriptJSON,
	}}
	gen := NewGenerator(gw, cache.New(time.Minute), shortsConfig())

	_, err := gen.GeneratePrompts(context.Background(), testVideo(), 15)
	require.NoError(t, err)

	got, err := gen.GeneratePrompts(context.Background(), testVideo(), 40)
	require.NoError(t, err)

	assert.Len(t, gw.jsonCalls, 4, "different duration must not reuse cached text")
	assert.Equal(t, storyboardJSON(14), got.ImagePrompts)
}

func TestGeneratePromptsRejectsBadInput(t *testing.T) {
	gen := NewGenerator(&fakeGateway{}, cache.New(time.Minute), shortsConfig())

	_, err := gen.GeneratePrompts(context.Background(), nil, 15)
	assert.ErrorIs(t, err, ErrNoVideo)

	_, err = gen.GeneratePrompts(context.Background(), testVideo(), -3)
	require.Error(t, err, "negative duration rejected before any call")
}

func TestGeneratePromptsMalformedResponse(t *testing.T) {
	gw := &fakeGateway{jsonResponses: []string{"storyboard coming right up!{nope"}}
	store := cache.New(time.Minute)
	gen := NewGenerator(gw, store, shortsConfig())

	_, err := gen.GeneratePrompts(context.Background(), testVideo(), 15)
	require.Error(t, err)

	var malformed *normalize.MalformedError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, err.Error(), "해석 실패")
	assert.Equal(t, 0, store.ItemCount(), "failures are never cached")
}

func TestGeneratePromptsScriptFailureFailsWholeRequest(t *testing.T) {
	gw := &fakeGateway{jsonResponses: []string{
		storyboardJSON(5),
		"not json at all",
	}}
	store := cache.New(time.Minute)
	gen := NewGenerator(gw, store, shortsConfig())

	_, err := gen.GeneratePrompts(context.Background(), testVideo(), 15)
	require.Error(t, err, "no partial merged result")

	// the successful storyboard half is still cached for the retry
	_, ok := store.GetText(cache.StoryboardKey("vid123", 15))
	assert.True(t, ok)
	_, ok = store.GetText(cache.ScriptKey("vid123", 15))
	assert.False(t, ok)
}

func TestGenerateScriptDefaultDuration(t *testing.T) {
	gw := &fakeGateway{jsonResponses: []string{scriptJSON}}
	gen := NewGenerator(gw, cache.New(time.Minute), shortsConfig())

	_, err := gen.GenerateScript(context.Background(), testVideo())
	require.NoError(t, err)
	require.Len(t, gw.jsonCalls, 1)
	assert.Contains(t, gw.jsonCalls[0], "15-second", "script endpoint defaults to 15s")
}
