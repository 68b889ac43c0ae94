package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	s := New(1 * time.Minute)

	_, ok := s.GetText("missing")
	assert.False(t, ok)

	s.Set("k", "raw text")
	got, ok := s.GetText("k")
	require.True(t, ok)
	assert.Equal(t, "raw text", got)
}

func TestStoreExpiry(t *testing.T) {
	s := New(20 * time.Millisecond)
	s.Set("k", "v")

	_, ok := s.GetText("k")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = s.GetText("k")
	assert.False(t, ok, "entry should expire after TTL")
}

func TestPromptKeysScopedByDuration(t *testing.T) {
	t.Run("storyboard", func(t *testing.T) {
		assert.NotEqual(t, StoryboardKey("abc", 15), StoryboardKey("abc", 40))
		assert.Equal(t, "prompt_shorts_abc_15", StoryboardKey("abc", 15))
	})

	t.Run("script", func(t *testing.T) {
		assert.NotEqual(t, ScriptKey("abc", 15), ScriptKey("abc", 40))
		assert.Equal(t, "script_video_abc_15s", ScriptKey("abc", 15))
	})

	t.Run("pools do not collide", func(t *testing.T) {
		assert.NotEqual(t, StoryboardKey("abc", 15), ScriptKey("abc", 15))
	})
}

func TestTrendKey(t *testing.T) {
	assert.Equal(t, "trends_v4_KR_1w_all", TrendKey("KR", "1w", "0"))
	assert.Equal(t, "trends_v4_KR_1w_all", TrendKey("KR", "1w", ""))
	assert.Equal(t, "trends_v4_US_1m_10", TrendKey("US", "1m", "10"))
	assert.NotEqual(t, TrendKey("KR", "1w", "0"), TrendKey("KR", "2w", "0"))
}

func TestCrossDurationIsolation(t *testing.T) {
	s := New(1 * time.Minute)
	s.Set(StoryboardKey("vid", 15), "fifteen")
	s.Set(StoryboardKey("vid", 40), "forty")

	got, ok := s.GetText(StoryboardKey("vid", 15))
	require.True(t, ok)
	assert.Equal(t, "fifteen", got)

	got, ok = s.GetText(StoryboardKey("vid", 40))
	require.True(t, ok)
	assert.Equal(t, "forty", got)
}
