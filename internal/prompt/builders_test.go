package prompt

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeclanJeon/TrendLens/internal/models"
)

func sampleVideo() models.Video {
	return models.Video{
		ID:           "dQw4w9WgXcQ",
		Title:        "아이돌 챌린지 하이라이트",
		Description:  "최신 댄스 챌린지 모음",
		ChannelTitle: "TrendChannel",
		Tags:         []string{"dance", "challenge", "kpop", "viral"},
		DurationSec:  58,
		IsShort:      true,
		Stats: models.VideoStats{
			Views:          1234567,
			Likes:          45000,
			Comments:       3200,
			EngagementRate: "3.90",
		},
		ViewCountFmt: "1,234,567",
	}
}

func TestInsightPrompt(t *testing.T) {
	videos := make([]models.Video, 0, 20)
	for i := 0; i < 20; i++ {
		v := sampleVideo()
		v.Title = fmt.Sprintf("video %d", i)
		videos = append(videos, v)
	}

	p := Insight(videos, "KR", "숏츠만, 조회수 100만 이상")

	assert.Contains(t, p, "마케팅 데이터 분석가")
	assert.Contains(t, p, "지역: KR")
	assert.Contains(t, p, "숏츠만, 조회수 100만 이상")
	assert.Contains(t, p, `<span class="highlight">`)
	assert.Contains(t, p, "해시태그 5개")

	// only the top 15 videos are summarized
	assert.Contains(t, p, "video 14")
	assert.NotContains(t, p, "video 15")

	// at most 3 tags per line
	assert.Contains(t, p, "dance, challenge, kpop")
	assert.NotContains(t, p, "dance, challenge, kpop, viral")
}

func TestStoryboardPrompt(t *testing.T) {
	v := sampleVideo()
	p := Storyboard(v, 5, 3, 15)

	assert.Contains(t, p, "15-second YouTube Short")
	assert.Contains(t, p, "exactly 5 frames (each representing 3 seconds)")
	assert.Contains(t, p, "Create exactly 5 frames in the storyboard array")
	assert.Contains(t, p, `"duration": "0s - 3s"`)
	assert.Contains(t, p, "--ar 9:16")
	assert.Contains(t, p, `"global_concept"`)
	assert.Contains(t, p, `"viral_elements"`)
	assert.Contains(t, p, v.Title)
	assert.Contains(t, p, "dance, challenge, kpop, viral")
	assert.Contains(t, p, "Engagement Rate: 3.90%")
	assert.Contains(t, p, "Curiosity Gap")
	assert.Contains(t, p, "camera movement")
}

func TestStoryboardPromptClipsDescription(t *testing.T) {
	v := sampleVideo()
	v.Description = strings.Repeat("a", 900)
	p := Storyboard(v, 14, 3, 40)

	assert.Contains(t, p, strings.Repeat("a", 500))
	assert.NotContains(t, p, strings.Repeat("a", 501))
	assert.Contains(t, p, "exactly 14 frames")
}

func TestScriptPrompt(t *testing.T) {
	v := sampleVideo()
	scenes, err := ScenePlan(15, 4, 6)
	require.NoError(t, err)

	p := Script(v, 15, scenes)

	assert.Contains(t, p, "precise 15-second video script")
	assert.Contains(t, p, "exactly 4 scenes that EXACTLY total 15 seconds")
	assert.Contains(t, p, "Final scene MUST end at exactly 0:15")
	assert.Contains(t, p, `"target_duration": "15s"`)
	assert.Contains(t, p, `"director_notes"`)
	assert.Contains(t, p, `"video_gen_prompt"`)
	assert.Contains(t, p, v.ChannelTitle)

	// four-beat template, one of each for a 4-scene plan
	for _, beat := range []string{"Hook", "Build-up", "Climax", "Outro"} {
		assert.Contains(t, p, beat)
	}
	assert.Contains(t, p, "1. **Hook (0:00 - 0:04):**")
	assert.Contains(t, p, "4. **Outro (0:12 - 0:15):**")
}

func TestBeatAssignment(t *testing.T) {
	beats := make([]string, 6)
	for i := range beats {
		beats[i] = beatFor(i, 6)
	}
	assert.Equal(t, []string{"Hook", "Build-up", "Build-up", "Build-up", "Climax", "Outro"}, beats)
}

func TestClipCutsOnRuneBoundary(t *testing.T) {
	// 트 is 3 bytes; a 500-byte cut of this text lands mid-rune
	korean := strings.Repeat("트렌드", 300)

	got := clip(korean, 500)
	assert.True(t, utf8.ValidString(got), "clipped text stays valid UTF-8")
	assert.LessOrEqual(t, len(got), 500)
	assert.True(t, strings.HasPrefix(korean, got))
}

func TestClipShortInputs(t *testing.T) {
	assert.Equal(t, "N/A", clip("", 10))
	assert.Equal(t, "짧은 설명", clip("짧은 설명", 500))
}
