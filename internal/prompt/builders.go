// Package prompt builds the instruction text sent to the AI gateway for the
// three generation tasks, and derives the structural constraints (frame
// counts, scene plans) those instructions embed. Builders are pure functions
// of their inputs so the templates can be unit-tested directly.
package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DeclanJeon/TrendLens/internal/models"
)

// Insight builds the Korean marketing-analyst prompt for a filtered trend
// listing. At most the top 15 videos are summarized; the list arrives
// pre-sorted by view count.
func Insight(videos []models.Video, region, filterContext string) string {
	if len(videos) > 15 {
		videos = videos[:15]
	}

	var summary strings.Builder
	for _, v := range videos {
		kind := "Video"
		if v.IsShort {
			kind = "Shorts"
		}
		tags := v.Tags
		if len(tags) > 3 {
			tags = tags[:3]
		}
		fmt.Fprintf(&summary, "- [%s] %s (%s회, 반응률: %s%%) / 태그: %s\n",
			kind, v.Title, v.ViewCountFmt, v.Stats.EngagementRate, strings.Join(tags, ", "))
	}

	return fmt.Sprintf(insightTemplate, region, filterContext, summary.String())
}

// Storyboard builds the image-storyboard prompt for one video. frameCount and
// intervalSec come from FrameCount and the configured frame interval — the
// template embeds them as a hard structural requirement.
func Storyboard(video models.Video, frameCount, intervalSec, durationSec int) string {
	return fmt.Sprintf(storyboardTemplate,
		durationSec,
		video.Title,
		clip(video.Description, 500),
		strings.Join(video.Tags, ", "),
		video.DurationSec,
		video.Stats.Views,
		video.Stats.EngagementRate,
		frameCount, intervalSec,
		fmt.Sprintf("0s - %ds", intervalSec),
		frameCount,
		frameCount,
	)
}

// Script builds the timed video-script prompt for one video. The scene plan
// fixes the exact time ranges the model must fill; the narrative beats map
// hook/build-up/climax/outro onto those ranges.
func Script(video models.Video, durationSec int, scenes []Scene) string {
	var plan strings.Builder
	for i, s := range scenes {
		fmt.Fprintf(&plan, "%d. **%s (%s):** %s\n", i+1, beatFor(i, len(scenes)), s.TimeRange(), beatHint(beatFor(i, len(scenes))))
	}

	finalEnd := ""
	if len(scenes) > 0 {
		finalEnd = scenes[len(scenes)-1].TimeRange()
		finalEnd = finalEnd[strings.Index(finalEnd, "- ")+2:]
	}

	return fmt.Sprintf(scriptTemplate,
		durationSec,
		video.Title,
		video.ChannelTitle,
		video.DurationSec,
		clip(video.Description, 800),
		strings.Join(video.Tags, ", "),
		durationSec,
		len(scenes), durationSec,
		finalEnd,
		plan.String(),
		durationSec,
		len(scenes), durationSec,
	)
}

// beatFor assigns the four-beat narrative template onto a scene index:
// first scene hooks, last closes, the one before it peaks, the rest build.
func beatFor(i, count int) string {
	switch {
	case i == 0:
		return "Hook"
	case i == count-1:
		return "Outro"
	case i == count-2:
		return "Climax"
	default:
		return "Build-up"
	}
}

func beatHint(beat string) string {
	switch beat {
	case "Hook":
		return "Immediate attention grabber"
	case "Build-up":
		return "Main content/story development"
	case "Climax":
		return "Peak moment/key message"
	default:
		return "Call-to-action or memorable ending"
	}
}

func clip(s string, n int) string {
	if s == "" {
		return "N/A"
	}
	if len(s) <= n {
		return s
	}
	// keep the cut on a rune boundary — descriptions are mostly Korean
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
