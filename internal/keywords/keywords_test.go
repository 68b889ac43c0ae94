package keywords

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DeclanJeon/TrendLens/internal/models"
)

func video(title string, views int64, tags ...string) models.Video {
	return models.Video{
		Title: title,
		Tags:  tags,
		Stats: models.VideoStats{Views: views},
	}
}

func TestExtractWeightsByViews(t *testing.T) {
	kws := Extract([]models.Video{
		video("챌린지 댄스", 10_000_000),
		video("브이로그 일상", 1_000),
	})

	weights := map[string]float64{}
	for _, k := range kws {
		weights[k.Text] = k.Weight
	}

	assert.Greater(t, weights["챌린지"], weights["브이로그"],
		"high-view titles should outweigh low-view titles")
}

func TestExtractTitleBeatsTag(t *testing.T) {
	kws := Extract([]models.Video{
		video("daily routine", 1_000_000, "workout"),
	})

	weights := map[string]float64{}
	for _, k := range kws {
		weights[k.Text] = k.Weight
	}
	assert.Greater(t, weights["daily"], weights["workout"], "title tokens count double")
}

func TestExtractFiltersNoise(t *testing.T) {
	kws := Extract([]models.Video{
		video("The Official 2024 영상 of 맛집 투어", 1_000_000),
	})

	for _, k := range kws {
		assert.NotEqual(t, "the", k.Text)
		assert.NotEqual(t, "official", k.Text)
		assert.NotEqual(t, "영상", k.Text)
		assert.NotEqual(t, "of", k.Text)
		assert.NotEqual(t, "2024", k.Text, "pure digits are dropped")
	}
	texts := make([]string, 0, len(kws))
	for _, k := range kws {
		texts = append(texts, k.Text)
	}
	assert.ElementsMatch(t, []string{"맛집", "투어"}, texts)
}

func TestExtractLimits(t *testing.T) {
	videos := make([]models.Video, 0, 30)
	for i := 0; i < 30; i++ {
		videos = append(videos, video(fmt.Sprintf("unique%02d word%02d extra%02d", i, i, i), 1_000_000))
	}

	kws := Extract(videos)
	assert.LessOrEqual(t, len(kws), 15, "at most 15 keywords")

	// videos beyond the top 20 contribute nothing
	for _, k := range kws {
		assert.NotContains(t, k.Text, "unique25")
	}
}

func TestExtractEmpty(t *testing.T) {
	assert.Empty(t, Extract(nil))
}
