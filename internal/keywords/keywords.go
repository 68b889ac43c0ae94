// Package keywords derives weighted keywords from a trend listing. Weights
// scale with view counts so a word in one 10M-view title outranks the same
// word scattered across low-traffic uploads.
package keywords

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/DeclanJeon/TrendLens/internal/models"
)

const (
	topVideoLimit = 20
	resultLimit   = 15
	titleWeight   = 2.0
	tagWeight     = 1.0
)

// tokenRe matches latin, digit and hangul runs; everything else separates.
var tokenRe = regexp.MustCompile(`[a-z0-9\x{AC00}-\x{D7AF}\x{3130}-\x{318F}]+`)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// Korean particles and fillers
		"이", "그", "저", "것", "들", "의", "가", "을", "를", "에", "에서", "와", "과", "도",
		"으로", "만", "까지", "부터", "보다", "처럼", "같이", "하고", "하는", "된", "된다",
		// platform noise
		"영상", "동영상", "공식", "티저", "뮤비", "직캠", "예고", "하이라이트", "모음",
		"shorts", "youtube", "video", "official", "music", "trailer", "teaser",
		// English function words
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
		"by", "from", "up", "about", "into", "through", "during", "before", "after",
		"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does",
		"did", "will", "would", "could", "should", "may", "might", "must", "shall", "can",
		"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
		"my", "your", "his", "its", "our", "their", "this", "that", "these", "those",
	} {
		stopWords[w] = struct{}{}
	}
}

// Extract returns the top weighted keywords for a trend listing. Only the
// top 20 videos contribute; title words count double relative to tag words,
// both scaled by log10 of the video's views.
func Extract(videos []models.Video) []models.Keyword {
	if len(videos) > topVideoLimit {
		videos = videos[:topVideoLimit]
	}

	weights := make(map[string]float64)
	for _, v := range videos {
		// normalized view-count weight
		factor := math.Log10(float64(v.Stats.Views)+1) / 6

		for _, word := range tokenize(v.Title) {
			weights[word] += titleWeight * factor
		}
		for _, tag := range v.Tags {
			for _, word := range tokenize(tag) {
				weights[word] += tagWeight * factor
			}
		}
	}

	keywords := make([]models.Keyword, 0, len(weights))
	for text, weight := range weights {
		keywords = append(keywords, models.Keyword{
			Text:   text,
			Weight: math.Round(weight*100) / 100,
		})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Weight != keywords[j].Weight {
			return keywords[i].Weight > keywords[j].Weight
		}
		return keywords[i].Text < keywords[j].Text
	})

	if len(keywords) > resultLimit {
		keywords = keywords[:resultLimit]
	}
	return keywords
}

// tokenize lowercases text and keeps tokens that are at least two runes,
// not pure digits and not stop words.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, token := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if len([]rune(token)) < 2 {
			continue
		}
		if isDigits(token) {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		out = append(out, token)
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
