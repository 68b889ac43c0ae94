// Package youtube wraps the YouTube Data API v3 read paths the dashboard
// needs: region category listings and the mostPopular chart, both behind
// injected TTL caches.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/DeclanJeon/TrendLens/internal/cache"
	"github.com/DeclanJeon/TrendLens/internal/config"
	"github.com/DeclanJeon/TrendLens/internal/keywords"
	"github.com/DeclanJeon/TrendLens/internal/models"
)

// ErrMissingAPIKey fails trend requests before any upstream call.
var ErrMissingAPIKey = errors.New("youtube: YouTube API key is missing")

// ErrUpstream wraps fetch failures with a client-presentable message.
var ErrUpstream = errors.New("youtube: failed to fetch YouTube trends")

// Client serves category and trend listings from the Data API.
type Client struct {
	svc           *yt.Service
	maxResults    int64
	trendCache    *cache.Store
	categoryCache *cache.Store
}

// New builds a Client with a bounded-timeout HTTP transport, per the
// original's 15s upstream budget.
func New(ctx context.Context, cfg config.YouTubeConfig, trendCache, categoryCache *cache.Store) (*Client, error) {
	apiKey := config.YouTubeAPIKey()
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	httpClient := &http.Client{Timeout: cfg.FetchTimeout.Std()}
	svc, err := yt.NewService(ctx,
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}

	return &Client{
		svc:           svc,
		maxResults:    cfg.MaxResults,
		trendCache:    trendCache,
		categoryCache: categoryCache,
	}, nil
}

// Categories lists the video categories for a region, cached for a day.
// A fetch failure degrades to an empty list — the dashboard renders without
// the category filter rather than failing the page.
func (c *Client) Categories(ctx context.Context, region string) []models.Category {
	key := cache.CategoryKey(region)
	if v, ok := c.categoryCache.Get(key); ok {
		if cats, ok := v.([]models.Category); ok {
			return cats
		}
	}

	resp, err := c.svc.VideoCategories.List([]string{"snippet"}).
		RegionCode(region).
		Context(ctx).
		Do()
	if err != nil {
		log.Printf("[youtube] category fetch error: %v", err)
		return []models.Category{}
	}

	cats := make([]models.Category, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}
		cats = append(cats, models.Category{ID: item.Id, Title: item.Snippet.Title})
	}
	c.categoryCache.Set(key, cats)
	return cats
}

// Trends returns the analyzed trend listing for a region, period and
// category. Raw chart items are cached; filtering, mapping and keyword
// extraction are pure and recomputed per request.
func (c *Client) Trends(ctx context.Context, region, period, categoryID string) (*models.TrendData, error) {
	items, err := c.fetchChart(ctx, region, period, categoryID)
	if err != nil {
		return nil, err
	}

	cutoff := cutoffForPeriod(period, time.Now())

	videos := make([]models.Video, 0, len(items))
	for _, item := range items {
		if item.Snippet == nil || item.Statistics == nil || item.ContentDetails == nil {
			continue
		}
		published, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil || published.Before(cutoff) {
			continue
		}
		videos = append(videos, mapVideo(item))
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Stats.Views > videos[j].Stats.Views
	})

	return &models.TrendData{
		Meta: models.TrendMeta{
			Region:       region,
			Period:       period,
			TotalResults: len(videos),
		},
		TopVideos: videos,
		Keywords:  keywords.Extract(videos),
	}, nil
}

// fetchChart returns the raw mostPopular items, cached for the trend TTL.
// The period is part of the key for contract reasons even though the raw
// chart does not depend on it — every parameter that changes the response
// a client sees must scope the cache.
func (c *Client) fetchChart(ctx context.Context, region, period, categoryID string) ([]*yt.Video, error) {
	key := cache.TrendKey(region, period, categoryID)
	if v, ok := c.trendCache.Get(key); ok {
		if items, ok := v.([]*yt.Video); ok {
			return items, nil
		}
	}

	call := c.svc.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Chart("mostPopular").
		RegionCode(region).
		MaxResults(c.maxResults)
	if categoryID != "" && categoryID != "0" {
		call = call.VideoCategoryId(categoryID)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		log.Printf("[youtube] chart fetch error: %v", err)
		return nil, ErrUpstream
	}

	c.trendCache.Set(key, resp.Items)
	return resp.Items, nil
}

func mapVideo(item *yt.Video) models.Video {
	views := int64(item.Statistics.ViewCount)
	likes := int64(item.Statistics.LikeCount)
	comments := int64(item.Statistics.CommentCount)
	durationSec := ParseISODuration(item.ContentDetails.Duration)

	thumbnail := ""
	if t := item.Snippet.Thumbnails; t != nil {
		if t.Medium != nil {
			thumbnail = t.Medium.Url
		} else if t.Default != nil {
			thumbnail = t.Default.Url
		}
	}

	return models.Video{
		ID:           item.Id,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Thumbnail:    thumbnail,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  item.Snippet.PublishedAt,
		Tags:         item.Snippet.Tags,
		CategoryID:   item.Snippet.CategoryId,
		IsShort:      durationSec <= 60,
		DurationSec:  durationSec,
		Stats: models.VideoStats{
			Views:          views,
			Likes:          likes,
			Comments:       comments,
			EngagementRate: fmt.Sprintf("%.2f", Engagement(views, likes, comments)),
		},
		ViewCountFmt: FormatCount(views),
		LikeCountFmt: FormatCount(likes),
	}
}

// Engagement is (likes+comments)/views as a percentage.
func Engagement(views, likes, comments int64) float64 {
	if views == 0 {
		return 0
	}
	return float64(likes+comments) / float64(views) * 100
}
