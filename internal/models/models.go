package models

// VideoStats holds the engagement counters of one trending video.
// EngagementRate is pre-formatted to 2 decimals, matching what the
// dashboard renders and what the prompt builders embed verbatim.
type VideoStats struct {
	Views          int64  `json:"views"`
	Likes          int64  `json:"likes"`
	Comments       int64  `json:"comments"`
	EngagementRate string `json:"engagementRate"`
}

// Video is one analyzed trending video. It is built once per trend fetch
// and re-submitted verbatim by the client for AI tasks.
type Video struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnail    string     `json:"thumbnail"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Tags         []string   `json:"tags"`
	CategoryID   string     `json:"categoryId"`
	IsShort      bool       `json:"isShort"`
	DurationSec  int        `json:"durationSec"`
	Stats        VideoStats `json:"stats"`
	ViewCountFmt string     `json:"viewCountFmt"`
	LikeCountFmt string     `json:"likeCountFmt"`
}

// Keyword is one weighted keyword extracted from a trend listing.
type Keyword struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// Category is one YouTube video category for a region.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// TrendMeta describes the query a trend listing answers.
type TrendMeta struct {
	Region       string `json:"region"`
	Period       string `json:"period"`
	TotalResults int    `json:"totalResults"`
}

// TrendData is the full payload of GET /api/trends.
type TrendData struct {
	Meta      TrendMeta `json:"meta"`
	TopVideos []Video   `json:"topVideos"`
	Keywords  []Keyword `json:"keywords"`
}

// AnalyzeRequest is the body of POST /api/analyze-ai.
type AnalyzeRequest struct {
	Videos        []Video `json:"videos"`
	Region        string  `json:"region"`
	FilterContext string  `json:"filterContext"`
}

// GeneratePromptRequest is the body of POST /api/generate-prompt.
type GeneratePromptRequest struct {
	Video    *Video `json:"video"`
	Duration int    `json:"duration"`
}

// GeneratedPrompts merges the two independent generation results for one
// duration. ImagePrompts and VideoScript are raw JSON text, so the client
// parses the envelope first and each payload second. The two-layer contract
// is kept on purpose — the dashboard renders both halves from these strings.
type GeneratedPrompts struct {
	ImagePrompts string `json:"imagePrompts"`
	VideoScript  string `json:"videoScript"`
	Duration     int    `json:"duration"`
}

// GenerateImageRequest is the body of POST /api/generate-image.
type GenerateImageRequest struct {
	Prompts     []string `json:"prompts"`
	AspectRatio string   `json:"aspectRatio"`
}

// GenerateScriptRequest is the body of POST /api/generate-video-script.
type GenerateScriptRequest struct {
	Video *Video `json:"video"`
}

// ErrorResponse is the uniform failure envelope for every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
