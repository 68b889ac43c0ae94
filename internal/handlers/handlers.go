package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/DeclanJeon/TrendLens/internal/gemini"
	"github.com/DeclanJeon/TrendLens/internal/models"
	"github.com/DeclanJeon/TrendLens/internal/normalize"
	"github.com/DeclanJeon/TrendLens/internal/prompt"
	"github.com/DeclanJeon/TrendLens/internal/service"
	"github.com/DeclanJeon/TrendLens/internal/youtube"
)

// API wires the trend and AI services to the HTTP surface. Every endpoint
// answers the {success, ...} envelope the dashboard expects; failures carry
// a user-facing message instead of internal error chains.
type API struct {
	trends    *youtube.Client
	insight   *service.Insight
	generator *service.Generator
	images    *service.ImageBatcher
}

// New creates the API handler set.
func New(trends *youtube.Client, insight *service.Insight, generator *service.Generator, images *service.ImageBatcher) *API {
	return &API{
		trends:    trends,
		insight:   insight,
		generator: generator,
		images:    images,
	}
}

// Register mounts every API route on the app.
func (a *API) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/categories", a.Categories)
	api.Get("/trends", a.Trends)
	api.Post("/analyze-ai", a.Analyze)
	api.Post("/generate-prompt", a.GeneratePrompt)
	api.Post("/generate-image", a.GenerateImage)
	api.Post("/generate-video-script", a.GenerateScript)
}

// Categories handles GET /api/categories. A failing upstream fetch already
// degrades to an empty list inside the client, so this never errors.
func (a *API) Categories(c fiber.Ctx) error {
	region := c.Query("region", "KR")
	categories := a.trends.Categories(c.Context(), region)
	return c.JSON(fiber.Map{"success": true, "data": categories})
}

// Trends handles GET /api/trends.
func (a *API) Trends(c fiber.Ctx) error {
	region := c.Query("region", "KR")
	period := c.Query("period", "1w")
	categoryID := c.Query("categoryId", "0")

	data, err := a.trends.Trends(c.Context(), region, period, categoryID)
	if err != nil {
		log.Printf("[http] trends %s/%s/%s failed: %v", region, period, categoryID, err)
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}

// Analyze handles POST /api/analyze-ai. The client sends the currently
// filtered video list, so the insight reflects exactly what the user sees.
func (a *API) Analyze(c fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "요청 본문을 해석할 수 없습니다.")
	}
	if len(req.Videos) == 0 {
		return badRequest(c, service.ErrNoVideos.Error())
	}

	insight, err := a.insight.Analyze(c.Context(), req.Videos, req.Region, req.FilterContext)
	if err != nil {
		log.Printf("[http] analyze failed: %v", err)
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "insight": insight})
}

// GeneratePrompt handles POST /api/generate-prompt: one call produces both
// the image storyboard and the video script for the requested duration.
func (a *API) GeneratePrompt(c fiber.Ctx) error {
	var req models.GeneratePromptRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "요청 본문을 해석할 수 없습니다.")
	}
	if req.Video == nil {
		return badRequest(c, service.ErrNoVideo.Error())
	}

	result, err := a.generator.GeneratePrompts(c.Context(), req.Video, req.Duration)
	if err != nil {
		log.Printf("[http] generate-prompt for %s (%ds) failed: %v", req.Video.ID, req.Duration, err)
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// GenerateImage handles POST /api/generate-image.
func (a *API) GenerateImage(c fiber.Ctx) error {
	var req models.GenerateImageRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "요청 본문을 해석할 수 없습니다.")
	}
	if len(req.Prompts) == 0 {
		return badRequest(c, service.ErrNoPrompts.Error())
	}
	if req.AspectRatio == "" {
		req.AspectRatio = "1:1"
	}

	images, err := a.images.Generate(c.Context(), req.Prompts, req.AspectRatio)
	if err != nil {
		log.Printf("[http] generate-image (%d prompts) failed: %v", len(req.Prompts), err)
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": images})
}

// GenerateScript handles POST /api/generate-video-script. The standalone
// endpoint always uses the default script duration.
func (a *API) GenerateScript(c fiber.Ctx) error {
	var req models.GenerateScriptRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "요청 본문을 해석할 수 없습니다.")
	}
	if req.Video == nil {
		return badRequest(c, service.ErrNoVideo.Error())
	}

	script, err := a.generator.GenerateScript(c.Context(), req.Video)
	if err != nil {
		log.Printf("[http] generate-video-script for %s failed: %v", req.Video.ID, err)
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": script})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{Success: false, Error: msg})
}

// fail translates service errors into a status code and a message safe to
// show in the dashboard. Raw AI output never leaves the server.
func fail(c fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(models.ErrorResponse{Success: false, Error: messageFor(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNoVideo),
		errors.Is(err, service.ErrNoVideos),
		errors.Is(err, service.ErrNoPrompts):
		return http.StatusBadRequest
	case errors.Is(err, gemini.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case isInvalidDuration(err):
		return http.StatusBadRequest
	case errors.Is(err, gemini.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, gemini.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, gemini.ErrModelNotFound),
		errors.Is(err, gemini.ErrEmptyResponse),
		errors.Is(err, youtube.ErrUpstream):
		return http.StatusBadGateway
	}
	var malformed *normalize.MalformedError
	if errors.As(err, &malformed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func isInvalidDuration(err error) bool {
	var invalid *prompt.ErrInvalidDuration
	return errors.As(err, &invalid)
}

func messageFor(err error) string {
	switch {
	case isInvalidDuration(err):
		return "유효하지 않은 영상 길이입니다."
	case errors.Is(err, gemini.ErrInvalidCredentials):
		return "AI API 키가 유효하지 않습니다. GEMINI_API_KEY 설정을 확인해주세요."
	case errors.Is(err, gemini.ErrQuotaExceeded):
		return "AI 요청 한도가 초과되었습니다. 잠시 후 다시 시도해주세요."
	case errors.Is(err, gemini.ErrModelNotFound):
		return "설정된 AI 모델을 찾을 수 없습니다. GEMINI_MODEL 설정을 확인해주세요."
	case errors.Is(err, gemini.ErrTimeout):
		return "AI 요청 시간이 초과되었습니다. 다시 시도해주세요."
	case errors.Is(err, gemini.ErrEmptyResponse):
		return "AI가 응답을 생성하지 못했습니다. 다시 시도해주세요."
	case errors.Is(err, youtube.ErrMissingAPIKey):
		return "YouTube API 키가 설정되지 않았습니다."
	}
	var malformed *normalize.MalformedError
	if errors.As(err, &malformed) {
		return "AI 응답 해석 실패: 결과가 올바른 형식이 아닙니다. 다시 시도해주세요."
	}
	return err.Error()
}
