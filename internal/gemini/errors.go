package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Gateway failures are surfaced distinctly so handlers can give actionable
// guidance instead of one opaque 500. None of these are retried here —
// a single attempt per call, the user re-triggers manually.
var (
	ErrMissingAPIKey      = errors.New("gemini: GEMINI_API_KEY is not set")
	ErrInvalidCredentials = errors.New("gemini: API 키가 유효하지 않습니다")
	ErrQuotaExceeded      = errors.New("gemini: AI 요청 한도가 초과되었습니다")
	ErrModelNotFound      = errors.New("gemini: 해당 모델을 찾을 수 없습니다")
	ErrEmptyResponse      = errors.New("gemini: 응답 후보가 없습니다")
	ErrNoImage            = errors.New("gemini: 생성된 이미지가 없습니다")
	ErrTimeout            = errors.New("gemini: 요청 시간이 초과되었습니다")
)

// classify maps transport and API errors onto the gateway taxonomy. Unknown
// errors pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrInvalidCredentials
		case http.StatusTooManyRequests:
			return ErrQuotaExceeded
		case http.StatusNotFound:
			return ErrModelNotFound
		}
		if strings.Contains(apiErr.Message, "API_KEY_INVALID") {
			return ErrInvalidCredentials
		}
	}
	return err
}
