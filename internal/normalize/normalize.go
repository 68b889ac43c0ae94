// Package normalize defends against AI text output that should be JSON but
// arrives wrapped in Markdown code fences. It has no schema awareness beyond
// "is this valid JSON" — schema-level checks belong to the caller.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedError reports AI output that did not parse as JSON after fence
// stripping. Raw carries the offending text for logs; it must never be
// returned to the client as data.
type MalformedError struct {
	Task string
	Raw  string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: AI 응답 해석 실패: %v", e.Task, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// StripFences removes a leading and trailing Markdown code fence, with or
// without a language tag, and trims surrounding whitespace.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// drop the whole fence line so tags like ```json or ```JSON go too
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// JSONText strips fences and verifies the remainder is a valid JSON document.
// It returns the unwrapped raw JSON text on success. On parse failure it
// fails loudly with a MalformedError — a half-formed structure handed onward
// is worse than an explicit error the caller can surface.
func JSONText(task, raw string) (string, error) {
	cleaned := StripFences(raw)
	if !json.Valid([]byte(cleaned)) {
		// run a real decode to capture the parse error detail
		var sink any
		err := json.Unmarshal([]byte(cleaned), &sink)
		if err == nil {
			err = fmt.Errorf("empty document")
		}
		return "", &MalformedError{Task: task, Raw: raw, Err: err}
	}
	return cleaned, nil
}

// Decode normalizes raw AI output and unmarshals it into out.
func Decode(task, raw string, out any) error {
	cleaned, err := JSONText(task, raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &MalformedError{Task: task, Raw: raw, Err: err}
	}
	return nil
}
