package prompt

import "fmt"

// The API endpoint and the storyboard template historically disagreed on the
// seconds-per-frame constant (3 vs 5). It is a single configurable value now,
// passed down from config so both always agree.

// ErrInvalidDuration rejects non-positive durations before any prompt is
// built — a malformed constraint baked into an instruction is far harder to
// diagnose than an input error.
type ErrInvalidDuration struct {
	Duration int
}

func (e *ErrInvalidDuration) Error() string {
	return fmt.Sprintf("invalid duration: %d seconds", e.Duration)
}

// FrameCount derives the storyboard frame count for a target duration:
// ceil(duration / interval).
func FrameCount(durationSec, intervalSec int) (int, error) {
	if durationSec <= 0 {
		return 0, &ErrInvalidDuration{Duration: durationSec}
	}
	if intervalSec <= 0 {
		return 0, fmt.Errorf("invalid frame interval: %d seconds", intervalSec)
	}
	return (durationSec + intervalSec - 1) / intervalSec, nil
}

// Scene is one planned time span of a video script.
type Scene struct {
	StartSec int
	EndSec   int
}

// TimeRange renders the span as "M:SS - M:SS", the format the script prompt
// demands and the client displays.
func (s Scene) TimeRange() string {
	return fmt.Sprintf("%s - %s", clock(s.StartSec), clock(s.EndSec))
}

func clock(sec int) string {
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// ScenePlan splits a target duration into minScenes..maxScenes contiguous
// spans of 2–5 seconds that sum exactly to durationSec. The plan fixes the
// structural constraint embedded in the script prompt; the model fills in
// content, not timing.
func ScenePlan(durationSec, minScenes, maxScenes int) ([]Scene, error) {
	if durationSec <= 0 {
		return nil, &ErrInvalidDuration{Duration: durationSec}
	}
	if minScenes <= 0 || maxScenes < minScenes {
		return nil, fmt.Errorf("invalid scene bounds [%d,%d]", minScenes, maxScenes)
	}

	const minSpan, maxSpan = 2, 5

	count := (durationSec + maxSpan - 1) / maxSpan
	if count < minScenes {
		count = minScenes
	}
	if count > maxScenes {
		count = maxScenes
	}

	base := durationSec / count
	extra := durationSec % count
	if base < minSpan {
		// Short durations: fewer, still-contiguous scenes beat 1s fragments.
		count = durationSec / minSpan
		if count < 1 {
			count = 1
		}
		base = durationSec / count
		extra = durationSec % count
	}

	scenes := make([]Scene, 0, count)
	start := 0
	for i := 0; i < count; i++ {
		span := base
		if i < extra {
			span++
		}
		scenes = append(scenes, Scene{StartSec: start, EndSec: start + span})
		start += span
	}
	return scenes, nil
}
