package youtube

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts an ISO-8601 video duration (PT#H#M#S) to
// seconds. Unparseable input yields 0, matching how the chart response is
// treated: a missing duration just marks the video as a short.
func ParseISODuration(d string) int {
	m := isoDurationRe.FindStringSubmatch(d)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	return hours*3600 + minutes*60 + seconds
}

// cutoffForPeriod maps a period token to the earliest publish date included
// in the listing. Unknown tokens fall back to one week.
func cutoffForPeriod(period string, now time.Time) time.Time {
	switch period {
	case "2w":
		return now.AddDate(0, 0, -14)
	case "1m":
		return now.AddDate(0, -1, 0)
	default: // "1w"
		return now.AddDate(0, 0, -7)
	}
}

// FormatCount renders a counter with thousands separators for display.
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
