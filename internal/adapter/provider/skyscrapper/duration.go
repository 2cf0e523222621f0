package skyscrapper

import (
	"fmt"
	"regexp"
	"strconv"
)

// isoDurationRegex matches the hour and minute parts of durations like "PT7H30M".
// Durations missing either part do not match.
var isoDurationRegex = regexp.MustCompile(`PT(\d+)H(\d+)M`)

// ParseISODuration extracts hours and minutes from an ISO-8601 duration.
// ok is false when the value does not match; hours and minutes are then zero.
func ParseISODuration(s string) (hours, minutes int, ok bool) {
	m := isoDurationRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	h, herr := strconv.Atoi(m[1])
	mins, merr := strconv.Atoi(m[2])
	if herr != nil || merr != nil {
		return 0, 0, false
	}
	return h, mins, true
}

// FormatISODuration encodes hours and minutes as "PT<H>H<M>M".
func FormatISODuration(hours, minutes int) string {
	return fmt.Sprintf("PT%dH%dM", hours, minutes)
}
