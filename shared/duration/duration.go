package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"escapade/shared/constant"
)

// Activity durations travel as strings such as "5h30", "5h" or "5".
var grammar = regexp.MustCompile(`^(\d+)(?:h(\d{2})?)?$`)

const minutesPerHour = 60

// Valid reports whether text matches the duration grammar.
func Valid(text string) bool {
	return grammar.MatchString(strings.ToLower(strings.TrimSpace(text)))
}

// Parse converts a duration string to decimal hours: "5h30" is 5.5, "5h" is 5.
// Unrecognized input logs a warning and returns 0 — callers must treat 0 as
// "unknown", not as a zero-length activity.
func Parse(text string) float64 {
	normalized := strings.ToLower(strings.TrimSpace(text))

	match := grammar.FindStringSubmatch(normalized)
	if match == nil {
		log.Warn().Str("duration", text).Msg("unrecognized duration format")

		return 0
	}

	hours, _ := strconv.Atoi(match[1])

	minutes := 0
	if match[2] != "" {
		minutes, _ = strconv.Atoi(match[2])
	}

	return float64(hours) + float64(minutes)/minutesPerHour
}

// Format is the inverse of Parse: 5.5 renders as "5h30", 5 as "5h". Zero and
// negative values render as "0h".
func Format(hours float64) string {
	if hours <= 0 {
		return "0h"
	}

	whole := int(hours)
	minutes := int(math.Round((hours - float64(whole)) * minutesPerHour))

	if minutes >= minutesPerHour {
		whole++
		minutes -= minutesPerHour
	}

	if minutes == 0 {
		return fmt.Sprintf("%dh", whole)
	}

	return fmt.Sprintf("%dh%02d", whole, minutes)
}

// EndTime adds the session-type's duration to a "HH:MM" start time and returns
// the resulting "HH:MM" clock value. This is same-day clock arithmetic: an
// activity starting at 22:00 with an 8h duration yields "06:00" with no
// rollover marker, matching how sessions have always been displayed.
func EndTime(start string, durationHalf, durationFull float64, sessionType string) (string, error) {
	at, err := time.Parse(constant.ClockFormat, start)
	if err != nil {
		return constant.Empty, fmt.Errorf("invalid start time %q: %w", start, err)
	}

	hours := durationFull
	if sessionType == constant.SessionTypeHalfDay {
		hours = durationHalf
	}

	minutes := int(math.Round(hours * minutesPerHour))

	return at.Add(time.Duration(minutes) * time.Minute).Format(constant.ClockFormat), nil
}
