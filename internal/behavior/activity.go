package behavior

import (
	"strconv"
	"strings"
	"time"

	"github.com/easegen/influencer-sim/internal/types"
)

// FreeTimeLabel is returned when no routine entry matches the current hour.
const FreeTimeLabel = "Free time"

// unmatchableHour is substituted for entries whose time token cannot be
// parsed. It never equals a real clock hour, so a malformed entry is skipped
// and resolution continues with the remaining entries.
const unmatchableHour = -1

// ResolveActivity maps the current time onto the routine and returns the
// matching activity label. Morning entries are scanned in stored order, then
// evening entries; an entry matches only when its parsed hour equals the
// current hour. Activities are scheduled at exact hour boundaries, so a
// character between scheduled entries is reported as free rather than
// snapped to the most recent entry.
func (e *Engine) ResolveActivity(now time.Time, routine types.DailyRoutine) string {
	hour := now.Hour()
	for _, segment := range [][]string{routine.Morning, routine.Evening} {
		for _, entry := range segment {
			timeToken, label, ok := strings.Cut(entry, ": ")
			if !ok {
				continue
			}
			if parseEntryHour(timeToken) == hour {
				return label
			}
		}
	}
	return FreeTimeLabel
}

// parseEntryHour extracts the hour from a routine time token. Tokens may
// carry minutes or a meridiem suffix ("9", "09", "6:00 AM"); only the
// leading hour matters for matching.
func parseEntryHour(token string) int {
	hourPart, _, _ := strings.Cut(token, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil || hour < 0 || hour > 23 {
		return unmatchableHour
	}
	return hour
}
