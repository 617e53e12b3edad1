package waste

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError blocks a submission before it reaches the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// scheduledLayouts are the date formats a schedule form may post:
// RFC3339 and the value of an HTML datetime-local input.
var scheduledLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseScheduledDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range scheduledLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}
