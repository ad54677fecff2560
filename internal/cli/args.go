package cli

import (
	"fmt"
	"strconv"
	"strings"

	"skateplan/internal/core/services"
	"skateplan/pkg/validation"
)

func parseID(name, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		err = validation.ValidateEntityID(id)
	}
	if err != nil {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return id, nil
}

var weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// parseDay accepts a day index 0..6 (Monday first), a weekday name, or
// "week" for the plan theme.
func parseDay(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "week" {
		return services.ThemeDay, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	for i, d := range weekdays {
		if strings.HasPrefix(s, d) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("day must be 0-6, a weekday or \"week\", got %q", s)
}
