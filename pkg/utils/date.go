package utils

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("data deve estar no formato YYYY-MM-DD ou RFC 3339")

// ParseDate aceita YYYY-MM-DD ou RFC 3339. Datas sem fuso são tratadas como UTC.
func ParseDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339, time.RFC3339Nano} {
		if date, err := time.Parse(layout, value); err == nil {
			return date.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}
