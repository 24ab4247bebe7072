package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		err      error
	}{
		{name: "somente data", input: "2024-06-10", expected: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{name: "RFC 3339 com fuso", input: "2024-06-10T03:00:00+03:00", expected: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{name: "vazio", input: " ", err: ErrInvalidDate},
		{name: "formato brasileiro", input: "10/06/2024", err: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(date))
		})
	}
}
