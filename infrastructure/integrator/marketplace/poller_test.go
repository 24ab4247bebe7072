package marketplace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller_Poll(t *testing.T) {
	tests := []struct {
		name          string
		maxAttempts   int
		statuses      []string
		expected      string
		expectedSleep int
		validateErr   func(t *testing.T, err error)
	}{
		{
			name:          "processing duas vezes e depois pronto",
			maxAttempts:   10,
			statuses:      []string{"processing", "processing", "ready"},
			expected:      "https://files/X.csv",
			expectedSleep: 2,
		},
		{
			name:          "pronto na primeira consulta",
			maxAttempts:   10,
			statuses:      []string{"ready"},
			expected:      "https://files/X.csv",
			expectedSleep: 0,
		},
		{
			name:          "limite de tentativas excedido",
			maxAttempts:   3,
			statuses:      []string{"waiting", "waiting", "waiting", "ready"},
			expectedSleep: 2,
			validateErr: func(t *testing.T, err error) {
				var timeoutErr *ReportTimeoutError
				require.True(t, errors.As(err, &timeoutErr))
				assert.Equal(t, 3, timeoutErr.Attempts)
			},
		},
		{
			name:          "falha do marketplace interrompe o polling",
			maxAttempts:   10,
			statuses:      []string{"processing", "failed"},
			expectedSleep: 1,
			validateErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrReportFailed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sleeps := 0
			poller := NewPoller(3*time.Second, tt.maxAttempts).WithSleep(func(ctx context.Context, d time.Duration) error {
				assert.Equal(t, 3*time.Second, d)
				sleeps++
				return nil
			})

			call := 0
			result, err := poller.Poll(context.Background(), func(ctx context.Context) (bool, string, error) {
				status := tt.statuses[call]
				call++
				switch status {
				case "processing", "waiting":
					return false, "", nil
				case "failed":
					return false, "", ErrReportFailed
				default:
					return true, "https://files/X.csv", nil
				}
			})

			assert.Equal(t, tt.expectedSleep, sleeps)
			if tt.validateErr != nil {
				tt.validateErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPoller_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	poller := NewPoller(time.Hour, 5)
	_, err := poller.Poll(ctx, func(ctx context.Context) (bool, string, error) {
		return false, "", nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
