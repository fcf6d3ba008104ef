package internal

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Retry_Returns_First_Success(t *testing.T) {
	req := require.New(t)
	calls := 0

	result, err := Retry(slog.Default(), 3, time.Millisecond, func() (string, error) {
		calls++
		if calls < 2 {
			return "", fmt.Errorf("transient failure")
		}
		return "done", nil
	})

	req.NoError(err)
	req.Equal("done", result)
	req.Equal(2, calls)
}

func Test_Retry_Gives_Up_After_Max_Attempts(t *testing.T) {
	req := require.New(t)
	calls := 0

	_, err := Retry(slog.Default(), 3, time.Millisecond, func() (int, error) {
		calls++
		return 0, fmt.Errorf("attempt %d failed", calls)
	})

	req.Error(err)
	req.ErrorContains(err, "attempt 3 failed")
	req.Equal(3, calls)
}

func Test_Retry_Backs_Off_Linearly(t *testing.T) {
	req := require.New(t)
	delay := 10 * time.Millisecond

	start := time.Now()
	_, err := Retry(slog.Default(), 3, delay, func() (int, error) {
		return 0, fmt.Errorf("always failing")
	})

	req.Error(err)
	// Two waits between three attempts: delay*1 + delay*2.
	req.GreaterOrEqual(time.Since(start), 3*delay)
}
