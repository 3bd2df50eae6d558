package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	slept := []time.Duration{}

	result, err := Do(func() (string, error) {
		calls++
		return "ok", nil
	}, Options{
		Attempts: 3,
		Delay:    5 * time.Second,
		Sleep:    func(d time.Duration) { slept = append(slept, d) },
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
	assert.Empty(t, slept, "não deve pausar quando a primeira tentativa dá certo")
}

func TestDoRecoversAfterFailures(t *testing.T) {
	calls := 0
	slept := []time.Duration{}

	result, err := Do(func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("falha transitória")
		}
		return 42, nil
	}, Options{
		Attempts: 3,
		Delay:    5 * time.Second,
		Sleep:    func(d time.Duration) { slept = append(slept, d) },
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, slept)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	lastErr := errors.New("indisponível")

	_, err := Do(func() (int, error) {
		calls++
		return 0, lastErr
	}, Options{
		Attempts: 3,
		Delay:    time.Second,
		Sleep:    func(time.Duration) {},
	})

	require.Error(t, err)
	assert.Equal(t, lastErr, err, "o erro retornado deve ser o da última tentativa, sem wrapping")
	assert.Equal(t, 3, calls, "deve executar exatamente o número configurado de tentativas")
}

func TestDoAppliesDefaults(t *testing.T) {
	calls := 0
	slept := 0

	_, err := Do(func() (struct{}, error) {
		calls++
		return struct{}{}, errors.New("sempre falha")
	}, Options{
		Sleep: func(time.Duration) { slept++ },
	})

	require.Error(t, err)
	assert.Equal(t, DefaultAttempts, calls)
	assert.Equal(t, DefaultAttempts-1, slept)
}
