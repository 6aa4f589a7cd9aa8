package utils

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCodePattern = regexp.MustCompile(`^ORA-\d{8}-[0-9A-F]{10}$`)

func TestGenerateBookingCodeFormat(t *testing.T) {
	code := GenerateBookingCode()
	assert.Regexp(t, bookingCodePattern, code)
}

func TestGenerateBookingCodeConcurrentUniqueness(t *testing.T) {
	const n = 500

	var mu sync.Mutex
	var wg sync.WaitGroup
	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code := GenerateBookingCode()
			mu.Lock()
			seen[code] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, n, "concurrent generation produced a collision")
}

func TestGeneratePaymentNoFormat(t *testing.T) {
	assert.Regexp(t, `^PAY-\d{8}-[0-9A-F]{10}$`, GeneratePaymentNo())
}

func TestGenerateUnsubscribeToken(t *testing.T) {
	a := GenerateUnsubscribeToken()
	b := GenerateUnsubscribeToken()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
