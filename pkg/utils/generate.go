package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingCode creates the human-facing booking reference.
// Format: ORA-YYYYMMDD-XXXXXXXXXX (10 hex chars from crypto/rand).
// The date stamp keeps codes time-sortable; the random suffix plus the
// unique index on bookings.booking_code prevents collisions under
// concurrent creates.
func GenerateBookingCode() string {
	return fmt.Sprintf("ORA-%s-%s", time.Now().Format("20060102"), randomSuffix(5))
}

// GeneratePaymentNo creates a unique payment reference.
// Format: PAY-YYYYMMDD-XXXXXXXXXX
func GeneratePaymentNo() string {
	return fmt.Sprintf("PAY-%s-%s", time.Now().Format("20060102"), randomSuffix(5))
}

// GenerateUnsubscribeToken creates the newsletter unsubscribe token.
func GenerateUnsubscribeToken() string {
	return uuid.New().String()
}

func randomSuffix(bytes int) string {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to uuid
		return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:bytes*2])
	}
	return strings.ToUpper(hex.EncodeToString(buf))
}
