package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateBatchID returns the marker shared by every line of one
// submission.
func GenerateBatchID() string {
	return uuid.NewString()
}

// GenerateOrderLineID creates a unique order-line id. The uuid fragment
// keeps concurrent same-instant submissions to the same table from
// colliding; the timestamp alone is not enough at coarse clock
// resolution.
func GenerateOrderLineID(tableID string, now time.Time) string {
	// Format: T01-20060102150405-a1b2c3d4
	return fmt.Sprintf("%s-%s-%s", tableID, now.Format("20060102150405"), uuid.NewString()[:8])
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}
