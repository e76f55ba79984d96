package utils

import "time"

// Timestamps are stored as Unix seconds and rendered in UTC.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatUnixRFC3339 renders epoch seconds as RFC3339 UTC. Zero or negative
// values render as the empty string.
func FormatUnixRFC3339(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
