package request

import "time"

// MaxExpiresInSeconds matches the longest lifetime a video URL can be signed
// for (12h).
const MaxExpiresInSeconds = 43200

// PresignedVideoQuery is bound from the query string.
type PresignedVideoQuery struct {
	Key              string `form:"key" binding:"required"`
	ExpiresInSeconds int    `form:"expires_in" binding:"omitempty,min=0,max=43200"`
}

// Expires converts expires_in to a duration, clamped to MaxExpiresInSeconds
// so the multiplication cannot overflow.
func (q PresignedVideoQuery) Expires() time.Duration {
	secs := min(max(q.ExpiresInSeconds, 0), MaxExpiresInSeconds)
	return time.Duration(secs) * time.Second
}
