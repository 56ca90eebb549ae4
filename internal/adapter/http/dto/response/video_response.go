package response

import (
	"time"

	"shootbook/internal/usecase"
)

type PresignedVideoResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromPresignedVideo(v usecase.PresignedVideo) PresignedVideoResponse {
	return PresignedVideoResponse{Key: v.Key, URL: v.URL, ExpiresAt: v.ExpiresAt}
}
