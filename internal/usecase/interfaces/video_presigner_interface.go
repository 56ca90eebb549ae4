package interfaces

import (
	"context"
	"time"
)

// IVideoPresigner issues time-limited download URLs for stored videos.
type IVideoPresigner interface {
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
