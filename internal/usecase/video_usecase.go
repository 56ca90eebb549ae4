package usecase

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"shootbook/internal/usecase/interfaces"
)

const (
	MinVideoURLTTL = time.Minute
	MaxVideoURLTTL = 12 * time.Hour
)

var ErrInvalidVideoKey = errors.New("invalid video key")

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".m4v":  true,
	".webm": true,
}

// PresignedVideo is a time-limited download link.
type PresignedVideo struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

type IVideoUseCase interface {
	PresignedURL(ctx context.Context, key string, expires time.Duration) (PresignedVideo, error)
}

type VideoUseCase struct {
	presigner  interfaces.IVideoPresigner
	defaultTTL time.Duration
	now        func() time.Time
}

var _ IVideoUseCase = (*VideoUseCase)(nil)

func NewVideoUseCase(presigner interfaces.IVideoPresigner, defaultTTL time.Duration) *VideoUseCase {
	return &VideoUseCase{
		presigner:  presigner,
		defaultTTL: defaultTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// PresignedURL signs key for expires (the default TTL when zero), clamped
// to [MinVideoURLTTL, MaxVideoURLTTL].
func (u *VideoUseCase) PresignedURL(ctx context.Context, key string, expires time.Duration) (PresignedVideo, error) {
	key = strings.TrimSpace(key)
	if !validVideoKey(key) {
		return PresignedVideo{}, ErrInvalidVideoKey
	}

	if expires <= 0 {
		expires = u.defaultTTL
	}
	expires = min(max(expires, MinVideoURLTTL), MaxVideoURLTTL)

	issuedAt := u.now()
	url, err := u.presigner.PresignGet(ctx, key, expires)
	if err != nil {
		return PresignedVideo{}, err
	}
	return PresignedVideo{Key: key, URL: url, ExpiresAt: issuedAt.Add(expires)}, nil
}

func validVideoKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") || strings.Contains(key, "..") {
		return false
	}
	return videoExtensions[strings.ToLower(path.Ext(key))]
}
