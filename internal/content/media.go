package content

import (
	"net/url"
	"strings"
)

// MediaResolver turns stored image paths into public URLs.
type MediaResolver struct {
	base string
}

// NewMediaResolver builds a resolver for the public bucket served under storageURL.
func NewMediaResolver(storageURL, bucket string) *MediaResolver {
	return &MediaResolver{
		base: strings.TrimRight(storageURL, "/") + "/storage/v1/object/public/" + strings.Trim(bucket, "/") + "/",
	}
}

func (m *MediaResolver) URL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	key := strings.TrimPrefix(path, "/")
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return m.base + strings.Join(segments, "/")
}
