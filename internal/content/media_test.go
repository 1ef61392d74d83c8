package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaResolver_URL(t *testing.T) {
	m := NewMediaResolver("https://abc.supabase.co/", "gym-media")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"relative key", "coaches/john.jpg", "https://abc.supabase.co/storage/v1/object/public/gym-media/coaches/john.jpg"},
		{"leading slash", "/coaches/john.jpg", "https://abc.supabase.co/storage/v1/object/public/gym-media/coaches/john.jpg"},
		{"https passthrough", "https://cdn.example.com/x.jpg", "https://cdn.example.com/x.jpg"},
		{"http passthrough", "http://cdn.example.com/x.jpg", "http://cdn.example.com/x.jpg"},
		{"space escaped", "coaches/mo salah.png", "https://abc.supabase.co/storage/v1/object/public/gym-media/coaches/mo%20salah.png"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.URL(tt.path))
		})
	}
}
