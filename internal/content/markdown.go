package content

import (
	"bytes"

	"eaglegym/internal/logger"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in the source is escaped: WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderTerms turns the markdown terms of an offer into HTML.
func renderTerms(md string) string {
	if md == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		logger.Warn("Failed to render offer terms", "error", err)
		return ""
	}
	return buf.String()
}
