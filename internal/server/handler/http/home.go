package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
)

//go:embed content/home.md
var contentFS embed.FS

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Growth Mindset Challenge</title></head>
<body>
{{.}}
</body>
</html>
`))

// HomeHandler serves the informational landing page.
type HomeHandler struct {
	page []byte
}

// NewHomeHandler renders the embedded Markdown once and keeps the HTML.
func NewHomeHandler() (*HomeHandler, error) {
	md, err := contentFS.ReadFile("content/home.md")
	if err != nil {
		return nil, fmt.Errorf("read home page: %w", err)
	}
	var body bytes.Buffer
	if err := goldmark.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("convert home page: %w", err)
	}
	var page bytes.Buffer
	if err := pageTmpl.Execute(&page, template.HTML(body.String())); err != nil {
		return nil, fmt.Errorf("render home page: %w", err)
	}
	return &HomeHandler{page: page.Bytes()}, nil
}

// Home handles GET /.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.page)
}
