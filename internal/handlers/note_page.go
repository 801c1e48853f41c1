package handlers

import (
	"bytes"
	"html/template"
	"time"

	"github.com/slinkhq/slink/internal/entry"
)

// notePageTemplate renders a note for browser viewing. All user-supplied
// fields pass through html/template's contextual escaping.
var notePageTemplate = template.Must(template.New("note").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} - {{end}}slink note</title>
</head>
<body>
  <main style="max-width:720px;margin:48px auto;font-family:sans-serif">
    {{if .Title}}<h1>{{.Title}}</h1>{{end}}
    <p style="color:#666;font-size:.875rem">{{.CreatedAt}} &middot; {{.ViewCount}} views</p>
    <div style="white-space:pre-wrap;line-height:1.7">{{.Content}}</div>
    <p style="margin-top:32px"><a href="/">Create a new note</a></p>
  </main>
</body>
</html>
`))

type notePageData struct {
	Title     string
	Content   string
	CreatedAt string
	ViewCount int
}

func renderNotePage(e *entry.Entry) ([]byte, error) {
	var buf bytes.Buffer

	err := notePageTemplate.Execute(&buf, notePageData{
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt.Format(time.RFC1123),
		ViewCount: e.AccessCount,
	})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
