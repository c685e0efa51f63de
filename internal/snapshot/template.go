package snapshot

import (
	"bytes"
	"html/template"

	"github.com/julianstephens/tripboard/internal/presenter"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Board.Title}}</title>
<style>
  body { margin: 0; font-family: "Noto Sans Thai", "Noto Sans", sans-serif; color: #44403c; background: #fff; }
  .board { padding: 16px; }
  h1 { font-size: 20px; margin: 0 0 12px; }
  h2 { font-size: 16px; margin: 16px 0 8px; }
  .card { display: flex; border: 1px solid #e5e7eb; border-radius: 6px; margin-bottom: 8px; }
  .card.past { opacity: .5; }
  .card.done { background: #e5e7eb; }
  .card.current { border: 2px solid #22c55e; }
  .bar { width: 4px; background: #d1d5db; border-radius: 6px 0 0 6px; }
  .card.done .bar { background: #22c55e; }
  .body { padding: 12px 16px; width: 100%; }
  .head { display: flex; justify-content: space-between; font-size: 14px; }
  .time { font-weight: 600; }
  .badge { background: #22c55e; color: #fff; font-size: 11px; padding: 2px 8px; border-radius: 9999px; margin-left: 6px; }
  .activity { font-weight: 600; margin-top: 6px; }
  .muted { color: #78716c; font-size: 14px; }
  .note { font-style: italic; margin-top: 6px; }
  .note span { background: rgba(226,232,240,.5); margin-right: 4px; }
</style>
</head>
<body>
<div class="board" data-ready="true">
  <h1>{{.Board.Title}}</h1>
  {{- range .Board.Sections}}
  {{- if .Heading}}<h2>{{.Heading}}</h2>{{end}}
  {{- range .Rows}}
  <div class="card{{if .Past}} past{{end}}{{if .Done}} done{{end}}{{if .Current}} current{{end}}">
    <div class="bar"></div>
    <div class="body">
      <div class="head">
        <div><span class="time">{{.Time}}</span>{{if .Current}}<span class="badge">{{$.Board.CurrentLabel}}</span>{{end}}</div>
        <div class="muted">{{.Duration}}</div>
      </div>
      <div class="activity">{{.Activity}}</div>
      <div class="muted">{{.Location}}</div>
      <div class="muted note"><span>{{$.Board.NoteLabel}}</span>{{.Note}}</div>
    </div>
  </div>
  {{- end}}
  {{- end}}
</div>
</body>
</html>
`))

// RenderHTML renders a board as a standalone page whose root carries
// data-ready="true" once laid out.
func RenderHTML(board presenter.Board, lang string) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		Lang  string
		Board presenter.Board
	}{lang, board})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
