package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/dom"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en" class="{{.Class}}" style="{{.Style}}">
<head>
<meta charset="utf-8">
<title>Theme Demo</title>
<style>
body { background: var(--color-bg); color: var(--color-text); font-family: system-ui, sans-serif; margin: 2rem; }
.card { background: var(--color-surface); border: 1px solid var(--color-border); border-radius: 8px; padding: 1rem 1.5rem; max-width: 32rem; }
.muted { color: var(--color-text-secondary); }
.badge { background: var(--color-accent); color: var(--button-text); border-radius: 999px; padding: 0.1rem 0.6rem; }
.swatch { display: inline-block; width: 1rem; height: 1rem; border-radius: 3px; vertical-align: middle; margin-right: 0.5rem; }
button { background: var(--button-bg); color: var(--button-text); border: 0; border-radius: 6px; padding: 0.4rem 1rem; cursor: pointer; }
button:hover { background: var(--button-bg-hover); }
li.current { color: var(--color-accent); font-weight: bold; }
</style>
</head>
<body>
<div class="card">
<h2>Theme Demo</h2>
<p class="muted">Current Theme Mode: <span class="badge" data-theme="{{.Current}}">{{.Current}}</span></p>
<p class="muted">Theme Colors:</p>
<ul>
{{- range .Swatches}}
<li><span class="swatch" style="{{.Style}}"></span>{{.Label}} <code>{{.Value}}</code></li>
{{- end}}
</ul>
<form method="post" action="/toggle"><button type="submit">Toggle Theme</button></form>
<p class="muted">Themes:</p>
<ul>
{{- range .Themes}}
<li{{if .Current}} class="current"{{end}}><form method="post" action="/use" style="display:inline"><input type="hidden" name="name" value="{{.Name}}"><button type="submit">{{.Label}}</button></form></li>
{{- end}}
</ul>
</div>
</body>
</html>
`))

type pageData struct {
	Class    string
	Style    template.CSS
	Current  string
	Swatches []pageSwatch
	Themes   []pageTheme
}

type pageSwatch struct {
	Label string
	Value string
	Style template.CSS
}

type pageTheme struct {
	Name    string
	Label   string
	Current bool
}

var pageSwatches = []struct {
	label string
	key   string
}{
	{"Accent", "accent"},
	{"Success", "success"},
	{"Warning", "warning"},
	{"Error", "error"},
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ss, ok := s.openOrFail(w, r)
	if !ok {
		return
	}
	defer ss.close()
	ss.flush()

	v := ss.mgr.Value()
	data := pageData{
		Class:   ss.doc.ClassAttr(),
		Style:   rootStyle(ss.doc.Properties()),
		Current: v.CurrentTheme,
	}
	for _, sw := range pageSwatches {
		value, _ := v.Colors.Get(sw.key)
		if !theme.ValidColor(value) {
			continue
		}
		data.Swatches = append(data.Swatches, pageSwatch{
			Label: sw.label,
			Value: value,
			Style: template.CSS("background: " + value),
		})
	}
	for _, def := range v.Themes.Definitions() {
		data.Themes = append(data.Themes, pageTheme{
			Name:    def.Name,
			Label:   def.Label(),
			Current: def.Name == v.CurrentTheme,
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		loggerFrom(r.Context(), s.log).Error(err, "failed to render page")
		writeProblem(w, http.StatusInternalServerError, "internal", "page rendering failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// rootStyle renders the projected variables, dropping any value that is not
// a plain color.
func rootStyle(props []dom.Property) template.CSS {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		if theme.ValidColor(p.Value) {
			parts = append(parts, p.Name+": "+p.Value)
		}
	}
	return template.CSS(strings.Join(parts, "; "))
}

// handleToggleForm toggles and redirects back to the page.
func (s *Server) handleToggleForm(w http.ResponseWriter, r *http.Request) {
	s.formAction(w, r, func(ss *session) error { return ss.mgr.ToggleTheme() })
}

// handleUseForm switches to the posted name and redirects back to the page.
func (s *Server) handleUseForm(w http.ResponseWriter, r *http.Request) {
	s.formAction(w, r, func(ss *session) error { return ss.mgr.UpdateTheme(r.PostFormValue("name")) })
}

func (s *Server) formAction(w http.ResponseWriter, r *http.Request, action func(*session) error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid-request", "malformed form body")
		return
	}

	ss, ok := s.openOrFail(w, r)
	if !ok {
		return
	}
	defer ss.close()

	err := action(ss)
	ss.flush()
	if err != nil {
		s.writeManagerError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
