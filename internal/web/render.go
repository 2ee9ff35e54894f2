package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/yuin/goldmark"

	ai "github.com/spetersoncode/egglens"
)

// examplePrompts are shown above the input box.
var examplePrompts = []string{
	"What hidden stuff is in the first Harry Potter movie?",
	"Inception's spinning top scene – any cool Easter eggs?",
	"Any fun secrets in Interstellar's tesseract scene?",
	"Quidditch scenes in Harry Potter – anything I missed?",
	"Dream layers in Inception – hidden details?",
	"Interstellar – subtle things Nolan put in the movie?",
}

// IndexPageData is the template data for the main page.
type IndexPageData struct {
	Title    string
	Version  string
	Examples []string
	Entries  []EntryView
}

// EntryView is a history entry prepared for display.
type EntryView struct {
	ai.HistoryEntry
	AssistantHTML template.HTML
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	index   *template.Template
	version string
}

// NewRenderer parses the page templates from templateFS. It panics on
// template errors so startup fails fast.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"formatTime": formatTime,
	}
	layout := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))
	index := template.Must(template.Must(layout.Clone()).ParseFS(templateFS, "index.html"))

	return &Renderer{index: index, version: version}
}

func (r *Renderer) renderIndex(w http.ResponseWriter, entries []ai.HistoryEntry) error {
	views := make([]EntryView, len(entries))
	for i, e := range entries {
		views[i] = EntryView{HistoryEntry: e, AssistantHTML: renderMarkdown(e.Assistant)}
	}

	var buf bytes.Buffer
	err := r.index.ExecuteTemplate(&buf, "layout.html", IndexPageData{
		Title:    "Movie Easter Egg Lens",
		Version:  r.version,
		Examples: examplePrompts,
		Entries:  views,
	})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	return nil
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderJSONError writes {"error": message}.
func renderJSONError(w http.ResponseWriter, status int, message string) {
	renderJSON(w, status, map[string]string{"error": message})
}

// renderMarkdown converts markdown text to HTML using goldmark. Raw HTML in
// the source is not passed through.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func formatTime(t time.Time) string {
	return t.Local().Format("15:04")
}
