// Package views renders the HTML pages and maps handler outcomes to responses.
package views

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"taco-cloud/internal/session"
)

const (
	Home     = "home"
	Design   = "design"
	Order    = "orderForm"
	Login    = "login"
	Register = "registration"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Renderer interface {
	Render(ctx context.Context, w io.Writer, name string, data any) error
}

type TemplateRenderer struct {
	t *template.Template
}

func NewRenderer() (*TemplateRenderer, error) {
	t, err := template.New("").Funcs(csrfFuncs("")).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{t: t}, nil
}

// Render executes into a buffer first so a failing template never leaves a
// half-written page behind. Forms get the CSRF token bound to ctx.
func (r *TemplateRenderer) Render(ctx context.Context, w io.Writer, name string, data any) error {
	t, err := r.t.Clone()
	if err != nil {
		return fmt.Errorf("clone templates: %w", err)
	}
	t.Funcs(csrfFuncs(session.CSRFTokenFromContext(ctx)))

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func csrfFuncs(token string) template.FuncMap {
	return template.FuncMap{
		"csrfField": func() template.HTML {
			return template.HTML(`<input type="hidden" name="` + session.CSRFField + `" value="` +
				template.HTMLEscapeString(token) + `">`)
		},
	}
}

// Outcome is what a form operation decided: either render View with Model,
// or redirect to Redirect. A non-empty SessionID moves the browser to that
// session.
type Outcome struct {
	View      string
	Model     any
	Redirect  string
	SessionID string
}

func RedirectTo(path string) Outcome { return Outcome{Redirect: path} }

func Show(view string, model any) Outcome { return Outcome{View: view, Model: model} }

// Respond writes the outcome: a 303 for redirects, otherwise the rendered view with 200.
func Respond(w http.ResponseWriter, r *http.Request, renderer Renderer, o Outcome) error {
	if o.SessionID != "" {
		session.Reissue(r.Context(), w, o.SessionID)
	}
	if o.Redirect != "" {
		http.Redirect(w, r, o.Redirect, http.StatusSeeOther)
		return nil
	}
	var buf bytes.Buffer
	if err := renderer.Render(r.Context(), &buf, o.View, o.Model); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
