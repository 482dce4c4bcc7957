// Package view renders the site's pages from embedded html/template files
// and exposes them as templ components.
package view

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/givers/site/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// formField is the data passed to the "field" partial.
type formField struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}

var funcs = template.FuncMap{
	"field": func(name, label, typ, value string, errs map[string]string) formField {
		return formField{Name: name, Label: label, Type: typ, Value: value, Error: errs[name]}
	},
	"safeURL": safeURL,
}

var (
	contactTmpl = parse("contact.html")
	supportTmpl = parse("support.html")
	faqTmpl     = parse("faq.html")
)

func parse(page string) *template.Template {
	return template.Must(template.New(page).Funcs(funcs).
		ParseFS(templateFS, "templates/layout.html", "templates/"+page))
}

// safeURL lets tel: links through html/template's URL filter. Any other
// scheme outside http(s)/mailto or a site-relative path becomes "#".
func safeURL(s string) template.URL {
	for _, prefix := range []string{"tel:", "mailto:", "https://", "http://", "/"} {
		if strings.HasPrefix(s, prefix) {
			return template.URL(s)
		}
	}
	return template.URL("#")
}

func render(t *template.Template, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, "layout", data)
	})
}

// Contact renders the contact page.
func Contact(p model.ContactPage) templ.Component {
	return render(contactTmpl, p)
}

// Support renders the support landing page.
func Support(p model.SupportPage) templ.Component {
	return render(supportTmpl, p)
}

// FAQ renders the FAQ placeholder page.
func FAQ(p model.FAQPage) templ.Component {
	return render(faqTmpl, p)
}

// Static serves the embedded stylesheet and images. Mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
