// Package nav holds the site's fixed link set and breadcrumb trail.
package nav

import (
	"strings"

	"github.com/givers/site/internal/model"
)

const (
	HomePath    = "/"
	ContactPath = "/contact"
	SupportPath = "/support"
	FAQPath     = "/faqs"
)

type page struct {
	label string
	path  string
}

var pages = []page{
	{label: "Home", path: HomePath},
	{label: "Support", path: SupportPath},
	{label: "Contact", path: ContactPath},
	{label: "FAQs", path: FAQPath},
}

// Links returns the main navigation with the entry for path marked active.
func Links(path string) []model.NavLink {
	links := make([]model.NavLink, len(pages))
	for i, p := range pages {
		links[i] = model.NavLink{Label: p.label, Href: p.path, Active: IsActive(p.path, path)}
	}
	return links
}

// IsActive reports whether href names the page at path.
func IsActive(href, path string) bool {
	path = normalize(path)
	if href == HomePath {
		return path == HomePath
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

// Breadcrumbs returns Home followed by the current page. Unknown paths
// produce Home alone.
func Breadcrumbs(path string) []model.Breadcrumb {
	path = normalize(path)
	home := model.Breadcrumb{Label: "Home", Href: HomePath}
	if path == HomePath {
		home.Current = true
		return []model.Breadcrumb{home}
	}
	for _, p := range pages[1:] {
		if IsActive(p.path, path) {
			return []model.Breadcrumb{home, {Label: p.label, Href: p.path, Current: true}}
		}
	}
	return []model.Breadcrumb{home}
}

// Link returns the navigation entry for path without marking it active.
func Link(path string) model.NavLink {
	for _, p := range pages {
		if p.path == path {
			return model.NavLink{Label: p.label, Href: p.path}
		}
	}
	return model.NavLink{Label: path, Href: path}
}

func normalize(path string) string {
	if path == "" {
		return HomePath
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
