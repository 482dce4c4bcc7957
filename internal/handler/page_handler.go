package handler

import (
	"net/http"
	"strings"

	"github.com/givers/site/internal/config"
	"github.com/givers/site/internal/model"
	"github.com/givers/site/internal/nav"
	"github.com/givers/site/internal/view"
	"github.com/givers/site/pkg/flash"
)

// PageConfig holds the static content and secrets the pages need.
type PageConfig struct {
	SiteName    string
	Contact     config.ContactInfo
	FlashSecret []byte
}

// PageHandler renders the static pages.
type PageHandler struct {
	cfg PageConfig
}

// NewPageHandler creates a PageHandler with the given configuration.
func NewPageHandler(cfg PageConfig) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// Home handles GET /. The support landing page doubles as the home page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, nav.SupportPath, http.StatusFound)
}

// Contact handles GET /contact. A pending flash notification from a
// previous submission is rendered once as a toast.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var toast *model.Toast
	if msg, ok := flash.Pop(w, r, h.cfg.FlashSecret); ok {
		toast = &model.Toast{Kind: "success", Message: msg}
	}
	page := h.contactPage(r.URL.Path, model.EmptyFormState(), nil, toast)
	renderComponent(w, r, view.Contact(page), http.StatusOK)
}

// Support handles GET /support.
func (h *PageHandler) Support(w http.ResponseWriter, r *http.Request) {
	page := model.SupportPage{
		Layout:    h.layout(r.URL.Path, "Support", nil),
		Heading:   "How can we help?",
		Intro:     "Find answers to common questions or reach out to our team directly.",
		HeroImage: h.cfg.Contact.HeroImageURL,
		Cards: []model.SupportCard{
			{
				Icon:        "mail",
				Title:       "Contact Us",
				Description: "Send us a message and our support team will respond within one business day.",
				Link:        nav.Link(nav.ContactPath),
			},
			{
				Icon:        "help",
				Title:       "Frequently Asked Questions",
				Description: "Browse quick answers about accounts, donations and projects.",
				Link:        nav.Link(nav.FAQPath),
			},
		},
	}
	renderComponent(w, r, view.Support(page), http.StatusOK)
}

// FAQ handles GET /faqs.
func (h *PageHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	page := model.FAQPage{
		Layout:  h.layout(r.URL.Path, "FAQs", nil),
		Heading: "Frequently Asked Questions",
		Intro:   "We are putting together answers to the questions we hear most. Until then, please contact us.",
	}
	renderComponent(w, r, view.FAQ(page), http.StatusOK)
}

func (h *PageHandler) layout(path, title string, toast *model.Toast) model.Layout {
	return model.Layout{
		SiteName:    h.cfg.SiteName,
		Title:       title,
		Nav:         nav.Links(path),
		Breadcrumbs: nav.Breadcrumbs(path),
		Toast:       toast,
	}
}

func (h *PageHandler) contactPage(path string, form model.FormState, fieldErrors map[string]string, toast *model.Toast) model.ContactPage {
	c := h.cfg.Contact
	var info []model.InfoItem
	if len(c.Hours) > 0 {
		info = append(info, model.InfoItem{Icon: "clock", Title: "Business Hours", Lines: c.Hours})
	}
	if c.Phone != "" {
		info = append(info, model.InfoItem{Icon: "phone", Title: "Phone", Lines: []string{c.Phone}, Href: "tel:" + dialable(c.Phone)})
	}
	if c.Email != "" {
		info = append(info, model.InfoItem{Icon: "mail", Title: "Email", Lines: []string{c.Email}, Href: "mailto:" + c.Email})
	}
	if len(c.Address) > 0 {
		info = append(info, model.InfoItem{Icon: "pin", Title: "Address", Lines: c.Address})
	}
	return model.ContactPage{
		Layout:      h.layout(path, "Contact Us", toast),
		Heading:     "Contact Us",
		Intro:       "Have a question or feedback? Fill out the form below and we'll get back to you as soon as possible.",
		HeroImage:   c.HeroImageURL,
		Info:        info,
		MapEmbedURL: c.MapEmbedURL,
		Form:        form,
		FieldErrors: fieldErrors,
	}
}

// dialable strips formatting from a phone number for use in a tel: link.
func dialable(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
