package model

// NavLink is an outbound navigation target.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// Breadcrumb is one step of the trail from Home to the current page.
type Breadcrumb struct {
	Label   string
	Href    string
	Current bool
}

// InfoItem is a labelled piece of contact information (hours, phone, ...).
type InfoItem struct {
	Icon  string
	Title string
	Lines []string
	Href  string // optional, e.g. tel: or mailto:
}

// SupportCard links the support landing page to another destination.
type SupportCard struct {
	Icon        string
	Title       string
	Description string
	Link        NavLink
}

// Toast is a transient notification rendered once.
type Toast struct {
	Kind    string // "success"
	Message string
}

// Layout carries the data shared by every page.
type Layout struct {
	SiteName    string
	Title       string
	Nav         []NavLink
	Breadcrumbs []Breadcrumb
	Toast       *Toast
}

// ContactPage is the view model for the contact page.
type ContactPage struct {
	Layout
	Heading     string
	Intro       string
	HeroImage   string
	Info        []InfoItem
	MapEmbedURL string
	Form        FormState
	FieldErrors map[string]string // keyed by Field name
}

// SupportPage is the view model for the support landing page.
type SupportPage struct {
	Layout
	Heading   string
	Intro     string
	HeroImage string
	Cards     []SupportCard
}

// FAQPage is the view model for the FAQ placeholder page.
type FAQPage struct {
	Layout
	Heading string
	Intro   string
}
