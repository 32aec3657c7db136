package seo

import "strings"

// Site is the canonical site identity every page's metadata and
// structured data derive from. Built once at startup, read-only.
type Site struct {
	BaseURL      string
	Name         string
	Description  string
	DefaultImage string
	Keywords     []string

	// Business identity for structured data
	Telephone   string
	Email       string
	Locality    string
	Region      string
	Country     string
	PriceRange  string
	RatingValue float64
	ReviewCount int
}

// OpenGraph carries the social-preview fields for a page
type OpenGraph struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Type        string   `json:"type"`
	SiteName    string   `json:"siteName"`
	Images      []string `json:"images"`
}

// TwitterCard carries the Twitter-specific preview fields
type TwitterCard struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Meta is the per-page SEO metadata block
type Meta struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords,omitempty"`
	Canonical   string      `json:"canonical"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     TwitterCard `json:"twitter"`
	NoIndex     bool        `json:"noindex,omitempty"`
}

// URL joins a path onto the canonical base URL.
func (s *Site) URL(path string) string {
	if path == "" || path == "/" {
		return s.BaseURL
	}
	return s.BaseURL + "/" + strings.Trim(path, "/")
}

// Page builds metadata for a route. Extra keywords are appended to
// the site-wide set; images default to the site's preview image so
// every page carries at least one.
func (s *Site) Page(title, description, path string, keywords []string, images ...string) Meta {
	if len(images) == 0 && s.DefaultImage != "" {
		images = []string{s.DefaultImage}
	}
	canonical := s.URL(path)
	fullTitle := title
	if title == "" {
		fullTitle = s.Name
	} else if !strings.Contains(title, s.Name) {
		fullTitle = title + " | " + s.Name
	}

	return Meta{
		Title:       fullTitle,
		Description: description,
		Keywords:    append(append([]string{}, s.Keywords...), keywords...),
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Title:       fullTitle,
			Description: description,
			URL:         canonical,
			Type:        "website",
			SiteName:    s.Name,
			Images:      images,
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       fullTitle,
			Description: description,
			Images:      images,
		},
	}
}

// NotFound builds the metadata variant for an absent record, e.g. a
// portfolio slug that matched nothing. Not indexed.
func (s *Site) NotFound(kind string) Meta {
	m := s.Page(capitalize(kind)+" Not Found",
		"The "+kind+" you are looking for could not be found.", "404", nil)
	m.NoIndex = true
	return m
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
