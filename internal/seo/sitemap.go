package seo

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/evermore-weddings/evermore/internal/models"
)

// SitemapEntry is one URL in the sitemap.
type SitemapEntry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

// staticPages is the fixed route set that is always present in the
// sitemap regardless of content-store availability.
var staticPages = []struct {
	path      string
	frequency string
	priority  float64
}{
	{"", "weekly", 1.0},
	{"about", "monthly", 0.8},
	{"services", "monthly", 0.8},
	{"portfolio", "weekly", 0.9},
	{"blog", "daily", 0.9},
	{"venues", "monthly", 0.7},
	{"vendors", "monthly", 0.6},
	{"testimonials", "monthly", 0.7},
	{"contact", "yearly", 0.8},
}

// BuildSitemap combines the static page set with dynamic blog and
// portfolio slugs. Dynamic collections that failed to fetch arrive
// here as empty slices and are simply omitted; the static baseline is
// never reduced.
func (s *Site) BuildSitemap(posts []models.BlogPost, couples []models.Couple, now time.Time) []SitemapEntry {
	entries := make([]SitemapEntry, 0, len(staticPages)+len(posts)+len(couples))

	for _, p := range staticPages {
		entries = append(entries, SitemapEntry{
			URL:             s.URL(p.path),
			LastModified:    now,
			ChangeFrequency: p.frequency,
			Priority:        p.priority,
		})
	}
	for _, p := range posts {
		entries = append(entries, SitemapEntry{
			URL:             s.URL("blog/" + p.Slug),
			LastModified:    p.PublishedAt,
			ChangeFrequency: "monthly",
			Priority:        0.6,
		})
	}
	for _, c := range couples {
		entries = append(entries, SitemapEntry{
			URL:             s.URL("portfolio/" + c.Slug),
			LastModified:    c.WeddingDate,
			ChangeFrequency: "yearly",
			Priority:        0.5,
		})
	}
	return entries
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// EncodeSitemapXML renders entries as a sitemaps.org urlset document.
func EncodeSitemapXML(entries []SitemapEntry) ([]byte, error) {
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}
	for _, e := range entries {
		u := sitemapURL{
			Loc:        e.URL,
			ChangeFreq: e.ChangeFrequency,
			Priority:   e.Priority,
		}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
