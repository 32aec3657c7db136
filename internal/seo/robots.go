package seo

import "strings"

// Robots renders the robots.txt policy: allow everything except the
// API prefix and the CMS studio, and point crawlers at the sitemap.
func (s *Site) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /studio/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + s.URL("sitemap.xml") + "\n")
	return b.String()
}
