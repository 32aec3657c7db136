package seo

import (
	"time"

	"github.com/evermore-weddings/evermore/internal/models"
)

// Object is one schema.org JSON-LD block.
type Object map[string]any

const schemaContext = "https://schema.org"

// orgID is the stable identifier for the business. Every page
// references the organization by this id instead of restating its
// fields, so aggregate-rating declarations never conflict across
// pages.
func (s *Site) orgID() string {
	return s.BaseURL + "/#organization"
}

// OrganizationRef is the by-id reference used from other blocks.
func (s *Site) OrganizationRef() Object {
	return Object{"@id": s.orgID()}
}

// LocalBusiness is the single canonical organization block. Emitted
// once per page; all other blocks point at it by @id.
func (s *Site) LocalBusiness() Object {
	obj := Object{
		"@context":    schemaContext,
		"@type":       "LocalBusiness",
		"@id":         s.orgID(),
		"name":        s.Name,
		"url":         s.BaseURL,
		"description": s.Description,
		"image":       s.DefaultImage,
		"telephone":   s.Telephone,
		"email":       s.Email,
		"priceRange":  s.PriceRange,
		"address": Object{
			"@type":           "PostalAddress",
			"addressLocality": s.Locality,
			"addressRegion":   s.Region,
			"addressCountry":  s.Country,
		},
	}
	if s.ReviewCount > 0 {
		obj["aggregateRating"] = Object{
			"@type":       "AggregateRating",
			"ratingValue": s.RatingValue,
			"reviewCount": s.ReviewCount,
			"bestRating":  5,
		}
	}
	return obj
}

// ProfessionalService describes a location landing page, with the
// region's venues as an offer catalog.
func (s *Site) ProfessionalService(region string, path string, venues []models.Venue) Object {
	offers := make([]Object, 0, len(venues))
	for _, v := range venues {
		offers = append(offers, Object{
			"@type": "Offer",
			"itemOffered": Object{
				"@type": "Service",
				"name":  "Wedding planning at " + v.Name,
			},
		})
	}
	return Object{
		"@context":    schemaContext,
		"@type":       "ProfessionalService",
		"name":        s.Name + " — " + region,
		"url":         s.URL(path),
		"description": "Full-service wedding planning in " + region + ".",
		"parentOrganization": s.OrganizationRef(),
		"areaServed":  region,
		"hasOfferCatalog": Object{
			"@type":           "OfferCatalog",
			"name":            region + " wedding venues",
			"itemListElement": offers,
		},
	}
}

// Article describes a blog post.
func (s *Site) Article(post models.BlogPost, path string) Object {
	obj := Object{
		"@context":      schemaContext,
		"@type":         "Article",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"url":           s.URL(path),
		"datePublished": post.PublishedAt.Format(time.RFC3339),
		"image":         post.MainImage.URL,
		"publisher":     s.OrganizationRef(),
		"mainEntityOfPage": Object{
			"@type": "WebPage",
			"@id":   s.URL(path),
		},
	}
	if post.Author != nil {
		obj["author"] = Object{
			"@type": "Person",
			"name":  post.Author.Name,
		}
	}
	return obj
}

// Review describes a couple's review of the business. itemReviewed
// points at the canonical organization by id.
func (s *Site) Review(c models.Couple, path string) Object {
	obj := Object{
		"@context":     schemaContext,
		"@type":        "Review",
		"name":         c.Names + " — " + c.VenueName,
		"url":          s.URL(path),
		"reviewBody":   "",
		"itemReviewed": s.OrganizationRef(),
		"author": Object{
			"@type": "Person",
			"name":  c.Names,
		},
	}
	if c.Review != nil {
		obj["reviewBody"] = c.Review.Text
		obj["reviewRating"] = Object{
			"@type":       "Rating",
			"ratingValue": c.Review.Rating,
			"bestRating":  5,
		}
	}
	return obj
}

// Blog describes the blog index.
func (s *Site) Blog(path string, posts []models.BlogPost) Object {
	entries := make([]Object, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, Object{
			"@type":         "BlogPosting",
			"headline":      p.Title,
			"url":           s.URL(path + "/" + p.Slug),
			"datePublished": p.PublishedAt.Format(time.RFC3339),
		})
	}
	return Object{
		"@context":    schemaContext,
		"@type":       "Blog",
		"name":        s.Name + " Journal",
		"url":         s.URL(path),
		"description": "Wedding planning advice, real weddings, and inspiration.",
		"publisher":   s.OrganizationRef(),
		"blogPost":    entries,
	}
}

// CollectionPage describes an index page such as the portfolio.
func (s *Site) CollectionPage(name, description, path string, itemURLs []string) Object {
	items := make([]Object, 0, len(itemURLs))
	for i, u := range itemURLs {
		items = append(items, Object{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      u,
		})
	}
	return Object{
		"@context":    schemaContext,
		"@type":       "CollectionPage",
		"name":        name,
		"url":         s.URL(path),
		"description": description,
		"publisher":   s.OrganizationRef(),
		"mainEntity": Object{
			"@type":           "ItemList",
			"itemListElement": items,
		},
	}
}

// AboutPage describes the about route.
func (s *Site) AboutPage(path, description string) Object {
	return Object{
		"@context":    schemaContext,
		"@type":       "AboutPage",
		"name":        "About " + s.Name,
		"url":         s.URL(path),
		"description": description,
		"mainEntity":  s.OrganizationRef(),
	}
}
