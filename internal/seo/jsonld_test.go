package seo

import (
	"testing"
	"time"

	"github.com/evermore-weddings/evermore/internal/models"
)

func TestOrganizationIdentity(t *testing.T) {
	s := testSite()

	org := s.LocalBusiness()
	wantID := "https://www.evermoreweddings.com/#organization"
	if org["@id"] != wantID {
		t.Errorf("organization @id = %v, want %q", org["@id"], wantID)
	}
	if org["@type"] != "LocalBusiness" {
		t.Errorf("organization @type = %v", org["@type"])
	}
	if _, ok := org["aggregateRating"]; !ok {
		t.Error("organization with reviews missing aggregateRating")
	}

	// every other block must reference the org by id, never restate it
	post := models.BlogPost{Title: "T", Slug: "t", PublishedAt: time.Now()}
	couple := models.Couple{Names: "Ava & Noah", Slug: "ava-noah", Review: &models.Review{Text: "Wonderful", Rating: 5}}
	blocks := []Object{
		s.Article(post, "blog/t"),
		s.Review(couple, "portfolio/ava-noah"),
		s.Blog("blog", nil),
		s.CollectionPage("Portfolio", "Real weddings", "portfolio", nil),
		s.AboutPage("about", "Our story"),
		s.ProfessionalService("San Diego", "venues/san-diego", nil),
	}
	for _, b := range blocks {
		ref := findOrgRef(b)
		if ref == nil {
			t.Errorf("%v block has no organization reference", b["@type"])
			continue
		}
		if ref["@id"] != wantID {
			t.Errorf("%v block references org id %v", b["@type"], ref["@id"])
		}
		if _, dup := ref["aggregateRating"]; dup {
			t.Errorf("%v block duplicates aggregate rating", b["@type"])
		}
	}
}

func findOrgRef(b Object) Object {
	for _, key := range []string{"publisher", "itemReviewed", "mainEntity", "parentOrganization"} {
		if ref, ok := b[key].(Object); ok {
			if _, hasID := ref["@id"]; hasID {
				return ref
			}
		}
	}
	return nil
}

func TestAggregateRatingOmittedWithoutReviews(t *testing.T) {
	s := testSite()
	s.ReviewCount = 0

	if _, ok := s.LocalBusiness()["aggregateRating"]; ok {
		t.Error("aggregateRating emitted with zero reviews")
	}
}

func TestArticleBlock(t *testing.T) {
	s := testSite()

	published := time.Date(2026, time.February, 8, 0, 0, 0, 0, time.UTC)
	post := models.BlogPost{
		Title:       "Choosing a Coastal Venue",
		Slug:        "choosing-a-coastal-venue",
		Excerpt:     "What to look for in an oceanfront ceremony site.",
		PublishedAt: published,
		MainImage:   models.Image{URL: "https://cdn.example.com/hero.jpg"},
		Author:      &models.Author{Name: "June Carter"},
	}

	a := s.Article(post, "blog/"+post.Slug)
	if a["headline"] != post.Title {
		t.Errorf("headline = %v", a["headline"])
	}
	if a["datePublished"] != "2026-02-08T00:00:00Z" {
		t.Errorf("datePublished = %v", a["datePublished"])
	}
	author, ok := a["author"].(Object)
	if !ok || author["name"] != "June Carter" {
		t.Errorf("author = %v", a["author"])
	}
	if a["url"] != "https://www.evermoreweddings.com/blog/choosing-a-coastal-venue" {
		t.Errorf("url = %v", a["url"])
	}
}

func TestReviewBlockRating(t *testing.T) {
	s := testSite()

	c := models.Couple{
		Names:     "Mia & James",
		VenueName: "Hotel del Coronado",
		Review:    &models.Review{Text: "Flawless from start to finish.", Rating: 5},
	}
	r := s.Review(c, "portfolio/mia-james")
	rating, ok := r["reviewRating"].(Object)
	if !ok {
		t.Fatal("review block missing reviewRating")
	}
	if rating["ratingValue"] != 5 || rating["bestRating"] != 5 {
		t.Errorf("reviewRating = %v", rating)
	}

	// no review on record: no rating claim
	r = s.Review(models.Couple{Names: "A & B"}, "portfolio/a-b")
	if _, ok := r["reviewRating"]; ok {
		t.Error("reviewRating emitted for couple without a review")
	}
}
