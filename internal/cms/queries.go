package cms

import "fmt"

// Query is one named, parameterized read from the catalog. GROQ is a
// pure template; Vars lists the variable names the template expects.
// Queries are data, executed only via Client.Query.
type Query struct {
	Name string
	GROQ string
	Vars []string
}

// bindable checks that every declared variable is bound.
func (q Query) bindable(params Params) error {
	for _, v := range q.Vars {
		if _, ok := params[v]; !ok {
			return fmt.Errorf("query %s: missing param %q", q.Name, v)
		}
	}
	return nil
}

const postFields = `{
  "id": _id,
  title,
  "slug": slug.current,
  excerpt,
  "mainImage": {"ref": mainImage.asset._ref, "alt": mainImage.alt},
  publishedAt,
  readTime,
  featured,
  "categories": categories[]->{"id": _id, title, "slug": slug.current, description},
  "author": author->{"id": _id, name, bio, "image": {"ref": image.asset._ref}}
}`

const coupleFields = `{
  "id": _id,
  names,
  "slug": slug.current,
  tagline,
  venueName,
  "venueUrl": venueUrl,
  location,
  weddingDate,
  displayDate,
  "heroImage": {"ref": heroImage.asset._ref, "alt": heroImage.alt},
  "gallery": gallery[]{"ref": asset._ref, "alt": alt, "caption": caption},
  featured,
  guestCount,
  style,
  colors,
  review,
  vendors,
  highlights
}`

// The read-only query catalog. One entry per content shape a page
// needs; joins and exclusion filters are expressed declaratively.
var (
	AllPosts = Query{
		Name: "allPosts",
		GROQ: `*[_type == "post"] | order(publishedAt desc) ` + postFields,
	}

	PostBySlug = Query{
		Name: "postBySlug",
		GROQ: `*[_type == "post" && slug.current == $slug][0] {
  "id": _id,
  title,
  "slug": slug.current,
  excerpt,
  body[]{..., "image": {"ref": asset._ref, "alt": alt}},
  "mainImage": {"ref": mainImage.asset._ref, "alt": mainImage.alt},
  publishedAt,
  readTime,
  featured,
  "categories": categories[]->{"id": _id, title, "slug": slug.current, description},
  "author": author->{"id": _id, name, bio, "image": {"ref": image.asset._ref}}
}`,
		Vars: []string{"slug"},
	}

	// RelatedPosts joins on shared category references, excludes the
	// current post, newest first, capped at three.
	RelatedPosts = Query{
		Name: "relatedPosts",
		GROQ: `*[_type == "post" && slug.current != $slug && count(categories[@._ref in $categoryIds]) > 0]
  | order(publishedAt desc) [0...3] ` + postFields,
		Vars: []string{"slug", "categoryIds"},
	}

	FeaturedPosts = Query{
		Name: "featuredPosts",
		GROQ: `*[_type == "post" && featured == true] | order(publishedAt desc) [0...3] ` + postFields,
	}

	AllCategories = Query{
		Name: "allCategories",
		GROQ: `*[_type == "category"] | order(title asc) {"id": _id, title, "slug": slug.current, description}`,
	}

	SiteAssetByKey = Query{
		Name: "siteAssetByKey",
		GROQ: `*[_type == "siteAsset" && key.current == $key][0] {
  "id": _id, title, "key": key.current,
  "image": {"ref": image.asset._ref, "alt": image.alt}, category, description
}`,
		Vars: []string{"key"},
	}

	SiteAssetsByCategory = Query{
		Name: "siteAssetsByCategory",
		GROQ: `*[_type == "siteAsset" && category == $category] | order(title asc) {
  "id": _id, title, "key": key.current,
  "image": {"ref": image.asset._ref, "alt": image.alt}, category, description
}`,
		Vars: []string{"category"},
	}

	VenuesByRegion = Query{
		Name: "venuesByRegion",
		GROQ: `*[_type == "venue" && region == $region] | order(preferred desc, name asc) {
  "id": _id, name, "slug": slug.current, location, region, type, website,
  "image": {"ref": image.asset._ref, "alt": image.alt}, description,
  "lat": coordinates.lat, "lng": coordinates.lng, preferred, weddingCount, featured
}`,
		Vars: []string{"region"},
	}

	AllVenues = Query{
		Name: "allVenues",
		GROQ: `*[_type == "venue"] | order(region asc, name asc) {
  "id": _id, name, "slug": slug.current, location, region, type, website,
  "image": {"ref": image.asset._ref, "alt": image.alt}, description,
  "lat": coordinates.lat, "lng": coordinates.lng, preferred, weddingCount, featured
}`,
	}

	AllCouples = Query{
		Name: "allCouples",
		GROQ: `*[_type == "couple"] | order(weddingDate desc) ` + coupleFields,
	}

	CoupleBySlug = Query{
		Name: "coupleBySlug",
		GROQ: `*[_type == "couple" && slug.current == $slug][0] ` + coupleFields,
		Vars: []string{"slug"},
	}

	FeaturedTestimonials = Query{
		Name: "featuredTestimonials",
		GROQ: `*[_type == "testimonial" && featured == true] | order(order asc) {
  "id": _id, names, "slug": slug.current, venue, weddingDate, rating, text,
  "image": {"ref": image.asset._ref, "alt": image.alt},
  featured, source, serviceType, highlights, order
}`,
	}

	AllTestimonials = Query{
		Name: "allTestimonials",
		GROQ: `*[_type == "testimonial"] | order(order asc, weddingDate desc) {
  "id": _id, names, "slug": slug.current, venue, weddingDate, rating, text,
  "image": {"ref": image.asset._ref, "alt": image.alt},
  featured, source, serviceType, highlights, order
}`,
	}

	AllVendors = Query{
		Name: "allVendors",
		GROQ: `*[_type == "vendor"] | order(category asc, preferred desc, name asc) {
  "id": _id, name, "slug": slug.current, category, website, instagram, email, phone,
  "logo": {"ref": logo.asset._ref, "alt": logo.alt}, description, location,
  preferred, weddingCount, featured
}`,
	}
)
