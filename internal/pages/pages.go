package pages

import (
	"context"
	"time"

	"github.com/evermore-weddings/evermore/internal/cms"
	"github.com/evermore-weddings/evermore/internal/content"
	"github.com/evermore-weddings/evermore/internal/logger"
	"github.com/evermore-weddings/evermore/internal/models"
	"github.com/evermore-weddings/evermore/internal/seo"
)

// Standard image transform sizes.
const (
	heroWidth  = 1600
	heroHeight = 900
	cardWidth  = 800
	cardHeight = 600
	thumbWidth = 400
)

// Page is the assembled payload for one route: metadata, structured
// data, the declared staleness window, and resolved content.
type Page struct {
	Meta       seo.Meta     `json:"meta"`
	JSONLD     []seo.Object `json:"jsonld"`
	Revalidate int          `json:"revalidate"`
	Data       any          `json:"data"`
}

// Assembler builds page payloads route by route. Parametric routes
// compute metadata from the fetched record, not statically.
type Assembler struct {
	fetch      *content.Fetcher
	site       *seo.Site
	images     *cms.ImageResolver
	revalidate time.Duration
}

func NewAssembler(fetch *content.Fetcher, site *seo.Site, images *cms.ImageResolver, revalidate time.Duration) *Assembler {
	return &Assembler{fetch: fetch, site: site, images: images, revalidate: revalidate}
}

func (a *Assembler) page(meta seo.Meta, data any, ld ...seo.Object) *Page {
	// the canonical organization block leads every page's structured
	// data; route blocks reference it by id
	blocks := append([]seo.Object{a.site.LocalBusiness()}, ld...)
	return &Page{
		Meta:       meta,
		JSONLD:     blocks,
		Revalidate: int(a.revalidate.Seconds()),
		Data:       data,
	}
}

// Home assembles the home page: hero asset, featured testimonials,
// featured posts.
func (a *Assembler) Home(ctx context.Context) *Page {
	testimonials := a.fetch.FeaturedTestimonials(ctx)
	posts := a.fetch.FeaturedPosts(ctx)
	hero := a.siteAsset(ctx, "home-hero")

	for i := range testimonials {
		a.images.Hydrate(&testimonials[i].Image, thumbWidth, thumbWidth)
	}
	for i := range posts {
		a.images.Hydrate(&posts[i].MainImage, cardWidth, cardHeight)
	}

	meta := a.site.Page("", a.site.Description, "/", nil)
	return a.page(meta, map[string]any{
		"hero":          hero,
		"testimonials":  testimonials,
		"featuredPosts": posts,
	})
}

// About assembles the about page with its team imagery.
func (a *Assembler) About(ctx context.Context) *Page {
	team := a.fetch.SiteAssetsByCategory(ctx, "team")
	for i := range team {
		a.images.Hydrate(&team[i].Image, cardWidth, cardHeight)
	}

	description := "Meet the planners behind " + a.site.Name + "."
	meta := a.site.Page("About Us", description, "/about", nil)
	return a.page(meta, map[string]any{"team": team},
		a.site.AboutPage("about", description))
}

// Blog assembles the blog index.
func (a *Assembler) Blog(ctx context.Context) *Page {
	posts := a.fetch.ListPosts(ctx)
	categories := a.fetch.ListCategories(ctx)
	for i := range posts {
		a.images.Hydrate(&posts[i].MainImage, cardWidth, cardHeight)
	}

	meta := a.site.Page("Journal",
		"Wedding planning advice, real weddings, and inspiration.", "/blog",
		[]string{"wedding blog", "wedding inspiration"})
	return a.page(meta, map[string]any{
		"posts":      posts,
		"categories": categories,
	}, a.site.Blog("blog", posts))
}

// BlogPost assembles one post page. Returns content.ErrNotFound for
// an unknown slug; the caller renders the not-found outcome.
func (a *Assembler) BlogPost(ctx context.Context, slug string) (*Page, error) {
	post, err := a.fetch.PostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	a.images.Hydrate(&post.MainImage, heroWidth, heroHeight)
	for i := range post.Body {
		a.images.Hydrate(post.Body[i].Image, cardWidth, 0)
	}
	if post.Author != nil {
		a.images.Hydrate(&post.Author.Image, thumbWidth, thumbWidth)
	}

	related := a.fetch.RelatedPosts(ctx, post)
	for i := range related {
		a.images.Hydrate(&related[i].MainImage, cardWidth, cardHeight)
	}

	keywords := make([]string, 0, len(post.Categories))
	for _, c := range post.Categories {
		keywords = append(keywords, c.Title)
	}
	meta := a.site.Page(post.Title, post.Excerpt, "/blog/"+post.Slug, keywords, post.MainImage.URL)
	return a.page(meta, map[string]any{
		"post":    post,
		"related": related,
	}, a.site.Article(*post, "blog/"+post.Slug)), nil
}

// Portfolio assembles the real-weddings index.
func (a *Assembler) Portfolio(ctx context.Context) *Page {
	couples := a.fetch.ListCouples(ctx)
	urls := make([]string, 0, len(couples))
	for i := range couples {
		a.images.Hydrate(&couples[i].HeroImage, cardWidth, cardHeight)
		urls = append(urls, a.site.URL("portfolio/"+couples[i].Slug))
	}

	description := "Real weddings planned by " + a.site.Name + "."
	meta := a.site.Page("Real Weddings", description, "/portfolio",
		[]string{"real weddings", "wedding portfolio"})
	return a.page(meta, map[string]any{"couples": couples},
		a.site.CollectionPage("Real Weddings", description, "portfolio", urls))
}

// Couple assembles one portfolio entry.
func (a *Assembler) Couple(ctx context.Context, slug string) (*Page, error) {
	couple, err := a.fetch.CoupleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	a.images.Hydrate(&couple.HeroImage, heroWidth, heroHeight)
	a.images.HydrateAll(couple.Gallery, cardWidth, cardHeight)

	description := couple.Tagline
	if description == "" {
		description = couple.Names + " at " + couple.VenueName
	}
	meta := a.site.Page(couple.Names, description, "/portfolio/"+couple.Slug,
		nil, couple.HeroImage.URL)

	blocks := []seo.Object{}
	if couple.Review != nil {
		blocks = append(blocks, a.site.Review(*couple, "portfolio/"+couple.Slug))
	}
	return a.page(meta, map[string]any{"couple": couple}, blocks...), nil
}

// regionLabels maps region slugs to display names for the location
// landing pages.
var regionLabels = map[models.Region]string{
	models.RegionSanDiego:     "San Diego",
	models.RegionNorthCounty:  "North County San Diego",
	models.RegionTemecula:     "Temecula Valley",
	models.RegionOrangeCounty: "Orange County",
}

// regionOrder fixes the display order of the directory's region groups.
var regionOrder = []models.Region{
	models.RegionSanDiego,
	models.RegionNorthCounty,
	models.RegionTemecula,
	models.RegionOrangeCounty,
}

// regionGroup is one region's section of the venue directory.
type regionGroup struct {
	Region models.Region  `json:"region"`
	Label  string         `json:"label"`
	Venues []models.Venue `json:"venues"`
}

// VenueDirectory assembles the full venue directory, grouped by
// region in a fixed order. Regions the CMS adds beyond the known set
// are appended after it rather than dropped.
func (a *Assembler) VenueDirectory(ctx context.Context) *Page {
	venues := a.fetch.ListVenues(ctx)
	for i := range venues {
		a.images.Hydrate(&venues[i].Image, cardWidth, cardHeight)
	}

	byRegion := make(map[models.Region][]models.Venue)
	for _, v := range venues {
		byRegion[v.Region] = append(byRegion[v.Region], v)
	}

	groups := make([]regionGroup, 0, len(byRegion))
	urls := make([]string, 0, len(byRegion))
	appendGroup := func(region models.Region) {
		label, ok := regionLabels[region]
		if !ok {
			label = string(region)
		}
		groups = append(groups, regionGroup{Region: region, Label: label, Venues: byRegion[region]})
		urls = append(urls, a.site.URL("venues/"+string(region)))
		delete(byRegion, region)
	}
	for _, region := range regionOrder {
		if _, ok := byRegion[region]; ok {
			appendGroup(region)
		}
	}
	for _, v := range venues {
		if _, ok := byRegion[v.Region]; ok {
			appendGroup(v.Region)
		}
	}

	description := "Wedding venues we plan at across Southern California."
	meta := a.site.Page("Wedding Venues", description, "/venues",
		[]string{"wedding venues", "southern california venues"})
	return a.page(meta, map[string]any{"regions": groups},
		a.site.CollectionPage("Wedding Venues", description, "venues", urls))
}

// Venues assembles a location landing page for one region.
func (a *Assembler) Venues(ctx context.Context, region models.Region) *Page {
	venues := a.fetch.VenuesByRegion(ctx, region)
	for i := range venues {
		a.images.Hydrate(&venues[i].Image, cardWidth, cardHeight)
	}

	label, ok := regionLabels[region]
	if !ok {
		label = string(region)
	}
	path := "/venues/" + string(region)
	description := "Wedding venues we plan at across " + label + "."
	meta := a.site.Page(label+" Wedding Venues", description, path,
		[]string{label + " weddings", label + " wedding planner"})
	return a.page(meta, map[string]any{
		"region": region,
		"label":  label,
		"venues": venues,
	}, a.site.ProfessionalService(label, "venues/"+string(region), venues))
}

// Vendors assembles the preferred-vendor directory.
func (a *Assembler) Vendors(ctx context.Context) *Page {
	vendors := a.fetch.ListVendors(ctx)
	for i := range vendors {
		a.images.Hydrate(&vendors[i].Logo, thumbWidth, 0)
	}

	description := "Photographers, florists, and makers we trust with our couples."
	meta := a.site.Page("Preferred Vendors", description, "/vendors", nil)
	return a.page(meta, map[string]any{"vendors": vendors},
		a.site.CollectionPage("Preferred Vendors", description, "vendors", nil))
}

// Testimonials assembles the reviews page.
func (a *Assembler) Testimonials(ctx context.Context) *Page {
	testimonials := a.fetch.ListTestimonials(ctx)
	for i := range testimonials {
		a.images.Hydrate(&testimonials[i].Image, thumbWidth, thumbWidth)
	}

	description := "Kind words from Evermore couples."
	meta := a.site.Page("Testimonials", description, "/testimonials", nil)
	return a.page(meta, map[string]any{"testimonials": testimonials},
		a.site.CollectionPage("Testimonials", description, "testimonials", nil))
}

// NotFound builds the payload for an absent record.
func (a *Assembler) NotFound(kind string) *Page {
	return a.page(a.site.NotFound(kind), nil)
}

// Sitemap renders the XML sitemap. Failed dynamic fetches already
// degraded to empty slices, leaving the static baseline intact.
func (a *Assembler) Sitemap(ctx context.Context) ([]byte, error) {
	posts := a.fetch.ListPosts(ctx)
	couples := a.fetch.ListCouples(ctx)
	entries := a.site.BuildSitemap(posts, couples, time.Now().UTC())
	return seo.EncodeSitemapXML(entries)
}

// Robots renders the robots.txt policy.
func (a *Assembler) Robots() string {
	return a.site.Robots()
}

// siteAsset looks up a keyed asset, hydrated. Absence only reduces
// page richness, so it degrades to nil.
func (a *Assembler) siteAsset(ctx context.Context, key string) *models.SiteAsset {
	asset, err := a.fetch.SiteAssetByKey(ctx, key)
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", key).Msg("site asset unavailable")
		return nil
	}
	a.images.Hydrate(&asset.Image, heroWidth, heroHeight)
	return asset
}
