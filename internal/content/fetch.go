package content

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/evermore-weddings/evermore/internal/cache"
	"github.com/evermore-weddings/evermore/internal/cms"
	"github.com/evermore-weddings/evermore/internal/logger"
	"github.com/evermore-weddings/evermore/internal/models"
	"github.com/evermore-weddings/evermore/internal/utils"
)

// ErrNotFound is the sentinel for a single-document fetch whose slug
// matched nothing. Callers map it to a not-found page outcome.
var ErrNotFound = errors.New("content: not found")

// Fetcher is the typed read layer over the content store. List
// fetches degrade to an empty slice on upstream failure so page
// assembly can proceed; single-document fetches surface ErrNotFound.
// Results are cached for the configured revalidation window.
type Fetcher struct {
	cms   cms.Querier
	cache cache.Store
	ttl   time.Duration
}

func NewFetcher(q cms.Querier, store cache.Store, ttl time.Duration) *Fetcher {
	return &Fetcher{cms: q, cache: store, ttl: ttl}
}

func (f *Fetcher) ListPosts(ctx context.Context) []models.BlogPost {
	return fetchList[models.BlogPost](ctx, f, cms.AllPosts, nil)
}

func (f *Fetcher) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return fetchOne[models.BlogPost](ctx, f, cms.PostBySlug, cms.Params{"slug": slug})
}

// RelatedPosts resolves the related-posts join for a post: same
// document type, excluding the post's own slug, at least one shared
// category, newest first, at most three. The join runs in the content
// store; if it fails the selection is recomputed locally from the
// post list so the section degrades gracefully instead of vanishing
// on a transient error.
func (f *Fetcher) RelatedPosts(ctx context.Context, post *models.BlogPost) []models.BlogPost {
	if post == nil || len(post.Categories) == 0 {
		return []models.BlogPost{}
	}

	categoryIds := make([]string, 0, len(post.Categories))
	for _, c := range post.Categories {
		categoryIds = append(categoryIds, c.ID)
	}

	var related []models.BlogPost
	err := f.run(ctx, cms.RelatedPosts, cms.Params{"slug": post.Slug, "categoryIds": categoryIds}, &related)
	if err != nil {
		logger.Get().Warn().Err(err).Str("slug", post.Slug).
			Msg("related-posts join failed, recomputing from post list")
		return Related(*post, f.ListPosts(ctx), 3)
	}
	if related == nil {
		related = []models.BlogPost{}
	}
	return related
}

func (f *Fetcher) FeaturedPosts(ctx context.Context) []models.BlogPost {
	return fetchList[models.BlogPost](ctx, f, cms.FeaturedPosts, nil)
}

func (f *Fetcher) ListCategories(ctx context.Context) []models.Category {
	return fetchList[models.Category](ctx, f, cms.AllCategories, nil)
}

func (f *Fetcher) SiteAssetByKey(ctx context.Context, key string) (*models.SiteAsset, error) {
	return fetchOne[models.SiteAsset](ctx, f, cms.SiteAssetByKey, cms.Params{"key": key})
}

func (f *Fetcher) SiteAssetsByCategory(ctx context.Context, category string) []models.SiteAsset {
	return fetchList[models.SiteAsset](ctx, f, cms.SiteAssetsByCategory, cms.Params{"category": category})
}

func (f *Fetcher) VenuesByRegion(ctx context.Context, region models.Region) []models.Venue {
	return fetchList[models.Venue](ctx, f, cms.VenuesByRegion, cms.Params{"region": string(region)})
}

func (f *Fetcher) ListVenues(ctx context.Context) []models.Venue {
	return fetchList[models.Venue](ctx, f, cms.AllVenues, nil)
}

func (f *Fetcher) ListCouples(ctx context.Context) []models.Couple {
	return fetchList[models.Couple](ctx, f, cms.AllCouples, nil)
}

func (f *Fetcher) CoupleBySlug(ctx context.Context, slug string) (*models.Couple, error) {
	return fetchOne[models.Couple](ctx, f, cms.CoupleBySlug, cms.Params{"slug": slug})
}

func (f *Fetcher) FeaturedTestimonials(ctx context.Context) []models.Testimonial {
	return fetchList[models.Testimonial](ctx, f, cms.FeaturedTestimonials, nil)
}

func (f *Fetcher) ListTestimonials(ctx context.Context) []models.Testimonial {
	return fetchList[models.Testimonial](ctx, f, cms.AllTestimonials, nil)
}

func (f *Fetcher) ListVendors(ctx context.Context) []models.Vendor {
	return fetchList[models.Vendor](ctx, f, cms.AllVendors, nil)
}

// fetchList runs a list query, swallowing failure into an empty
// slice. The page renders with degraded content rather than erroring.
func fetchList[T any](ctx context.Context, f *Fetcher, q cms.Query, params cms.Params) []T {
	var out []T
	if err := f.run(ctx, q, params, &out); err != nil {
		logger.Get().Error().Err(err).Str("query", q.Name).
			Msg("list fetch failed, serving empty result")
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// fetchOne runs a single-document query. A null result becomes
// ErrNotFound; upstream failure propagates.
func fetchOne[T any](ctx context.Context, f *Fetcher, q cms.Query, params cms.Params) (*T, error) {
	var out *T
	if err := f.run(ctx, q, params, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

// run is the cache-aside core: serve from the revalidation cache when
// fresh, otherwise query the store and cache the encoded result for
// the staleness window. Cache write failure is logged, not fatal.
func (f *Fetcher) run(ctx context.Context, q cms.Query, params cms.Params, dest any) error {
	key := cacheKey(q, params)

	if f.cache != nil {
		if raw, err := f.cache.Get(ctx, key); err == nil {
			return json.Unmarshal(raw, dest)
		}
	}

	if err := f.cms.Query(ctx, q, params, dest); err != nil {
		return err
	}

	if f.cache != nil {
		raw, err := json.Marshal(dest)
		if err == nil {
			err = f.cache.Set(ctx, key, raw, f.ttl)
		}
		if err != nil {
			logger.Get().Warn().Err(err).Str("query", q.Name).Msg("cache write failed")
		}
	}
	return nil
}

func cacheKey(q cms.Query, params cms.Params) string {
	if len(params) == 0 {
		return q.Name
	}
	// map keys marshal in sorted order, so the key is deterministic
	raw, err := json.Marshal(params)
	if err != nil {
		return q.Name
	}
	return q.Name + ":" + utils.Hash(string(raw))
}
