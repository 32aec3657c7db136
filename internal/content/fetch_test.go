package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/evermore-weddings/evermore/internal/cache"
	"github.com/evermore-weddings/evermore/internal/cms"
	"github.com/evermore-weddings/evermore/internal/models"
)

// fakeQuerier serves canned JSON per query name. Absent entries leave
// dest untouched, mimicking a null result from the store.
type fakeQuerier struct {
	results map[string]string
	err     error
	calls   int
}

func (f *fakeQuerier) Query(ctx context.Context, q cms.Query, params cms.Params, dest any) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	raw, ok := f.results[q.Name]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), dest)
}

func TestListFetchDegradesToEmpty(t *testing.T) {
	q := &fakeQuerier{err: errors.New("connection refused")}
	f := NewFetcher(q, nil, 0)

	posts := f.ListPosts(context.Background())
	if posts == nil {
		t.Fatal("ListPosts returned nil slice on upstream failure, want empty")
	}
	if len(posts) != 0 {
		t.Errorf("ListPosts returned %d posts on upstream failure", len(posts))
	}
}

func TestListFetchNullResult(t *testing.T) {
	q := &fakeQuerier{results: map[string]string{}}
	f := NewFetcher(q, nil, 0)

	if got := f.ListVenues(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("ListVenues on empty dataset = %v, want empty slice", got)
	}
}

func TestPostBySlugNotFound(t *testing.T) {
	q := &fakeQuerier{results: map[string]string{}}
	f := NewFetcher(q, nil, 0)

	_, err := f.PostBySlug(context.Background(), "no-such-post")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("PostBySlug error = %v, want ErrNotFound", err)
	}
}

func TestPostBySlugUpstreamError(t *testing.T) {
	q := &fakeQuerier{err: errors.New("timeout")}
	f := NewFetcher(q, nil, 0)

	_, err := f.PostBySlug(context.Background(), "any")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("upstream failure must not be reported as not-found, got %v", err)
	}
}

func TestPostBySlugFound(t *testing.T) {
	q := &fakeQuerier{results: map[string]string{
		"postBySlug": `{"id": "p1", "title": "Spring Palettes", "slug": "spring-palettes"}`,
	}}
	f := NewFetcher(q, nil, 0)

	post, err := f.PostBySlug(context.Background(), "spring-palettes")
	if err != nil {
		t.Fatalf("PostBySlug returned error: %v", err)
	}
	if post.Title != "Spring Palettes" {
		t.Errorf("post title = %q", post.Title)
	}
}

func TestFetchUsesRevalidationCache(t *testing.T) {
	q := &fakeQuerier{results: map[string]string{
		"allCouples": `[{"id": "c1", "names": "Ava & Noah", "slug": "ava-noah"}]`,
	}}
	f := NewFetcher(q, cache.NewMemoryStore(), time.Minute)

	first := f.ListCouples(context.Background())
	second := f.ListCouples(context.Background())

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("fetches returned %d and %d couples, want 1 and 1", len(first), len(second))
	}
	if q.calls != 1 {
		t.Errorf("store queried %d times within the staleness window, want 1", q.calls)
	}
	if second[0].Names != "Ava & Noah" {
		t.Errorf("cached couple = %+v", second[0])
	}
}

func TestRelatedPostsFallsBackOnJoinFailure(t *testing.T) {
	// the join query fails; the selection is recomputed from allPosts
	q := &fakeQuerier{results: map[string]string{
		"allPosts": `[
			{"id": "p2", "title": "B", "slug": "b", "publishedAt": "2026-03-09T00:00:00Z", "categories": [{"id": "florals"}]},
			{"id": "p3", "title": "C", "slug": "c", "publishedAt": "2026-03-15T00:00:00Z", "categories": [{"id": "venues"}]}
		]`,
	}}
	joinErr := errors.New("join unsupported")
	q2 := &relatedFailQuerier{inner: q, joinErr: joinErr}
	f := NewFetcher(q2, nil, 0)

	current := &models.BlogPost{
		Slug:       "a",
		Categories: []models.Category{{ID: "florals"}},
	}
	got := f.RelatedPosts(context.Background(), current)
	if len(got) != 1 || got[0].Slug != "b" {
		t.Errorf("fallback related = %+v, want the single shared-category post", got)
	}
}

func TestRelatedPostsUncategorized(t *testing.T) {
	q := &fakeQuerier{}
	f := NewFetcher(q, nil, 0)

	got := f.RelatedPosts(context.Background(), &models.BlogPost{Slug: "a"})
	if len(got) != 0 {
		t.Errorf("related for uncategorized post = %d entries, want 0", len(got))
	}
	if q.calls != 0 {
		t.Errorf("uncategorized post still queried the store %d times", q.calls)
	}
}

// relatedFailQuerier fails only the related-posts join.
type relatedFailQuerier struct {
	inner   *fakeQuerier
	joinErr error
}

func (r *relatedFailQuerier) Query(ctx context.Context, q cms.Query, params cms.Params, dest any) error {
	if q.Name == "relatedPosts" {
		return r.joinErr
	}
	return r.inner.Query(ctx, q, params, dest)
}
