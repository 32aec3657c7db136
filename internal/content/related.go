package content

import (
	"sort"

	"github.com/evermore-weddings/evermore/internal/models"
)

// Related selects candidates sharing at least one category with
// current, excluding current's own slug, ordered by publish date
// descending and capped at max. This is the local equivalent of the
// catalog's related-posts join.
func Related(current models.BlogPost, candidates []models.BlogPost, max int) []models.BlogPost {
	if max <= 0 || len(current.Categories) == 0 {
		return []models.BlogPost{}
	}

	wanted := make(map[string]struct{}, len(current.Categories))
	for _, c := range current.Categories {
		wanted[c.ID] = struct{}{}
	}

	related := make([]models.BlogPost, 0, max)
	for _, p := range candidates {
		if p.Slug == current.Slug {
			continue
		}
		if sharesCategory(p, wanted) {
			related = append(related, p)
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].PublishedAt.After(related[j].PublishedAt)
	})

	if len(related) > max {
		related = related[:max]
	}
	return related
}

func sharesCategory(p models.BlogPost, wanted map[string]struct{}) bool {
	for _, c := range p.Categories {
		if _, ok := wanted[c.ID]; ok {
			return true
		}
	}
	return false
}
