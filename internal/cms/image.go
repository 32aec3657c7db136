package cms

import (
	"fmt"
	"strings"

	"github.com/evermore-weddings/evermore/internal/models"
)

// DefaultFallbackImage is served when an asset reference cannot be
// resolved. Resolution must degrade, never fail.
const DefaultFallbackImage = "/images/placeholder.jpg"

// ImageResolver derives CDN URLs from opaque asset references.
// References look like "image-<id>-<width>x<height>-<format>".
type ImageResolver struct {
	projectID string
	dataset   string
	fallback  string
}

func NewImageResolver(cfg Config) *ImageResolver {
	return &ImageResolver{
		projectID: cfg.ProjectID,
		dataset:   cfg.Dataset,
		fallback:  DefaultFallbackImage,
	}
}

// URL builds a transformable CDN URL for ref, requesting the given
// dimensions. Zero width or height omits that transform parameter.
// An unparseable or empty reference yields the fallback URL.
func (r *ImageResolver) URL(ref string, width, height int) string {
	id, dims, format, ok := parseRef(ref)
	if !ok {
		return r.fallback
	}

	url := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		r.projectID, r.dataset, id, dims, format)

	params := []string{"auto=format"}
	if width > 0 {
		params = append(params, fmt.Sprintf("w=%d", width))
	}
	if height > 0 {
		params = append(params, fmt.Sprintf("h=%d", height))
	}
	if width > 0 && height > 0 {
		params = append(params, "fit=crop")
	}
	return url + "?" + strings.Join(params, "&")
}

// Hydrate fills in the derived URL on an image in place.
func (r *ImageResolver) Hydrate(img *models.Image, width, height int) {
	if img == nil {
		return
	}
	img.URL = r.URL(img.Ref, width, height)
}

// HydrateAll hydrates a gallery slice in place.
func (r *ImageResolver) HydrateAll(imgs []models.Image, width, height int) {
	for i := range imgs {
		r.Hydrate(&imgs[i], width, height)
	}
}

// parseRef splits "image-abc123-1200x800-jpg" into its id, dimension
// and format segments.
func parseRef(ref string) (id, dims, format string, ok bool) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", "", "", false
	}
	id, dims, format = parts[1], parts[2], parts[3]
	if id == "" || format == "" || !strings.Contains(dims, "x") {
		return "", "", "", false
	}
	return id, dims, format, true
}
