package models

import "time"

// Image is an opaque CMS asset reference. The raw reference is never
// dereferenced directly; URLs are derived by the image resolver and
// stored in URL for the presentation layer.
type Image struct {
	Ref     string `json:"ref,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Category groups blog posts by topic
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Author is a blog-post byline
type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image Image  `json:"image,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// PortableSpan is a run of text inside a rich-text block
type PortableSpan struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// PortableBlock is one block of the CMS rich-text body. Blocks are
// rendered by a fixed set of style/mark handlers on the client.
type PortableBlock struct {
	Type     string         `json:"_type"`
	Style    string         `json:"style,omitempty"`
	ListItem string         `json:"listItem,omitempty"`
	Children []PortableSpan `json:"children,omitempty"`
	Image    *Image         `json:"image,omitempty"`
}

// BlogPost is a published article. Slug is unique within the dataset.
type BlogPost struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Excerpt     string          `json:"excerpt,omitempty"`
	Body        []PortableBlock `json:"body,omitempty"`
	MainImage   Image           `json:"mainImage,omitempty"`
	PublishedAt time.Time       `json:"publishedAt"`
	ReadTime    int             `json:"readTime,omitempty"`
	Featured    bool            `json:"featured,omitempty"`
	Categories  []Category      `json:"categories,omitempty"`
	Author      *Author         `json:"author,omitempty"`
}

// SiteAsset is a generic keyed image used by fixed page sections.
// Key is a unique slug looked up by the page assembler.
type SiteAsset struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Key         string `json:"key"`
	Image       Image  `json:"image"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}
