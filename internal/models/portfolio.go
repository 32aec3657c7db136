package models

import "time"

// Region is the service area a venue belongs to
type Region string

const (
	RegionSanDiego     Region = "san-diego"
	RegionNorthCounty  Region = "north-county"
	RegionTemecula     Region = "temecula"
	RegionOrangeCounty Region = "orange-county"
)

// VenueType classifies a wedding venue
type VenueType string

const (
	VenueTypeResort   VenueType = "resort"
	VenueTypeEstate   VenueType = "estate"
	VenueTypeGarden   VenueType = "garden"
	VenueTypeBeach    VenueType = "beach"
	VenueTypeWinery   VenueType = "winery"
	VenueTypeBallroom VenueType = "ballroom"
)

// VendorCategory classifies a directory vendor
type VendorCategory string

const (
	VendorPhotography VendorCategory = "photography"
	VendorFlorals     VendorCategory = "florals"
	VendorCatering    VendorCategory = "catering"
	VendorMusic       VendorCategory = "music"
	VendorBeauty      VendorCategory = "beauty"
	VendorRentals     VendorCategory = "rentals"
	VendorStationery  VendorCategory = "stationery"
)

// Review is a couple's rating of their wedding. Rating is bounded 1-5.
type Review struct {
	Text   string `json:"text,omitempty"`
	Rating int    `json:"rating,omitempty"`
}

// Couple is a portfolio entry for a past wedding. Slug drives the
// per-couple route.
type Couple struct {
	ID          string    `json:"id"`
	Names       string    `json:"names"`
	Slug        string    `json:"slug"`
	Tagline     string    `json:"tagline,omitempty"`
	VenueName   string    `json:"venueName,omitempty"`
	VenueURL    string    `json:"venueUrl,omitempty"`
	Location    string    `json:"location,omitempty"`
	WeddingDate time.Time `json:"weddingDate"`
	DisplayDate string    `json:"displayDate,omitempty"`
	HeroImage   Image     `json:"heroImage,omitempty"`
	Gallery     []Image   `json:"gallery,omitempty"`
	Featured    bool      `json:"featured,omitempty"`
	GuestCount  int       `json:"guestCount,omitempty"`
	Style       string    `json:"style,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	Review      *Review   `json:"review,omitempty"`
	Vendors     []string  `json:"vendors,omitempty"`
	Highlights  []string  `json:"highlights,omitempty"`
}

// Venue is a wedding venue grouped by region for the location
// landing pages.
type Venue struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Location     string    `json:"location,omitempty"`
	Region       Region    `json:"region"`
	Type         VenueType `json:"type,omitempty"`
	Website      string    `json:"website,omitempty"`
	Image        Image     `json:"image,omitempty"`
	Description  string    `json:"description,omitempty"`
	Lat          float64   `json:"lat,omitempty"`
	Lng          float64   `json:"lng,omitempty"`
	Preferred    bool      `json:"preferred,omitempty"`
	WeddingCount int       `json:"weddingCount,omitempty"`
	Featured     bool      `json:"featured,omitempty"`
}

// Vendor is a preferred-vendor directory entry
type Vendor struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Category     VendorCategory `json:"category"`
	Website      string         `json:"website,omitempty"`
	Instagram    string         `json:"instagram,omitempty"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Logo         Image          `json:"logo,omitempty"`
	Description  string         `json:"description,omitempty"`
	Location     string         `json:"location,omitempty"`
	Preferred    bool           `json:"preferred,omitempty"`
	WeddingCount int            `json:"weddingCount,omitempty"`
	Featured     bool           `json:"featured,omitempty"`
}

// TestimonialSource identifies where a review was left
type TestimonialSource string

const (
	SourceGoogle      TestimonialSource = "google"
	SourceYelp        TestimonialSource = "yelp"
	SourceTheKnot     TestimonialSource = "theknot"
	SourceWeddingWire TestimonialSource = "weddingwire"
	SourceDirect      TestimonialSource = "direct"
)

// Testimonial is a client review. Rating is bounded 1-5; the featured
// subset is shown on the home page ordered by Order.
type Testimonial struct {
	ID          string            `json:"id"`
	Names       string            `json:"names"`
	Slug        string            `json:"slug"`
	Venue       string            `json:"venue,omitempty"`
	WeddingDate time.Time         `json:"weddingDate,omitempty"`
	Rating      int               `json:"rating"`
	Text        string            `json:"text"`
	Image       Image             `json:"image,omitempty"`
	Featured    bool              `json:"featured,omitempty"`
	Source      TestimonialSource `json:"source,omitempty"`
	ServiceType string            `json:"serviceType,omitempty"`
	Highlights  []string          `json:"highlights,omitempty"`
	Order       int               `json:"order,omitempty"`
}
