package listing

import "time"

// Type identifies one of the seven catalog entity types. The values double
// as URL path segments, so they stay in the app's base language.
type Type string

const (
	TypeBar        Type = "bares"
	TypeRestaurant Type = "restaurantes"
	TypeCafe       Type = "cafes"
	TypeHotel      Type = "hoteles"
	TypeEvent      Type = "eventos"
	TypeGallery    Type = "galerias"
	TypeShopping   Type = "shopping"
)

// AllTypes returns every catalog type in the fixed presentation order used
// when unified-search results are concatenated.
func AllTypes() []Type {
	return []Type{
		TypeBar,
		TypeRestaurant,
		TypeCafe,
		TypeHotel,
		TypeEvent,
		TypeGallery,
		TypeShopping,
	}
}

func ValidType(t Type) bool {
	switch t {
	case TypeBar, TypeRestaurant, TypeCafe, TypeHotel, TypeEvent, TypeGallery, TypeShopping:
		return true
	}
	return false
}

// Chronological reports whether items of this type are ordered by date
// status instead of the featured flag.
func Chronological(t Type) bool {
	return t == TypeEvent || t == TypeGallery
}

// Item is the pipeline's view of one published listing. It is the superset
// shape: each type populates its own subset and the rest stays zero.
type Item struct {
	ID       string   `json:"id"`
	Type     Type     `json:"type"`
	Name     string   `json:"name"`
	Zone     string   `json:"zone,omitempty"`
	City     string   `json:"city,omitempty"`
	Province string   `json:"province,omitempty"`
	Country  string   `json:"country,omitempty"`
	Category string   `json:"category,omitempty"`
	Cuisines []string `json:"cuisines,omitempty"`

	PriceTier *int `json:"priceTier,omitempty"`
	Stars     *int `json:"stars,omitempty"`

	Featured bool   `json:"isFeatured"`
	Image    string `json:"image"`

	// Events
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	AllDay    bool       `json:"allDay,omitempty"`

	// Galleries
	OpeningDate *time.Time `json:"openingDate,omitempty"`

	// Shopping centers
	OutletCount *int     `json:"outletCount,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

// placeholders maps each type to the image substituted when a listing has
// none of its own.
var placeholders = map[Type]string{
	TypeBar:        "/img/placeholders/bar.jpg",
	TypeRestaurant: "/img/placeholders/restaurante.jpg",
	TypeCafe:       "/img/placeholders/cafe.jpg",
	TypeHotel:      "/img/placeholders/hotel.jpg",
	TypeEvent:      "/img/placeholders/evento.jpg",
	TypeGallery:    "/img/placeholders/galeria.jpg",
	TypeShopping:   "/img/placeholders/shopping.jpg",
}

// ImageOrPlaceholder returns the item image, or the per-type placeholder
// when the listing carries none.
func ImageOrPlaceholder(it Item) string {
	if it.Image != "" {
		return it.Image
	}
	return placeholders[it.Type]
}
