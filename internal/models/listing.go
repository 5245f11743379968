package models

import (
	"time"

	"arenaapp_backend/internal/listing"

	"gorm.io/datatypes"
)

// Translation holds the per-language override of a listing's display texts.
// Spanish is stored in the base columns; en/pt live in the Translations map.
type Translation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Listing is one directory entry of any of the seven catalog types, stored
// in a single table discriminated by Type. Each type fills its own subset of
// the superset columns; the rest stays null.
type Listing struct {
	BaseModel
	Type listing.Type `gorm:"type:varchar(16);index;not null" json:"tipo"`

	Name        string `gorm:"not null" json:"nombre"`
	Description string `json:"descripcion"`

	Zone     string `gorm:"index" json:"zona"`
	City     string `json:"ciudad"`
	Province string `json:"provincia"`
	Country  string `json:"pais"`

	Category string                      `json:"categoria"`
	Cuisines datatypes.JSONSlice[string] `json:"tipos_comida"`

	PriceTier *int `json:"rango_precio"`
	Stars     *int `json:"estrellas"`

	Featured  bool   `gorm:"index" json:"destacado"`
	Published bool   `gorm:"index" json:"publicado"`
	Image     string `json:"imagen"`

	// Events
	StartDate *time.Time `json:"fecha_inicio"`
	EndDate   *time.Time `json:"fecha_fin"`
	AllDay    bool       `json:"todo_el_dia"`

	// Galleries
	OpeningDate *time.Time `json:"fecha_apertura"`

	// Shopping centers
	OutletCount *int                        `json:"cantidad_locales"`
	Amenities   datatypes.JSONSlice[string] `json:"servicios"`

	Translations datatypes.JSONType[map[string]Translation] `json:"traducciones"`
}

func (Listing) TableName() string {
	return "listings"
}

// Localized returns name and description for a language, falling back to the
// base (Spanish) columns when no override exists.
func (l *Listing) Localized(lang string) (string, string) {
	lang = listing.NormalizeLang(lang)
	if lang != listing.LangES {
		if tr, ok := l.Translations.Data()[lang]; ok {
			name, desc := l.Name, l.Description
			if tr.Name != "" {
				name = tr.Name
			}
			if tr.Description != "" {
				desc = tr.Description
			}
			return name, desc
		}
	}
	return l.Name, l.Description
}

// ToItem maps the stored row into the pipeline's item shape for a language.
func (l *Listing) ToItem(lang string) listing.Item {
	name, _ := l.Localized(lang)

	it := listing.Item{
		ID:          l.ID,
		Type:        l.Type,
		Name:        name,
		Zone:        l.Zone,
		City:        l.City,
		Province:    l.Province,
		Country:     l.Country,
		Category:    l.Category,
		Cuisines:    l.Cuisines,
		PriceTier:   l.PriceTier,
		Stars:       l.Stars,
		Featured:    l.Featured,
		StartDate:   l.StartDate,
		EndDate:     l.EndDate,
		AllDay:      l.AllDay,
		OpeningDate: l.OpeningDate,
		OutletCount: l.OutletCount,
		Amenities:   l.Amenities,
	}
	it.Image = l.Image
	it.Image = listing.ImageOrPlaceholder(it) // per-type placeholder when absent
	return it
}
