package dto

import (
	"time"

	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/models"
)

// ListingRequest is the admin create/update payload. Field names follow the
// admin UI's wire format.
type ListingRequest struct {
	Name        string `json:"nombre" validate:"required,max=200"`
	Description string `json:"descripcion" validate:"max=5000"`

	Zone     string `json:"zona" validate:"max=100"`
	City     string `json:"ciudad" validate:"max=100"`
	Province string `json:"provincia" validate:"max=100"`
	Country  string `json:"pais" validate:"max=100"`

	Category string   `json:"categoria" validate:"max=100"`
	Cuisines []string `json:"tipos_comida" validate:"max=20,dive,max=100"`

	PriceTier *int `json:"rango_precio" validate:"omitempty,min=1,max=5"`
	Stars     *int `json:"estrellas" validate:"omitempty,min=1,max=5"`

	Featured  bool   `json:"destacado"`
	Published bool   `json:"publicado"`
	Image     string `json:"imagen" validate:"max=500"`

	StartDate *time.Time `json:"fecha_inicio"`
	EndDate   *time.Time `json:"fecha_fin"`
	AllDay    bool       `json:"todo_el_dia"`

	OpeningDate *time.Time `json:"fecha_apertura"`

	OutletCount *int     `json:"cantidad_locales" validate:"omitempty,min=0"`
	Amenities   []string `json:"servicios" validate:"max=30,dive,max=100"`

	Translations map[string]models.Translation `json:"traducciones"`
}

// BrowseRequest is the public browse query of one catalog type.
type BrowseRequest struct {
	Search   string   `form:"search"`
	Zone     string   `form:"zone"`
	Category string   `form:"category"`
	Price    *int     `form:"price" validate:"omitempty,min=1,max=5"`
	Stars    *int     `form:"stars" validate:"omitempty,min=1,max=5"`
	Cuisines []string `form:"cuisine"`
	Page     int      `form:"page" validate:"omitempty,min=1"`
	Lang     string   `form:"lang" validate:"is-lang"`
}

// BrowsePage is one rendered browse page plus the dropdown option sets
// derived from the full source array.
type BrowsePage struct {
	Items      []listing.Item  `json:"items"`
	Options    listing.Options `json:"options"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// AdminPage is the admin table envelope with server-side pagination.
type AdminPage struct {
	Data       []models.Listing `json:"data"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Total      int64            `json:"total"`
}
