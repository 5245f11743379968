package dto

import "arenaapp_backend/internal/listing"

// UnifiedSearchRequest is the cross-type search query. Price carries the
// rendered badge string ("$$"), not a numeric tier.
type UnifiedSearchRequest struct {
	Query string         `form:"q"`
	Types []listing.Type `form:"types" validate:"dive,is-listing-type"`
	Price string         `form:"price"`
	Page  int            `form:"page" validate:"omitempty,min=1"`
	Lang  string         `form:"lang" validate:"is-lang"`
}

type UnifiedSearchResponse struct {
	Results    []listing.Result `json:"results"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}
