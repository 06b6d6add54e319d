package model

// Location is a ZIP-code row used for locality autocomplete.
type Location struct {
	Base
	City    string  `db:"city" json:"city"`
	State   string  `db:"state" json:"state"`
	ZipCode string  `db:"zip_code" json:"zip_code"`
	Lat     float64 `db:"lat" json:"lat"`
	Lng     float64 `db:"lng" json:"lng"`
}

// LocationSuggestion is one autocomplete result, either from the locations
// table or from the places autocomplete fallback.
type LocationSuggestion struct {
	Description string  `json:"description"`
	ZipCode     string  `json:"zip_code,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
	Source      string  `json:"source"`
}
