package places

// Wire shapes for the places API. Only the fields the service reads are
// declared; everything else in the responses is ignored.

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type PeriodPoint struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

type Period struct {
	Open  PeriodPoint `json:"open"`
	Close PeriodPoint `json:"close"`
}

type OpeningHours struct {
	Periods     []Period `json:"periods,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type Place struct {
	PlaceID                  string        `json:"place_id"`
	Name                     string        `json:"name"`
	FormattedAddress         string        `json:"formatted_address"`
	FormattedPhoneNumber     string        `json:"formatted_phone_number"`
	InternationalPhoneNumber string        `json:"international_phone_number"`
	Website                  string        `json:"website"`
	Rating                   float64       `json:"rating"`
	UserRatingsTotal         int           `json:"user_ratings_total"`
	BusinessStatus           string        `json:"business_status"`
	Types                    []string      `json:"types"`
	Geometry                 Geometry      `json:"geometry"`
	Photos                   []Photo       `json:"photos"`
	OpeningHours             *OpeningHours `json:"opening_hours,omitempty"`
}

type searchResponse struct {
	Results []Place `json:"results"`
	Status  string  `json:"status"`
}

type detailsResponse struct {
	Result Place  `json:"result"`
	Status string `json:"status"`
}

type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

type autocompleteResponse struct {
	Predictions []Prediction `json:"predictions"`
	Status      string       `json:"status"`
}

type geocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

// GeocodeResult is the resolved coordinate pair for a free-text address.
type GeocodeResult struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
