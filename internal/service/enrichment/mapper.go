package enrichment

import (
	"strings"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/places"
)

const (
	maxTags   = 3
	maxPhotos = 5
)

// cosmeticMarkers in the category tags or name mark a cosmetic practice;
// everything else is a general dentist.
var cosmeticTypeMarkers = map[string]bool{
	"beauty_salon": true,
	"spa":          true,
}

var tagByType = map[string]string{
	"dentist":       "General Dentistry",
	"dental_clinic": "General Dentistry",
	"doctor":        "Dental Care",
	"health":        "Oral Health",
}

var tagByNameMarker = []struct {
	marker string
	tag    string
}{
	{"orthodont", "Orthodontics"},
	{"implant", "Implants"},
	{"pediatric", "Pediatric Dentistry"},
	{"cosmetic", "Cosmetic Dentistry"},
	{"whitening", "Teeth Whitening"},
}

func inferType(p *places.Place) model.ProviderType {
	for _, t := range p.Types {
		if cosmeticTypeMarkers[t] {
			return model.ProviderTypeCosmetic
		}
	}
	if strings.Contains(strings.ToLower(p.Name), "cosmetic") {
		return model.ProviderTypeCosmetic
	}
	return model.ProviderTypeDentist
}

// deriveTags builds up to maxTags specialty tags from category flags and name
// markers, never returning an empty list.
func deriveTags(p *places.Place) []string {
	seen := map[string]bool{}
	tags := []string{}

	add := func(tag string) {
		if len(tags) < maxTags && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	for _, t := range p.Types {
		if tag, ok := tagByType[t]; ok {
			add(tag)
		}
	}

	name := strings.ToLower(p.Name)
	for _, m := range tagByNameMarker {
		if strings.Contains(name, m.marker) {
			add(m.tag)
		}
	}

	if len(tags) == 0 {
		tags = append(tags, "General Dentistry")
	}
	return tags
}

// mapPlace converts the external place schema into the internal provider
// shape. photoURL converts a photo reference into a fetchable URL.
func mapPlace(p *places.Place, photoURL func(string) string) *model.Provider {
	provider := &model.Provider{
		Name:           p.Name,
		Type:           inferType(p),
		Address:        p.FormattedAddress,
		Lat:            p.Geometry.Location.Lat,
		Lng:            p.Geometry.Location.Lng,
		Tags:           deriveTags(p),
		Rating:         p.Rating,
		ReviewCount:    p.UserRatingsTotal,
		BusinessStatus: p.BusinessStatus,
	}

	if p.PlaceID != "" {
		placeID := p.PlaceID
		provider.PlaceID = &placeID
	}
	if provider.BusinessStatus == "" {
		provider.BusinessStatus = model.BusinessStatusOperational
	}

	phone := p.InternationalPhoneNumber
	if phone == "" {
		phone = p.FormattedPhoneNumber
	}
	if phone != "" {
		provider.PhoneNumber = &phone
	}

	if p.Website != "" {
		website := p.Website
		provider.Website = &website
	}

	photos := []string{}
	for _, photo := range p.Photos {
		if len(photos) >= maxPhotos {
			break
		}
		if photo.PhotoReference != "" {
			photos = append(photos, photoURL(photo.PhotoReference))
		}
	}
	provider.Photos = photos

	if p.OpeningHours != nil {
		oh := model.OpeningHours{WeekdayText: p.OpeningHours.WeekdayText}
		for _, period := range p.OpeningHours.Periods {
			oh.Periods = append(oh.Periods, model.Period{
				Open:  model.PeriodPoint{Day: period.Open.Day, Time: period.Open.Time},
				Close: model.PeriodPoint{Day: period.Close.Day, Time: period.Close.Time},
			})
		}
		provider.OpeningHours = oh
	}

	return provider
}
