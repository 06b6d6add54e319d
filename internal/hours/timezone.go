package hours

import "time"

// zoneBox maps a lat/lng bounding box to an IANA zone name. Boxes are checked
// in order and the first match wins, so finer boxes (Arizona, Hawaii) must come
// before the coarser ones that contain them. This is a heuristic good enough
// for practice locations, not an authoritative point-in-polygon lookup.
type zoneBox struct {
	minLat, maxLat float64
	minLng, maxLng float64
	zone           string
}

var zoneBoxes = []zoneBox{
	// United States, finest first
	{18, 23, -161, -154, "Pacific/Honolulu"},
	{51, 72, -170, -129, "America/Anchorage"},
	{31, 37, -115, -109, "America/Phoenix"}, // Arizona, no DST
	{32, 49, -125, -114, "America/Los_Angeles"},
	{31, 49, -115, -102, "America/Denver"},
	{25, 49, -102, -87, "America/Chicago"},
	{24, 49, -87, -67, "America/New_York"},

	// Canada
	{48, 60, -139, -114, "America/Vancouver"},
	{49, 60, -114, -95, "America/Edmonton"},
	{42, 62, -95, -52, "America/Toronto"},

	// Mexico
	{14, 32, -118, -86, "America/Mexico_City"},

	// Europe
	{49, 61, -11, 2, "Europe/London"},
	{36, 55, -10, 20, "Europe/Paris"},
	{54, 71, 20, 32, "Europe/Helsinki"},
	{41, 60, 27, 45, "Europe/Moscow"},

	// Asia
	{22, 27, 51, 57, "Asia/Dubai"},
	{6, 36, 68, 90, "Asia/Kolkata"},
	{18, 54, 90, 125, "Asia/Shanghai"},
	{24, 46, 125, 146, "Asia/Tokyo"},

	// Oceania
	{-36, -13, 112, 130, "Australia/Perth"},
	{-44, -10, 140, 154, "Australia/Sydney"},
	{-48, -34, 165, 179, "Pacific/Auckland"},

	// Africa
	{22, 32, 24, 37, "Africa/Cairo"},
	{4, 14, 2, 15, "Africa/Lagos"},
	{-35, -22, 16, 33, "Africa/Johannesburg"},

	// South America
	{-4, 13, -79, -66, "America/Bogota"},
	{-34, -5, -58, -34, "America/Sao_Paulo"},
	{-55, -21, -73, -53, "America/Argentina/Buenos_Aires"},
}

// ZoneForCoords derives an IANA zone name from coordinates, falling back to
// UTC when no bounding box matches.
func ZoneForCoords(lat, lng float64) string {
	for _, b := range zoneBoxes {
		if lat >= b.minLat && lat <= b.maxLat && lng >= b.minLng && lng <= b.maxLng {
			return b.zone
		}
	}
	return "UTC"
}

// LocationForCoords loads the derived zone, falling back to UTC when the zone
// database does not know it.
func LocationForCoords(lat, lng float64) *time.Location {
	loc, err := time.LoadLocation(ZoneForCoords(lat, lng))
	if err != nil {
		return time.UTC
	}
	return loc
}
