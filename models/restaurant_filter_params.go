package models

import (
	"net/url"
	"strconv"
)

// RestaurantFilterParams mirrors the backend filter endpoint's query args.
// Zero values / nil pointers are omitted from the encoded query.
type RestaurantFilterParams struct {
	Query            string   // free-text name search
	KosherCategory   string   // "meat" | "dairy" | "pareve"
	CertifyingAgency string   // e.g. "OU", "OK", "Star-K", "CRC"
	City             string
	State            string
	OpenNow          *bool    // resolved against the hours engine
	Lat              *float64 // must be paired with Lng & Radius
	Lng              *float64
	Radius           *float64 // kilometers
	RatingMin        *float64
	PriceMax         *int     // 1..4
	Limit            *int
	Offset           *int
}

// ToURLValues encodes the params as the backend expects them.
func (p RestaurantFilterParams) ToURLValues() url.Values {
	q := url.Values{}

	if p.Query != "" {
		q.Set("query", p.Query)
	}
	if p.KosherCategory != "" {
		q.Set("kosher_category", p.KosherCategory)
	}
	if p.CertifyingAgency != "" {
		q.Set("certifying_agency", p.CertifyingAgency)
	}
	if p.City != "" {
		q.Set("city", p.City)
	}
	if p.State != "" {
		q.Set("state", p.State)
	}
	if p.OpenNow != nil {
		q.Set("open_now", btoa(*p.OpenNow))
	}
	if p.Lat != nil {
		q.Set("lat", ftoa(*p.Lat))
	}
	if p.Lng != nil {
		q.Set("lng", ftoa(*p.Lng))
	}
	if p.Radius != nil {
		q.Set("radius", ftoa(*p.Radius))
	}
	if p.RatingMin != nil {
		q.Set("rating_min", ftoa(*p.RatingMin))
	}
	if p.PriceMax != nil {
		q.Set("price_max", itoa(*p.PriceMax))
	}
	if p.Limit != nil {
		q.Set("limit", itoa(*p.Limit))
	}
	if p.Offset != nil {
		q.Set("offset", itoa(*p.Offset))
	}

	return q
}

// lightweight helpers (no fmt.Sprintf allocations for ints/bools)
func itoa(i int) string     { return strconv.Itoa(i) }
func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
func btoa(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
