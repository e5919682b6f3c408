package restaurant

import (
	"fmt"

	"jewgo-server/hours"
)

// Restaurant represents a kosher restaurant listing.
type Restaurant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip_code,omitempty"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Phone   string `json:"phone_number,omitempty"`
	Website string `json:"website,omitempty"`

	KosherCategory   string `json:"kosher_category,omitempty"` // meat | dairy | pareve
	CertifyingAgency string `json:"certifying_agency,omitempty"`
	IsCholovYisroel  *bool  `json:"is_cholov_yisroel,omitempty"`
	IsPasYisroel     *bool  `json:"is_pas_yisroel,omitempty"`

	PriceRange string  `json:"price_range,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Reviews    int     `json:"reviews,omitempty"`

	ImageURL string `json:"image_url,omitempty"`

	// HoursJSON is the structured per-day form; HoursOfOperation is the loose
	// human string ("Mon 9AM-10PM, Tue Closed, ..."). Listings sourced from
	// the backend may carry either, both, or neither.
	HoursJSON        map[string]hours.DayHours `json:"hours_json,omitempty"`
	HoursOfOperation string                    `json:"hours_of_operation,omitempty"`
}

// HoursInput returns the raw hours value to feed the hours engine, preferring
// the structured form when present. Nil means hours are unknown.
func (r *Restaurant) HoursInput() interface{} {
	if len(r.HoursJSON) > 0 {
		return r.HoursJSON
	}
	if r.HoursOfOperation != "" {
		return r.HoursOfOperation
	}
	return nil
}

func (r *Restaurant) ToString() string {
	return fmt.Sprintf("Restaurant(id=%s, name=%s, category=%s, agency=%s, lat=%f, lon=%f)",
		r.ID, r.Name, r.KosherCategory, r.CertifyingAgency, r.Latitude, r.Longitude)
}
