package store

import "net/url"

// Availability counts how many plan ingredients a store is known to carry.
type Availability struct {
	HaveCount  int `json:"haveCount" yaml:"haveCount"`
	TotalCount int `json:"totalCount" yaml:"totalCount"`
}

// Store is a grocery store near the query zip code.
type Store struct {
	ID                 string       `json:"id" yaml:"id"`
	Name               string       `json:"name" yaml:"name"`
	Address            string       `json:"address" yaml:"address"`
	DistanceMiles      float64      `json:"distanceMiles" yaml:"distanceMiles"`
	SupportsSNAP       bool         `json:"supportsSNAP" yaml:"supportsSNAP"`
	Availability       Availability `json:"availability" yaml:"availability"`
	MatchedIngredients []string     `json:"matchedIngredients" yaml:"matchedIngredients"`
	MissingIngredients []string     `json:"missingIngredients" yaml:"missingIngredients"`
	Latitude           *float64     `json:"lat,omitempty" yaml:"lat"`
	Longitude          *float64     `json:"lng,omitempty" yaml:"lng"`
}

// HasCoordinates reports whether the store can be placed on a map.
func (s Store) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// MapsURL returns a Google Maps search link for the store address.
func (s Store) MapsURL() string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(s.Address)
}

// Clone returns a deep copy of s.
func (s Store) Clone() Store {
	cp := s
	cp.MatchedIngredients = cloneStrings(s.MatchedIngredients)
	cp.MissingIngredients = cloneStrings(s.MissingIngredients)
	if s.Latitude != nil {
		lat := *s.Latitude
		cp.Latitude = &lat
	}
	if s.Longitude != nil {
		lng := *s.Longitude
		cp.Longitude = &lng
	}
	return cp
}

// CloneAll deep-copies a store list. A nil list stays nil.
func CloneAll(stores []Store) []Store {
	if stores == nil {
		return nil
	}
	out := make([]Store, len(stores))
	for i, s := range stores {
		out[i] = s.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
