package store

import (
	"strings"

	"purna/internal/wire"
)

const (
	// SnapIDPrefix keeps remote ids apart from fixture ids.
	SnapIDPrefix = "snap-"
	// DefaultName is used when a record has no usable store name.
	DefaultName = "SNAP Store"

	// missingAddressLine is what the store service puts in empty address columns.
	missingAddressLine = "nan"
)

// FromSnap converts a SNAP retailer record into a Store. The remote endpoint
// only lists SNAP retailers, so SupportsSNAP is always set. Ingredient
// matching is not available for these records and is left empty.
func FromSnap(r wire.SnapStore) Store {
	name := strings.TrimSpace(r.StoreName.Or(""))
	if name == "" {
		name = DefaultName
	}

	s := Store{
		ID:                 SnapIDPrefix + string(r.RecordID),
		Name:               name,
		Address:            snapAddress(r),
		DistanceMiles:      r.DistanceMiles.Or(0),
		SupportsSNAP:       true,
		MatchedIngredients: []string{},
		MissingIngredients: []string{},
	}
	if r.Latitude.Valid && r.Longitude.Valid {
		lat, lng := r.Latitude.Value, r.Longitude.Value
		s.Latitude = &lat
		s.Longitude = &lng
	}
	return s
}

// snapAddress renders "<number> <street> <line 2> <city, state, zip>" with
// empty parts left out.
func snapAddress(r wire.SnapStore) string {
	var locality []string
	for _, p := range []wire.Text{r.City, r.State, r.ZipCode} {
		if v := strings.TrimSpace(p.Or("")); v != "" {
			locality = append(locality, v)
		}
	}

	line2 := strings.TrimSpace(r.AdditionalAddress.Or(""))
	if line2 == missingAddressLine {
		line2 = ""
	}

	var parts []string
	for _, p := range []string{
		strings.TrimSpace(r.StreetNumber.Or("")),
		strings.TrimSpace(r.StreetName.Or("")),
		line2,
		strings.Join(locality, ", "),
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
