package wire

import (
	"encoding/json"
	"fmt"
)

// SnapStore is a SNAP-authorized retailer record from
// GET /snap-stores/closest.
type SnapStore struct {
	RecordID          ID     `json:"record_id"`
	StoreName         Text   `json:"store_name"`
	StoreType         Text   `json:"store_type"`
	StreetNumber      Text   `json:"street_number"`
	StreetName        Text   `json:"street_name"`
	AdditionalAddress Text   `json:"additional_address"`
	City              Text   `json:"city"`
	State             Text   `json:"state"`
	ZipCode           Text   `json:"zip_code"`
	Zip4              Text   `json:"zip4"`
	County            Text   `json:"county"`
	Latitude          Number `json:"latitude"`
	Longitude         Number `json:"longitude"`
	AuthorizationDate Text   `json:"authorization_date"`
	EndDate           Text   `json:"end_date"`
	DistanceMiles     Number `json:"distance_miles"`
}

// DecodeSnapStores decodes a /snap-stores/closest body. Only invalid JSON is an
// error: a top level that is not an array yields an empty list, and null or
// non-object elements are skipped. Order is preserved.
func DecodeSnapStores(data []byte) ([]SnapStore, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid snap stores payload")
	}
	stores := objects[SnapStore](data)
	if stores == nil {
		return []SnapStore{}, nil
	}
	return stores, nil
}
