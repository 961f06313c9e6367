package store

// Viewport defaults used by map consumers.
const (
	DefaultLat    = 39.8283
	DefaultLng    = -98.5795
	DefaultZoom   = 4
	SingleZoom    = 14
	MultiZoom     = 11
	BoundsPadding = 24
	BoundsMaxZoom = 14
)

// LatLng is a map coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LatLngBounds is a rectangle to fit on screen. Padding is in pixels and
// MaxZoom caps how close a fit may zoom in.
type LatLngBounds struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
	Padding   int    `json:"padding"`
	MaxZoom   int    `json:"maxZoom"`
}

// Viewport is where a map of stores should look. HasData is false when no
// store has coordinates; Center and Zoom then hold the country-wide default.
// Bounds is only set when two or more stores are placed.
type Viewport struct {
	HasData bool          `json:"hasData"`
	Center  LatLng        `json:"center"`
	Zoom    int           `json:"zoom"`
	Bounds  *LatLngBounds `json:"bounds,omitempty"`
	Markers []Marker      `json:"markers"`
}

// Marker is one store placed on the map.
type Marker struct {
	StoreID string `json:"storeId"`
	Name    string `json:"name"`
	LatLng
}

// Bounds computes a viewport covering every store with coordinates.
func Bounds(stores []Store) Viewport {
	markers := make([]Marker, 0, len(stores))
	for _, s := range stores {
		if !s.HasCoordinates() {
			continue
		}
		markers = append(markers, Marker{
			StoreID: s.ID,
			Name:    s.Name,
			LatLng:  LatLng{Lat: *s.Latitude, Lng: *s.Longitude},
		})
	}

	switch len(markers) {
	case 0:
		return Viewport{
			Center:  LatLng{Lat: DefaultLat, Lng: DefaultLng},
			Zoom:    DefaultZoom,
			Markers: markers,
		}
	case 1:
		return Viewport{
			HasData: true,
			Center:  markers[0].LatLng,
			Zoom:    SingleZoom,
			Markers: markers,
		}
	}

	sw, ne := markers[0].LatLng, markers[0].LatLng
	var sumLat, sumLng float64
	for _, m := range markers {
		sumLat += m.Lat
		sumLng += m.Lng
		sw.Lat = min(sw.Lat, m.Lat)
		sw.Lng = min(sw.Lng, m.Lng)
		ne.Lat = max(ne.Lat, m.Lat)
		ne.Lng = max(ne.Lng, m.Lng)
	}
	n := float64(len(markers))
	return Viewport{
		HasData: true,
		Center:  LatLng{Lat: sumLat / n, Lng: sumLng / n},
		Zoom:    MultiZoom,
		Bounds: &LatLngBounds{
			SouthWest: sw,
			NorthEast: ne,
			Padding:   BoundsPadding,
			MaxZoom:   BoundsMaxZoom,
		},
		Markers: markers,
	}
}
