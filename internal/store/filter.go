package store

// DefaultRadiusMiles and DefaultSNAPOnly are the filter settings a new search
// starts with.
const (
	DefaultRadiusMiles = 5.0
	DefaultSNAPOnly    = true
)

// Filter keeps stores within radiusMiles, and only SNAP retailers when
// snapOnly is set. The result is sorted nearest first and never nil.
func Filter(stores []Store, radiusMiles float64, snapOnly bool) []Store {
	out := make([]Store, 0, len(stores))
	for _, s := range stores {
		if snapOnly && !s.SupportsSNAP {
			continue
		}
		if s.DistanceMiles > radiusMiles {
			continue
		}
		out = append(out, s.Clone())
	}
	SortByDistance(out)
	return out
}
