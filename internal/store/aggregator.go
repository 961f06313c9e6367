package store

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"purna/internal/wire"
)

// Pipeline is the name the store pipeline reports metrics under.
const Pipeline = "stores"

// ErrInvalidZip is returned for anything but a five digit zip code.
var ErrInvalidZip = errors.New("zip code must be 5 digits")

// SnapSource lists SNAP retailers near a zip code.
type SnapSource interface {
	FetchSnapStores(ctx context.Context, zip string) ([]wire.SnapStore, error)
}

// Observer receives the outcome of each pipeline run.
type Observer interface {
	ObservePipeline(pipeline, outcome string, elapsed time.Duration)
}

// Aggregator merges remote SNAP retailers with local fixtures.
type Aggregator struct {
	source   SnapSource
	fixtures Fixtures
	observer Observer
}

// NewAggregator creates a new Aggregator. fixtures and observer may be nil.
func NewAggregator(source SnapSource, fixtures Fixtures, observer Observer) *Aggregator {
	if fixtures == nil {
		fixtures = NoFixtures{}
	}
	return &Aggregator{source: source, fixtures: fixtures, observer: observer}
}

// ValidZip reports whether zip is exactly five ASCII digits.
func ValidZip(zip string) bool {
	if len(zip) != 5 {
		return false
	}
	for i := 0; i < len(zip); i++ {
		if zip[i] < '0' || zip[i] > '9' {
			return false
		}
	}
	return true
}

// Stores returns every store for zip sorted by distance. Records without a
// numeric distance are dropped. A fetch failure is returned as is and no
// fixtures are returned with it.
func (a *Aggregator) Stores(ctx context.Context, zip string) ([]Store, error) {
	if !ValidZip(zip) {
		return nil, ErrInvalidZip
	}
	start := time.Now()

	records, err := a.source.FetchSnapStores(ctx, zip)
	if err != nil {
		a.observe("error", start)
		log.Printf("SNAP store fetch for %s failed: %v", zip, err)
		return nil, err
	}

	usable := make([]wire.SnapStore, 0, len(records))
	for _, r := range records {
		if r.DistanceMiles.Valid {
			usable = append(usable, r)
		}
	}
	sort.SliceStable(usable, func(i, j int) bool {
		return usable[i].DistanceMiles.Value < usable[j].DistanceMiles.Value
	})

	stores := make([]Store, 0, len(usable))
	for _, r := range usable {
		stores = append(stores, FromSnap(r))
	}
	demo := a.fixtures.StoresFor(zip)
	stores = append(stores, demo...)
	SortByDistance(stores)

	a.observe("ok", start)
	log.Printf("Found %d stores for %s (%d SNAP, %d local)", len(stores), zip, len(usable), len(demo))
	return stores, nil
}

// SortByDistance stable-sorts stores nearest first.
func SortByDistance(stores []Store) {
	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].DistanceMiles < stores[j].DistanceMiles
	})
}

func (a *Aggregator) observe(outcome string, start time.Time) {
	if a.observer != nil {
		a.observer.ObservePipeline(Pipeline, outcome, time.Since(start))
	}
}
