// Package session keeps per-user planning state in memory. Every mutation
// returns an immutable Snapshot, and each pipeline carries a generation
// counter so that only the most recently issued request can write its result.
package session

import (
	"errors"
	"sync"
	"time"

	"purna/internal/plan"
	"purna/internal/store"
)

var (
	// ErrNotFound is returned for an unknown session id.
	ErrNotFound = errors.New("session not found")
	// ErrStale is returned when a newer request of the same pipeline was
	// issued before this one completed. Its result was discarded.
	ErrStale = errors.New("response superseded by a newer request")
)

// Snapshot is a deep copy of a session's state at one point in time.
type Snapshot struct {
	ID            string           `json:"id"`
	Preferences   plan.Preferences `json:"preferences"`
	Plan          *plan.Data       `json:"plan"`
	PlanError     string           `json:"planError,omitempty"`
	PlanLoading   bool             `json:"planLoading"`
	StoresZip     string           `json:"storesZip"`
	Stores        []store.Store    `json:"stores"`
	StoreError    string           `json:"storeError,omitempty"`
	StoresLoading bool             `json:"storesLoading"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// Session is one user's preferences, plan and store results.
type Session struct {
	mu sync.Mutex

	id          string
	preferences plan.Preferences

	planData    *plan.Data
	planErr     string
	planGen     uint64
	planPending bool

	storesZip     string
	stores        []store.Store
	storeErr      string
	storeGen      uint64
	storesPending bool

	createdAt time.Time
	updatedAt time.Time
}

func newSession(id string) *Session {
	now := time.Now()
	return &Session{
		id:          id,
		preferences: plan.DefaultPreferences(),
		stores:      []store.Store{},
		createdAt:   now,
		updatedAt:   now,
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Preferences returns a copy of the current preferences.
func (s *Session) Preferences() plan.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences.Clone()
}

// UpdatePreferences applies patch. A zip code change drops the store results
// and invalidates any store request still in flight.
func (s *Session) UpdatePreferences(patch plan.PreferencesPatch) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevZip := s.preferences.ZipCode
	s.preferences = s.preferences.Apply(patch)
	if s.preferences.ZipCode != prevZip {
		s.storeGen++
		s.clearStoresLocked(s.preferences.ZipCode)
	}
	s.touch()
	return s.snapshotLocked()
}

// Reset restores default preferences and drops plan and store results.
// Requests in flight for either pipeline become stale.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences = plan.DefaultPreferences()
	s.planGen++
	s.planData = nil
	s.planErr = ""
	s.planPending = false
	s.storeGen++
	s.clearStoresLocked("")
	s.touch()
	return s.snapshotLocked()
}

// BeginPlan issues a new plan generation and returns it with the preferences
// the request should use.
func (s *Session) BeginPlan() (uint64, plan.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.planGen++
	s.planPending = true
	s.touch()
	return s.planGen, s.preferences.Clone()
}

// CompletePlan stores data as the session plan if gen is still current. The
// previous plan and error are replaced together.
func (s *Session) CompletePlan(gen uint64, data plan.Data) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.planGen {
		return s.snapshotLocked(), ErrStale
	}
	cp := data.Clone()
	s.planData = &cp
	s.planErr = ""
	s.planPending = false
	s.touch()
	return s.snapshotLocked(), nil
}

// FailPlan clears the plan and records err if gen is still current.
func (s *Session) FailPlan(gen uint64, err error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.planGen {
		return s.snapshotLocked(), ErrStale
	}
	s.planData = nil
	s.planErr = err.Error()
	s.planPending = false
	s.touch()
	return s.snapshotLocked(), nil
}

// BeginStores issues a new store generation for the current zip code and
// returns it with that zip. When the zip is not five digits the list is
// cleared without an error and ok is false; no request should be made.
func (s *Session) BeginStores() (gen uint64, zip string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.storeGen++
	zip = s.preferences.ZipCode
	s.touch()
	if !store.ValidZip(zip) {
		s.clearStoresLocked(zip)
		return s.storeGen, zip, false
	}
	s.storesPending = true
	return s.storeGen, zip, true
}

// CompleteStores replaces the store list if gen is still current.
func (s *Session) CompleteStores(gen uint64, zip string, stores []store.Store) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.storeGen {
		return s.snapshotLocked(), ErrStale
	}
	s.storesZip = zip
	s.stores = store.CloneAll(stores)
	if s.stores == nil {
		s.stores = []store.Store{}
	}
	s.storeErr = ""
	s.storesPending = false
	s.touch()
	return s.snapshotLocked(), nil
}

// FailStores clears the store list and records err if gen is still current.
func (s *Session) FailStores(gen uint64, zip string, err error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.storeGen {
		return s.snapshotLocked(), ErrStale
	}
	s.clearStoresLocked(zip)
	s.storeErr = err.Error()
	s.touch()
	return s.snapshotLocked(), nil
}

func (s *Session) clearStoresLocked(zip string) {
	s.storesZip = zip
	s.stores = []store.Store{}
	s.storeErr = ""
	s.storesPending = false
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:            s.id,
		Preferences:   s.preferences.Clone(),
		PlanError:     s.planErr,
		PlanLoading:   s.planPending,
		StoresZip:     s.storesZip,
		Stores:        store.CloneAll(s.stores),
		StoreError:    s.storeErr,
		StoresLoading: s.storesPending,
		CreatedAt:     s.createdAt,
		UpdatedAt:     s.updatedAt,
	}
	if s.planData != nil {
		cp := s.planData.Clone()
		snap.Plan = &cp
	}
	return snap
}
