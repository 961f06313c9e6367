package session

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"purna/internal/plan"
	"purna/internal/store"
)

// PlanGenerator runs the recipe pipeline.
type PlanGenerator interface {
	Generate(ctx context.Context, p plan.Preferences) (plan.Data, error)
}

// StoreLister runs the store pipeline.
type StoreLister interface {
	Stores(ctx context.Context, zip string) ([]store.Store, error)
}

// Observer is told about discarded responses. The pipelines themselves
// record their runs, so a discard is reported on its own and not as a run.
type Observer interface {
	ObserveStale(pipeline string)
}

// Service runs the pipelines against sessions held by a Manager.
type Service struct {
	sessions *Manager
	planner  PlanGenerator
	stores   StoreLister
	observer Observer
}

// NewService creates a new Service. observer may be nil.
func NewService(sessions *Manager, planner PlanGenerator, stores StoreLister, observer Observer) *Service {
	return &Service{sessions: sessions, planner: planner, stores: stores, observer: observer}
}

// GeneratePlan runs the recipe pipeline for session id. On a fetch failure the
// returned snapshot has no plan and carries the error message, and the error
// is returned too. ErrStale means a newer plan request won.
func (svc *Service) GeneratePlan(ctx context.Context, id string) (Snapshot, error) {
	s, err := svc.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	gen, prefs := s.BeginPlan()
	data, genErr := svc.planner.Generate(ctx, prefs)

	var snap Snapshot
	if genErr != nil {
		snap, err = s.FailPlan(gen, genErr)
	} else {
		snap, err = s.CompletePlan(gen, data)
	}
	if errors.Is(err, ErrStale) {
		svc.stale(plan.Pipeline, id, gen)
		return snap, ErrStale
	}
	return snap, genErr
}

// LoadStores runs the store pipeline for the session's zip code. A zip code
// that is not five digits clears the list without an error.
func (svc *Service) LoadStores(ctx context.Context, id string) (Snapshot, error) {
	s, err := svc.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	gen, zip, ok := s.BeginStores()
	if !ok {
		return s.Snapshot(), nil
	}
	stores, fetchErr := svc.stores.Stores(ctx, zip)

	var snap Snapshot
	if fetchErr != nil {
		snap, err = s.FailStores(gen, zip, fetchErr)
	} else {
		snap, err = s.CompleteStores(gen, zip, stores)
	}
	if errors.Is(err, ErrStale) {
		svc.stale(store.Pipeline, id, gen)
		return snap, ErrStale
	}
	return snap, fetchErr
}

// Refresh runs both pipelines concurrently. A failure in one does not cancel
// the other; the first error is returned with the final snapshot.
func (svc *Service) Refresh(ctx context.Context, id string) (Snapshot, error) {
	s, err := svc.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := svc.GeneratePlan(ctx, id)
		return err
	})
	g.Go(func() error {
		_, err := svc.LoadStores(ctx, id)
		return err
	})
	err = g.Wait()
	return s.Snapshot(), err
}

func (svc *Service) stale(pipeline, id string, gen uint64) {
	log.Printf("Discarded stale %s response for session %s (generation %d)", pipeline, id, gen)
	if svc.observer != nil {
		svc.observer.ObserveStale(pipeline)
	}
}
