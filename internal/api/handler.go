package api

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"purna/internal/plan"
	"purna/internal/session"
	"purna/internal/store"
)

// Planner defines the recipe pipeline.
type Planner interface {
	Generate(ctx context.Context, p plan.Preferences) (plan.Data, error)
}

// StoreFinder defines the store pipeline.
type StoreFinder interface {
	Stores(ctx context.Context, zip string) ([]store.Store, error)
}

// SessionStore defines access to live sessions.
type SessionStore interface {
	Create() *session.Session
	Get(id string) (*session.Session, error)
	Delete(id string) error
}

// SessionService defines the pipelines run against a session.
type SessionService interface {
	GeneratePlan(ctx context.Context, id string) (session.Snapshot, error)
	LoadStores(ctx context.Context, id string) (session.Snapshot, error)
	Refresh(ctx context.Context, id string) (session.Snapshot, error)
}

// Handler handles HTTP requests.
type Handler struct {
	Planner  Planner
	Stores   StoreFinder
	Sessions SessionStore
	Service  SessionService
	Timeout  time.Duration
}

// NewHandler creates a new Handler. Every pipeline call is bounded by timeout.
func NewHandler(planner Planner, stores StoreFinder, sessions SessionStore, service SessionService, timeout time.Duration) *Handler {
	return &Handler{Planner: planner, Stores: stores, Sessions: sessions, Service: service, Timeout: timeout}
}

type errorResponse struct {
	Error   string            `json:"error"`
	Session *session.Snapshot `json:"session,omitempty"`
}

type contextResponse struct {
	UserContext string `json:"userContext"`
}

type planResponse struct {
	UserContext string             `json:"userContext"`
	Plan        plan.Data          `json:"plan"`
	Budget      plan.BudgetSummary `json:"budget"`
}

type storeView struct {
	store.Store
	MapsURL string `json:"mapsUrl"`
}

type storesResponse struct {
	ZipCode     string         `json:"zipCode"`
	RadiusMiles float64        `json:"radiusMiles"`
	SNAPOnly    bool           `json:"snapOnly"`
	Total       int            `json:"total"`
	Stores      []storeView    `json:"stores"`
	Viewport    store.Viewport `json:"viewport"`
	StoreError  string         `json:"storeError,omitempty"`
}

// Health reports that the process is serving.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateSession starts a planning session with default preferences.
func (h *Handler) CreateSession(c *gin.Context) {
	s := h.Sessions.Create()
	c.JSON(http.StatusCreated, s.Snapshot())
}

// GetSession returns the current snapshot of a session.
func (h *Handler) GetSession(c *gin.Context) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// DeleteSession ends a session.
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.Sessions.Delete(c.Param("id")); err != nil {
		writeError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdatePreferences merges a partial preferences update into a session.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	var patch plan.PreferencesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.UpdatePreferences(patch))
}

// ResetSession restores default preferences and clears all results.
func (h *Handler) ResetSession(c *gin.Context) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, s.Reset())
}

// GeneratePlan runs the recipe pipeline for a session.
func (h *Handler) GeneratePlan(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	snap, err := h.Service.GeneratePlan(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err, &snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SessionStores runs the store pipeline for the session's zip code and
// returns the filtered list with its map viewport.
func (h *Handler) SessionStores(c *gin.Context) {
	radius, snapOnly, ok := storeFilter(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	snap, err := h.Service.LoadStores(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err, &snap)
		return
	}
	resp := buildStoresResponse(snap.StoresZip, snap.Stores, radius, snapOnly)
	resp.StoreError = snap.StoreError
	c.JSON(http.StatusOK, resp)
}

// Refresh runs both pipelines for a session.
func (h *Handler) Refresh(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	snap, err := h.Service.Refresh(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err, &snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Plan runs the recipe pipeline for the preferences in the request body
// without touching any session.
func (h *Handler) Plan(c *gin.Context) {
	var prefs plan.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	prefs = prefs.Normalize()

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	data, err := h.Planner.Generate(ctx, prefs)
	if err != nil {
		writeError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, planResponse{
		UserContext: plan.BuildUserContext(prefs),
		Plan:        data,
		Budget:      plan.Summarize(data.Ingredients, prefs.WeeklyBudget),
	})
}

// FindStores runs the store pipeline for the zip query parameter.
func (h *Handler) FindStores(c *gin.Context) {
	radius, snapOnly, ok := storeFilter(c)
	if !ok {
		return
	}
	zip := plan.NormalizeZip(c.Query("zip"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	stores, err := h.Stores.Stores(ctx, zip)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, buildStoresResponse(zip, stores, radius, snapOnly))
}

// Context previews the request text built from the preferences in the body.
func (h *Handler) Context(c *gin.Context) {
	var prefs plan.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, contextResponse{UserContext: plan.BuildUserContext(prefs.Normalize())})
}

// storeFilter reads radius and snap_only, writing a 400 when either is bad.
func storeFilter(c *gin.Context) (float64, bool, bool) {
	radius := store.DefaultRadiusMiles
	if v := c.Query("radius"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "radius must be a non-negative number of miles"})
			return 0, false, false
		}
		radius = r
	}

	snapOnly := store.DefaultSNAPOnly
	if v := c.Query("snap_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "snap_only must be true or false"})
			return 0, false, false
		}
		snapOnly = b
	}
	return radius, snapOnly, true
}

func buildStoresResponse(zip string, stores []store.Store, radius float64, snapOnly bool) storesResponse {
	filtered := store.Filter(stores, radius, snapOnly)
	views := make([]storeView, 0, len(filtered))
	for _, s := range filtered {
		views = append(views, storeView{Store: s, MapsURL: s.MapsURL()})
	}
	return storesResponse{
		ZipCode:     zip,
		RadiusMiles: radius,
		SNAPOnly:    snapOnly,
		Total:       len(stores),
		Stores:      views,
		Viewport:    store.Bounds(filtered),
	}
}

// writeError maps pipeline errors to HTTP statuses. Anything unrecognized is a
// failed upstream call, including remote status errors, whose message is kept
// verbatim for display.
func writeError(c *gin.Context, err error, snap *session.Snapshot) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, session.ErrNotFound):
		status = http.StatusNotFound
		snap = nil
	case errors.Is(err, session.ErrStale):
		status = http.StatusConflict
	case errors.Is(err, store.ErrInvalidZip):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	if status >= http.StatusInternalServerError {
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, errorResponse{Error: err.Error(), Session: snap})
}
