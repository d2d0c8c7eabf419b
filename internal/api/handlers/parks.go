// Package handlers implements the HTTP handlers for the v1 API.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blaketime/woodsmoke/internal/core"
	"github.com/blaketime/woodsmoke/internal/parks"
	"github.com/blaketime/woodsmoke/internal/types"
	"github.com/blaketime/woodsmoke/internal/weather"
)

// ParksHandler serves the park catalogue and trip-plan endpoints.
type ParksHandler struct {
	repo    *parks.Repository
	weather weather.Fetcher
	logger  *slog.Logger
}

// NewParksHandler creates the handler. The weather fetcher is an interface
// so tests can substitute canned sequences.
func NewParksHandler(repo *parks.Repository, fetcher weather.Fetcher, logger *slog.Logger) *ParksHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParksHandler{
		repo:    repo,
		weather: fetcher,
		logger:  logger,
	}
}

// RegisterRoutes mounts the park routes on a v1 router group.
func (h *ParksHandler) RegisterRoutes(r chi.Router) {
	r.Route("/parks", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{parkID}", h.Get)
		r.Get("/{parkID}/trip-plan", h.TripPlan)
	})
}

// ParkSummary is the compact catalogue listing entry.
type ParkSummary struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Province    string         `json:"province"`
	Type        types.ParkType `json:"type"`
	Lat         float64        `json:"lat"`
	Lng         float64        `json:"lng"`
	Campgrounds int            `json:"campgrounds"`
}

// List returns the full catalogue as summaries.
func (h *ParksHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.repo.List()
	summaries := make([]ParkSummary, 0, len(all))
	for _, p := range all {
		summaries = append(summaries, ParkSummary{
			ID:          p.ID,
			Name:        p.Name,
			Province:    p.Province,
			Type:        p.Type,
			Lat:         p.Lat,
			Lng:         p.Lng,
			Campgrounds: len(p.Campgrounds),
		})
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: summaries})
}

// Get returns one full park record.
func (h *ParksHandler) Get(w http.ResponseWriter, r *http.Request) {
	park, err := h.repo.Get(chi.URLParam(r, "parkID"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: park})
}
