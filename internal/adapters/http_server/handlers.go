// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"london_trips/internal/app"
	"london_trips/internal/domain"
)

const maxBodyBytes = 64 << 10

type Handlers struct {
	T *app.TripService
	Q *app.QueryService
	P *app.PlaceService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type directionsRequest struct {
	Waypoints []domain.Location    `json:"waypoints"`
	Mode      domain.TransportMode `json:"mode"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/trips", h.createTrip)
	s.mux.Get("/v1/trips", h.listTrips)
	s.mux.Get("/v1/trips/{id}", h.getTrip)
	s.mux.Get("/v1/places", h.searchPlaces)
	s.mux.Get("/v1/places/{id}", h.getPlace)
	s.mux.Post("/v1/directions", h.directions)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeProblem(w, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable serves v with a weak ETag and honours If-None-Match.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write cacheable body")
	}
}

func (h *Handlers) createTrip(w http.ResponseWriter, r *http.Request) {
	var p domain.RequestParams
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&p); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be a JSON trip request")
		return
	}
	trip, err := h.T.CreateTrip(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/v1/trips/"+trip.ID)
	writeJSON(w, http.StatusCreated, trip)
}

func (h *Handlers) getTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := h.Q.GetTrip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "trip not found")
			return
		}
		writeError(w, err)
		return
	}
	writeCacheable(w, r, trip)
}

func (h *Handlers) listTrips(w http.ResponseWriter, r *http.Request) {
	limit := app.DefaultListLimit
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > app.MaxListLimit {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 100")
			return
		}
		limit = l
	}
	out, err := h.Q.ListTrips(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) searchPlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var near domain.Location
	if q.Has("lat") || q.Has("lng") {
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			writeProblem(w, http.StatusBadRequest, "Invalid coordinates", "lat and lng must be given together as decimal degrees")
			return
		}
		near = domain.Location{Lat: lat, Lng: lng}
	}
	out, err := h.P.SearchPlaces(r.Context(), q.Get("q"), near)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getPlace(w http.ResponseWriter, r *http.Request) {
	out, err := h.P.GetPlaceDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) directions(w http.ResponseWriter, r *http.Request) {
	var req directionsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be {waypoints, mode}")
		return
	}
	out, err := h.P.GetDirections(r.Context(), req.Waypoints, req.Mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
