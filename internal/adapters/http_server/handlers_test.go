package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpserver "london_trips/internal/adapters/http_server"
	"london_trips/internal/adapters/mockplanner"
	"london_trips/internal/app"
	"london_trips/internal/domain"
	"london_trips/internal/normalize"
)

type memRepo struct {
	mu    sync.Mutex
	trips map[string]domain.Trip
}

func (m *memRepo) SaveTrip(ctx context.Context, t domain.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[t.ID] = t
	return nil
}

func (m *memRepo) GetTrip(ctx context.Context, id string) (domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	return t, nil
}

func (m *memRepo) ListTrips(ctx context.Context, limit int) ([]domain.TripSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.TripSummary{}
	for _, t := range m.trips {
		out = append(out, domain.TripSummary{ID: t.ID, Destination: t.Params.Destination, Days: t.Params.Days})
	}
	return out, nil
}

type stubPlanner struct{ raw string }

func (s stubPlanner) Plan(ctx context.Context, p domain.RequestParams) ([]byte, error) {
	return []byte(s.raw), nil
}

func newServer(t *testing.T, planner domain.PlannerClient) http.Handler {
	t.Helper()
	repo := &memRepo{trips: map[string]domain.Trip{}}
	n := normalize.New(normalize.Config{MockLocations: mockplanner.Locations})
	srv := httpserver.New(5*time.Second, []string{"https://planner.example"})
	srv.MountHandlers(&httpserver.Handlers{
		T: app.NewTripService(planner, mockplanner.New(), n, repo, nil, time.Minute),
		Q: app.NewQueryService(repo, nil, time.Minute),
		P: app.NewPlaceService(nil, nil),
	})
	return srv.Mux()
}

func do(t *testing.T, h http.Handler, method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateAndGetTrip(t *testing.T) {
	h := newServer(t, stubPlanner{raw: `{"day1":{"09:00":"Breakfast at Dishoom"}}`})

	rr := do(t, h, http.MethodPost, "/v1/trips", `{"destination":"London","days":1,"interests":["food"]}`, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status: %d body=%s", rr.Code, rr.Body)
	}
	var trip domain.Trip
	if err := json.Unmarshal(rr.Body.Bytes(), &trip); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if loc := rr.Header().Get("Location"); loc != "/v1/trips/"+trip.ID {
		t.Fatalf("location header: %q", loc)
	}
	if a := trip.Itinerary.Itinerary[0].Activities[0]; a.Title != "Breakfast at Dishoom" || a.Time != "09:00" {
		t.Fatalf("unexpected activity: %+v", a)
	}

	rr = do(t, h, http.MethodGet, "/v1/trips/"+trip.ID, "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get status: %d", rr.Code)
	}
	etag := rr.Header().Get("ETag")
	if !strings.HasPrefix(etag, `W/"`) {
		t.Fatalf("expected weak etag, got %q", etag)
	}

	rr = do(t, h, http.MethodGet, "/v1/trips/"+trip.ID, "", map[string]string{"If-None-Match": etag})
	if rr.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rr.Code)
	}

	rr = do(t, h, http.MethodGet, "/v1/trips?limit=5", "", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), trip.ID) {
		t.Fatalf("list: %d %s", rr.Code, rr.Body)
	}
}

func TestCreateTrip_BadRequests(t *testing.T) {
	h := newServer(t, nil)
	cases := map[string]string{
		"not json":   `{days:`,
		"days zero":  `{"days":0}`,
		"days > 14":  `{"days":15}`,
		"bad budget": `{"days":2,"budget":"lavish"}`,
		"bad mode":   `{"days":2,"transportModes":["hovercraft"]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/v1/trips", body, nil)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Fatalf("content type: %q", ct)
			}
		})
	}
}

func TestCreateTrip_EmptyItineraryIs201(t *testing.T) {
	h := newServer(t, stubPlanner{raw: `{"nothing":"here"}`})
	rr := do(t, h, http.MethodPost, "/v1/trips", `{"days":2}`, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"itinerary":[]`) {
		t.Fatalf("expected empty itinerary array: %s", rr.Body)
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	h := newServer(t, nil)
	rr := do(t, h, http.MethodGet, "/v1/trips/does-not-exist", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestListTrips_BadLimit(t *testing.T) {
	h := newServer(t, nil)
	for _, l := range []string{"0", "101", "abc"} {
		if rr := do(t, h, http.MethodGet, "/v1/trips?limit="+l, "", nil); rr.Code != http.StatusBadRequest {
			t.Fatalf("limit=%s: expected 400, got %d", l, rr.Code)
		}
	}
}

func TestPlacesAndDirections_Placeholders(t *testing.T) {
	h := newServer(t, nil)

	rr := do(t, h, http.MethodGet, "/v1/places?q=Sky+Garden&lat=51.5&lng=-0.1", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("places: %d", rr.Code)
	}
	var ps []domain.Place
	_ = json.Unmarshal(rr.Body.Bytes(), &ps)
	if len(ps) != 1 || !ps[0].Placeholder || ps[0].Name != "Sky Garden" {
		t.Fatalf("unexpected places: %+v", ps)
	}

	if rr := do(t, h, http.MethodGet, "/v1/places?q=x&lat=north", "", nil); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad coordinates, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/v1/places", "", nil); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without query, got %d", rr.Code)
	}

	rr = do(t, h, http.MethodGet, "/v1/places/101", "", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"placeholder":true`) {
		t.Fatalf("place details: %d %s", rr.Code, rr.Body)
	}

	body, _ := json.Marshal(map[string]any{
		"waypoints": []domain.Location{{Lat: 51.5007, Lng: -0.1246}, {Lat: 51.5081, Lng: -0.0759}},
		"mode":      "walking",
	})
	rr = do(t, h, http.MethodPost, "/v1/directions", string(body), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("directions: %d", rr.Code)
	}
	var route domain.Route
	_ = json.Unmarshal(rr.Body.Bytes(), &route)
	if !route.Placeholder || len(route.Legs) != 1 || route.DistanceMeters == 0 {
		t.Fatalf("unexpected route: %+v", route)
	}

	if rr := do(t, h, http.MethodPost, "/v1/directions", `{"waypoints":[]}`, nil); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for one waypoint, got %d", rr.Code)
	}
}

func TestHealthzAndCORS(t *testing.T) {
	h := newServer(t, nil)
	if rr := do(t, h, http.MethodGet, "/healthz", "", nil); rr.Code != 200 || rr.Body.String() != "ok" {
		t.Fatalf("healthz: %d %q", rr.Code, rr.Body)
	}

	rr := do(t, h, http.MethodOptions, "/v1/trips", "", map[string]string{"Origin": "https://planner.example"})
	if rr.Code != http.StatusNoContent || rr.Header().Get("Access-Control-Allow-Origin") != "https://planner.example" {
		t.Fatalf("preflight: %d %v", rr.Code, rr.Header())
	}

	rr = do(t, h, http.MethodGet, "/healthz", "", map[string]string{"Origin": "https://evil.example"})
	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected CORS grant")
	}
}
