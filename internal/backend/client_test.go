package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mesat/flight-routes/internal/models"
	"github.com/mesat/flight-routes/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New()
	return NewClient(Config{BaseURL: srv.URL}, sess, nil), sess
}

func TestLoginEstablishesSession(t *testing.T) {
	c, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "admin" {
			t.Errorf("username = %q", body["username"])
		}
		json.NewEncoder(w).Encode(LoginResult{Token: "tok123", UserType: "ADMIN"})
	}))

	result, err := c.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "tok123" {
		t.Errorf("token = %q", result.Token)
	}
	if !sess.LoggedIn() || sess.Token() != "tok123" {
		t.Error("session not established after login")
	}
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	c, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.LocationPage{})
	}))
	sess.Establish("tok123")

	if _, err := c.Locations(context.Background(), 0, 20); err != nil {
		t.Fatalf("Locations: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
}

func TestUnauthorizedTearsDownSession(t *testing.T) {
	c, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	sess.Establish("stale")

	_, err := c.AllTransportations(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if sess.State() != session.Expired {
		t.Error("session must be expired after a 401")
	}
	if sess.Token() != "" {
		t.Error("credential must be dropped after a 401")
	}
}

func TestAPIErrorCarriesBackendMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Location code already exists: IST"})
	}))

	_, err := c.CreateLocation(context.Background(), models.LocationRequest{
		Name: "Istanbul Airport", Country: "Turkey", City: "Istanbul", LocationCode: "IST", IsAirport: true,
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusConflict || apiErr.Message != "Location code already exists: IST" {
		t.Errorf("got %+v", apiErr)
	}
}

func TestTransportErrorWrapped(t *testing.T) {
	sess := session.New()
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, sess, nil)

	_, err := c.SearchRoutes(context.Background(), models.RouteRequest{
		OriginLocationCode: "IST", DestinationLocationCode: "ESB", Date: "2026-09-07",
	})

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
}

func TestAllLocationsWalksPages(t *testing.T) {
	pages := [][]models.Location{
		{{ID: 1, Name: "Istanbul Airport"}, {ID: 2, Name: "Ankara Esenboga"}},
		{{ID: 3, Name: "Heathrow"}},
	}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := 0
		if r.URL.Query().Get("page") == "1" {
			page = 1
		}
		json.NewEncoder(w).Encode(models.LocationPage{
			Content:       pages[page],
			TotalElements: 3,
			TotalPages:    2,
			Page:          page,
		})
	}))

	all, err := c.AllLocations(context.Background())
	if err != nil {
		t.Fatalf("AllLocations: %v", err)
	}
	if len(all) != 3 || all[2].Name != "Heathrow" {
		t.Fatalf("got %d locations: %+v", len(all), all)
	}
}

func TestFilterTransportationsQuery(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("searchTerm") != "istanbul" {
			t.Errorf("searchTerm = %q", q.Get("searchTerm"))
		}
		if got := q["transportationTypes"]; len(got) != 2 || got[0] != "FLIGHT" || got[1] != "BUS" {
			t.Errorf("transportationTypes = %v", got)
		}
		json.NewEncoder(w).Encode([]models.Transportation{})
	}))

	_, err := c.FilterTransportations(context.Background(), "istanbul",
		[]models.TransportationType{models.TypeFlight, models.TypeBus})
	if err != nil {
		t.Fatalf("FilterTransportations: %v", err)
	}
}
