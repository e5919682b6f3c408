package backend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"jewgo-server/api"
	"jewgo-server/models"
)

func TestSearchRestaurantsNearby(t *testing.T) {
	wantResp := models.SearchRestaurantsResponse{
		Total:  2,
		Status: "OK",
	}

	// Handler to verify request and return stubbed JSON
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// method + path
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/restaurants/search" {
			t.Errorf("expected path /restaurants/search; got %s", r.URL.Path)
		}

		// coordinates forwarded as query args
		if got := r.URL.Query().Get("lat"); got != "40.66" {
			t.Errorf("lat = %q; want 40.66", got)
		}

		// must include the API key header
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			t.Errorf("X-Api-Key = %q; want secret", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewJewGoBackendClient(api.NewHTTPClient(srv.URL))
	client.SetAPIKey("secret")

	got, err := client.SearchRestaurantsNearby(40.66, -73.94, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != wantResp.Total {
		t.Errorf("Total = %d; want %d", got.Total, wantResp.Total)
	}
	if got.Status != wantResp.Status {
		t.Errorf("Status = %q; want %q", got.Status, wantResp.Status)
	}
}

func TestGetRestaurant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/restaurants/rest-001" {
			t.Errorf("expected path /restaurants/rest-001; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "rest-001", "name": "Kingston Grill"}`))
	}))
	defer srv.Close()

	client := NewJewGoBackendClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetRestaurant("rest-001")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Kingston Grill" {
		t.Errorf("Name = %q; want Kingston Grill", got.Name)
	}
}

func TestSubmitRestaurant(t *testing.T) {
	var received models.RestaurantSubmission

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST; got %s", r.Method)
		}
		if r.URL.Path != "/restaurants" {
			t.Errorf("expected path /restaurants; got %s", r.URL.Path)
		}

		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &received)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"submission_id": "sub-42", "status": "pending"}`))
	}))
	defer srv.Close()

	client := NewJewGoBackendClient(api.NewHTTPClient(srv.URL))

	receipt, err := client.SubmitRestaurant(&models.RestaurantSubmission{
		Name:           "New Falafel Spot",
		KosherCategory: "pareve",
	})
	if err != nil {
		t.Fatal(err)
	}
	if received.Name != "New Falafel Spot" {
		t.Errorf("forwarded name = %q; want New Falafel Spot", received.Name)
	}
	if receipt.SubmissionID != "sub-42" {
		t.Errorf("SubmissionID = %q; want sub-42", receipt.SubmissionID)
	}
}

func TestRequest_BadStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewJewGoBackendClient(api.NewHTTPClient(srv.URL))

	if _, err := client.GetRestaurant("rest-001"); err == nil {
		t.Error("expected error on 500 response")
	}
}
