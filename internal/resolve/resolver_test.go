package resolve_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/jashwanth-cse/Dream-Destiny/internal/provider"
	"github.com/jashwanth-cse/Dream-Destiny/internal/resolve"
)

// stubSearcher is a remote name-search tier returning canned candidates.
type stubSearcher struct {
	candidates []provider.Location
	err        error
	calls      int
}

func (s *stubSearcher) Locations(ctx context.Context, name string) (*provider.LocationsResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &provider.LocationsResponse{Data: s.candidates}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestStationCode_ExactMatch(t *testing.T) {
	r := resolve.NewResolver(nil, testLogger())
	ctx := context.Background()

	tests := []struct {
		name string
		want string
	}{
		{"Chennai", "MAS"},
		{"chennai", "MAS"},
		{"  Rajapalayam  ", "RPM"},
		{"Madurai Junction", "MDU"},
		{"New Delhi", "NDLS"},
	}

	for _, tt := range tests {
		if got := r.StationCode(ctx, tt.name); got != tt.want {
			t.Errorf("StationCode(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	// Repeated calls stay deterministic.
	for range 5 {
		if got := r.StationCode(ctx, "Chennai"); got != "MAS" {
			t.Fatalf("expected MAS on every call, got %q", got)
		}
	}
}

func TestStationCode_ContainmentMatch(t *testing.T) {
	r := resolve.NewResolver(nil, testLogger())
	ctx := context.Background()

	// Input contains a table key.
	if got := r.StationCode(ctx, "Erode Town"); got != "ED" {
		t.Errorf("expected ED for 'Erode Town', got %q", got)
	}
	// Table key contains the input.
	if got := r.StationCode(ctx, "kanyakumar"); got != "CAPE" {
		t.Errorf("expected CAPE for 'kanyakumar', got %q", got)
	}
}

func TestStationCode_QualifiedNames(t *testing.T) {
	r := resolve.NewResolver(nil, testLogger())
	ctx := context.Background()

	tests := []struct {
		name string
		want string
	}{
		{"Thanjavur City", "TJ"},
		{"Erode Junction", "ED"},
		{"Kumbakonam Central", "KMU"},
	}

	for _, tt := range tests {
		if got := r.StationCode(ctx, tt.name); got != tt.want {
			t.Errorf("StationCode(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStationCode_RemoteSearch(t *testing.T) {
	s := &stubSearcher{candidates: []provider.Location{
		{Name: "Shimla", StationCode: "SML"},
		{Name: "Shimla Road", StationCode: "SMR"},
	}}
	r := resolve.NewResolver(s, testLogger())

	if got := r.StationCode(context.Background(), "Shimla"); got != "SML" {
		t.Errorf("expected first remote candidate SML, got %q", got)
	}
	if s.calls != 1 {
		t.Errorf("expected 1 remote call, got %d", s.calls)
	}
}

func TestStationCode_RemoteNotConsultedForTableHits(t *testing.T) {
	s := &stubSearcher{candidates: []provider.Location{{StationCode: "XXX"}}}
	r := resolve.NewResolver(s, testLogger())

	if got := r.StationCode(context.Background(), "Chennai"); got != "MAS" {
		t.Errorf("expected MAS, got %q", got)
	}
	if s.calls != 0 {
		t.Errorf("expected no remote calls for a table hit, got %d", s.calls)
	}
}

func TestStationCode_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		searcher resolve.LocationSearcher
	}{
		{"nil searcher", nil},
		{"remote error", &stubSearcher{err: errors.New("boom")}},
		{"remote empty", &stubSearcher{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolve.NewResolver(tt.searcher, testLogger())
			if got := r.StationCode(context.Background(), "Zzqqxx"); got != "ZZQ" {
				t.Errorf("expected fallback ZZQ, got %q", got)
			}
		})
	}
}

func TestStationCode_FallbackShortName(t *testing.T) {
	r := resolve.NewResolver(nil, testLogger())

	if got := r.StationCode(context.Background(), "Zq"); got != "ZQ" {
		t.Errorf("expected ZQ for a two-letter name, got %q", got)
	}
}

func TestAirportAndCityCodes(t *testing.T) {
	r := resolve.NewResolver(nil, testLogger())

	if got := r.AirportCode("Rajapalayam"); got != "TUV" {
		t.Errorf("expected nearest airport TUV, got %q", got)
	}
	if got := r.AirportCode("Atlantis"); got != "MAA" {
		t.Errorf("expected default MAA, got %q", got)
	}
	if got := r.CityCode("Rajapalayam"); got != "MAA" {
		t.Errorf("expected hotel city MAA, got %q", got)
	}
}

func TestCoordinates(t *testing.T) {
	r := resolve.NewResolver(nil, testLogger())

	geo, ok := r.Coordinates("Chennai")
	if !ok {
		t.Fatal("expected coordinates for Chennai")
	}
	if geo.Latitude != 13.0827 || geo.Longitude != 80.2707 {
		t.Errorf("unexpected coordinates: %+v", geo)
	}

	if _, ok := r.Coordinates("Atlantis"); ok {
		t.Error("expected no coordinates for unknown city")
	}
}

func TestCountry(t *testing.T) {
	r := resolve.NewResolver(nil, testLogger())

	if got := r.Country("Chennai"); got != "IN" {
		t.Errorf("expected IN, got %q", got)
	}
	if got := r.Country("Singapore"); got != "SG" {
		t.Errorf("expected SG, got %q", got)
	}
}
