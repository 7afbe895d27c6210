package locations

import (
	"sort"
	"testing"

	"ustabul/models"
)

func TestCitiesSorted(t *testing.T) {
	cities := Cities()
	if len(cities) == 0 {
		t.Fatal("no cities")
	}
	if !sort.StringsAreSorted(cities) {
		t.Fatalf("cities not sorted: %v", cities)
	}
}

func TestDistrictsKnownAndUnknown(t *testing.T) {
	districts := Districts("İstanbul")
	if len(districts) == 0 {
		t.Fatal("İstanbul should have districts")
	}
	found := false
	for _, d := range districts {
		if d == "Kadıköy" {
			found = true
		}
	}
	if !found {
		t.Fatal("Kadıköy missing from İstanbul")
	}

	if got := Districts("Atlantis"); got != nil {
		t.Fatalf("expected nil for unknown city, got %v", got)
	}
}

func TestNormalizeClearsForeignDistrict(t *testing.T) {
	loc := models.Location{
		City:       "Ankara",
		District:   "Kadıköy", // İstanbul district
		Street:     "Bir Sokak",
		BuildingNo: "7",
	}
	got := Normalize(loc)
	if got.City != "Ankara" {
		t.Fatalf("city changed: %q", got.City)
	}
	if got.District != "" || got.Street != "" || got.BuildingNo != "" {
		t.Fatalf("finer fields should be cleared: %+v", got)
	}
}

func TestNormalizeKeepsMatchingDistrict(t *testing.T) {
	loc := models.Location{City: "İstanbul", District: "Kadıköy", Neighborhood: "Moda"}
	got := Normalize(loc)
	if got != loc {
		t.Fatalf("valid location must pass through unchanged: %+v", got)
	}
}
