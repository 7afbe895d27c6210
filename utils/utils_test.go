package utils

import (
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		url       string
		wantSkip  int64
		wantLimit int64
	}{
		{"/api/jobs", 0, 20},
		{"/api/jobs?page=3&limit=10", 20, 10},
		{"/api/jobs?page=0&limit=-5", 0, 20},
		{"/api/jobs?limit=9999", 0, 100},
		{"/api/jobs?page=abc&limit=xyz", 0, 20},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", tc.url, nil)
		skip, limit := ParsePagination(r, 20, 100)
		if skip != tc.wantSkip || limit != tc.wantLimit {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", tc.url, skip, limit, tc.wantSkip, tc.wantLimit)
		}
	}
}

func TestRegexFilterEscapesMeta(t *testing.T) {
	filter := RegexFilter("title", "c++ (usta)")
	re := filter["title"].(bson.M)["$regex"].(primitive.Regex)
	if re.Pattern != `c\+\+ \(usta\)` {
		t.Fatalf("pattern not escaped: %q", re.Pattern)
	}
	if re.Options != "i" {
		t.Fatalf("expected case-insensitive, got %q", re.Options)
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	s := GenerateRandomString(15)
	if len(s) != 15 {
		t.Fatalf("got length %d", len(s))
	}
	if s == GenerateRandomString(15) {
		t.Fatal("two generated strings collided")
	}
}
