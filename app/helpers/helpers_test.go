package helpers

import (
	"net/http/httptest"
	"regexp"
	"testing"
	"time"
)

func TestGenerateOrderCode(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^ORD-20260115-[0-9A-F]{8}$`)

	code := GenerateOrderCode(now)
	if !pattern.MatchString(code) {
		t.Errorf("code %q does not match %s", code, pattern)
	}

	if other := GenerateOrderCode(now); other == code {
		t.Errorf("two codes for the same instant collided: %q", code)
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantPage   int
		wantLimit  int
		wantSearch string
	}{
		{name: "defaults", url: "/admin/products", wantPage: 1, wantLimit: 10},
		{name: "explicit", url: "/admin/products?page=3&limit=25&search=oak", wantPage: 3, wantLimit: 25, wantSearch: "oak"},
		{name: "zero page", url: "/admin/products?page=0", wantPage: 1, wantLimit: 10},
		{name: "limit over cap", url: "/admin/products?limit=500", wantPage: 1, wantLimit: 10},
		{name: "garbage", url: "/admin/products?page=abc&limit=-1", wantPage: 1, wantLimit: 10},
		{name: "search trimmed", url: "/admin/products?search=%20sofa%20", wantPage: 1, wantLimit: 10, wantSearch: "sofa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePagination(httptest.NewRequest("GET", tt.url, nil))
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit || got.Search != tt.wantSearch {
				t.Errorf("got %+v, want page=%d limit=%d search=%q", got, tt.wantPage, tt.wantLimit, tt.wantSearch)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := Pagination{Page: 3, Limit: 10}
	if got := p.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
