package pagination_test

import (
	"net/url"
	"testing"

	"github.com/forestscape/soldmis/pkg/pagination"
)

var testConfig = pagination.Config{DefaultPageSize: 200, MaxPageSize: 1000}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"defaults", "", 1, 200},
		{"explicit", "page=3&page_size=50", 3, 50},
		{"limit alias", "limit=25", 1, 25},
		{"page_size wins over limit", "page_size=50&limit=25", 1, 50},
		{"clamped to max", "page_size=5000", 1, 1000},
		{"negative page normalized", "page=-2", 1, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, testConfig)

			if req.Page != tt.page {
				t.Errorf("page: got %d, want %d", req.Page, tt.page)
			}
			if req.PageSize != tt.pageSize {
				t.Errorf("page_size: got %d, want %d", req.PageSize, tt.pageSize)
			}
		})
	}
}

func TestPageRequestSearchAndSort(t *testing.T) {
	values, _ := url.ParseQuery("search=A-101&sort=-Receivables")
	req := pagination.PageRequestFromQuery(values, testConfig)

	if req.Search == nil || *req.Search != "A-101" {
		t.Errorf("search: got %v", req.Search)
	}
	if len(req.Sort) != 1 || req.Sort[0].Field != "Receivables" || !req.Sort[0].Descending {
		t.Errorf("sort: got %+v", req.Sort)
	}
}

func TestOffset(t *testing.T) {
	req := pagination.PageRequest{Page: 4, PageSize: 25}
	if got := req.Offset(); got != 75 {
		t.Errorf("got %d, want 75", got)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		pageSize   int
		totalPages int
	}{
		{"exact pages", 100, 25, 4},
		{"partial last page", 101, 25, 5},
		{"empty still one page", 0, 25, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.totalPages {
				t.Errorf("got %d pages, want %d", result.TotalPages, tt.totalPages)
			}
		})
	}
}

func TestNewPageResultNilData(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 10)
	if result.Data == nil {
		t.Error("data should be non-nil")
	}
}
