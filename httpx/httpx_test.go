package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, http.StatusBadRequest, "validation_failed", map[string]string{"libelle": "required"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var got ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Error != "validation_failed" {
		t.Fatalf("error = %q", got.Error)
	}
}

func TestPaginationHeaders(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		total      int64
		wantRels   []string
		wantLast   string
	}{
		{"first page", 0, 20, 45, []string{"next", "last", "first"}, "page=2"},
		{"middle page", 1, 20, 45, []string{"next", "prev", "last", "first"}, "page=2"},
		{"last page", 2, 20, 45, []string{"prev", "last", "first"}, "page=2"},
		{"empty", 0, 20, 0, []string{"last", "first"}, "page=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			u, _ := url.Parse("/api/centres?sort=libelle,desc&page=9")
			PaginationHeaders(rec, u, tt.page, tt.size, tt.total)

			if got := rec.Header().Get(TotalCountHeader); got == "" {
				t.Fatal("missing total count")
			}
			links := strings.Split(rec.Header().Get("Link"), ",")
			if len(links) != len(tt.wantRels) {
				t.Fatalf("links = %v", links)
			}
			for i, rel := range tt.wantRels {
				if !strings.HasSuffix(links[i], `rel="`+rel+`"`) {
					t.Errorf("link %d = %q, want rel %s", i, links[i], rel)
				}
				if !strings.Contains(links[i], "sort=libelle%2Cdesc") {
					t.Errorf("link %d dropped sort: %q", i, links[i])
				}
			}
			last := links[len(links)-2]
			if !strings.Contains(last, tt.wantLast) {
				t.Errorf("last link = %q, want %s", last, tt.wantLast)
			}
		})
	}
}

func TestPaginationHeadersUnpaged(t *testing.T) {
	rec := httptest.NewRecorder()
	u, _ := url.Parse("/api/regions")
	PaginationHeaders(rec, u, 0, 0, 3)
	if rec.Header().Get(TotalCountHeader) != "3" || rec.Header().Get("Link") != "" {
		t.Fatalf("headers = %v", rec.Header())
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"object", `{"libelle":"Centre"}`, false},
		{"trailing value", `{"libelle":"a"}{"libelle":"b"}`, true},
		{"truncated", `{"libelle":`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst struct {
				Libelle *string `json:"libelle"`
			}
			req := httptest.NewRequest(http.MethodPost, "/api/regions", strings.NewReader(tt.body))
			err := Decode(httptest.NewRecorder(), req, &dst)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
