package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/gestioneau/httpx"
	"github.com/diewo77/gestioneau/internal/catalog"
	"github.com/diewo77/gestioneau/internal/config"
	"github.com/diewo77/gestioneau/internal/db"
	"github.com/diewo77/gestioneau/internal/dto"
	"github.com/diewo77/gestioneau/internal/search"
	"github.com/diewo77/gestioneau/internal/services"
)

const esURL = "http://es.test"

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	d, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(d, false, "", zap.NewNop()))

	sc := search.NewClient(config.SearchConfig{URL: esURL, Timeout: time.Second}, zap.NewNop())
	httpmock.ActivateNonDefault(sc.Resty().GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.RegisterRegexpResponder(http.MethodPut, regexp.MustCompile(`/_doc/\d+$`),
		httpmock.NewStringResponder(http.StatusOK, `{"result":"created"}`))
	httpmock.RegisterRegexpResponder(http.MethodDelete, regexp.MustCompile(`/_doc/\d+$`),
		httpmock.NewStringResponder(http.StatusOK, `{"result":"deleted"}`))

	log := zap.NewNop()
	mux := http.NewServeMux()
	for _, reg := range []Registrar{
		NewResource(catalog.Path(catalog.Centre), services.New(d, catalog.Centre, sc, log), log),
		NewResource(catalog.Path(catalog.Annee), services.New(d, catalog.Annee, sc, log), log),
		NewResource(catalog.Path(catalog.Prevision), services.New(d, catalog.Prevision, sc, log), log),
	} {
		reg.Register(mux)
	}
	return mux
}

func do(t *testing.T, mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e.Error
}

func TestCreateGetUpdateDelete(t *testing.T) {
	mux := newMux(t)

	rec := do(t, mux, http.MethodPost, "/api/centres", `{"libelle":"Ouaga 1","responsable":"Diallo","contact":"70"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/centres/1", rec.Header().Get("Location"))

	rec = do(t, mux, http.MethodGet, "/api/centres/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var c dto.CentreDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Diallo", *c.Responsable)

	rec = do(t, mux, http.MethodPut, "/api/centres/1", `{"id":1,"libelle":"Ouaga I","responsable":"Diallo","contact":"71"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, mux, http.MethodPatch, "/api/centres/1", `{"id":1,"contact":"72"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Ouaga I", *c.Libelle)
	assert.Equal(t, "72", *c.Contact)

	rec = do(t, mux, http.MethodDelete, "/api/centres/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, mux, http.MethodGet, "/api/centres/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

func TestRequestErrors(t *testing.T) {
	mux := newMux(t)
	require.Equal(t, http.StatusCreated, do(t, mux, http.MethodPost, "/api/annees", `{"libelle":"2024"}`).Code)

	tests := []struct {
		name, method, target, body string
		status                     int
		code                       string
	}{
		{"create with id", http.MethodPost, "/api/annees", `{"id":3,"libelle":"2025"}`, http.StatusBadRequest, "idexists"},
		{"create missing libelle", http.MethodPost, "/api/annees", `{}`, http.StatusBadRequest, "validation_failed"},
		{"broken json", http.MethodPost, "/api/annees", `{"libelle":`, http.StatusBadRequest, "invalid_json"},
		{"update without body id", http.MethodPut, "/api/annees/1", `{"libelle":"x"}`, http.StatusBadRequest, "idnull"},
		{"update id mismatch", http.MethodPut, "/api/annees/1", `{"id":2,"libelle":"x"}`, http.StatusBadRequest, "idinvalid"},
		{"update missing row", http.MethodPut, "/api/annees/9", `{"id":9,"libelle":"x"}`, http.StatusNotFound, "idnotfound"},
		{"update invalid body on missing row", http.MethodPut, "/api/annees/9", `{"id":9}`, http.StatusBadRequest, "validation_failed"},
		{"update invalid body", http.MethodPut, "/api/annees/1", `{"id":1}`, http.StatusBadRequest, "validation_failed"},
		{"patch missing row", http.MethodPatch, "/api/annees/9", `{"id":9}`, http.StatusNotFound, "idnotfound"},
		{"bad path id", http.MethodGet, "/api/annees/abc", ``, http.StatusBadRequest, "idinvalid"},
		{"unknown filter", http.MethodGet, "/api/annees?filter=centre-is-null", ``, http.StatusBadRequest, "invalid_filter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestListPagingAndFilters(t *testing.T) {
	mux := newMux(t)
	for _, l := range []string{"A", "B", "C"} {
		body := `{"libelle":"` + l + `","responsable":"R","contact":"T"}`
		require.Equal(t, http.StatusCreated, do(t, mux, http.MethodPost, "/api/centres", body).Code)
	}
	require.Equal(t, http.StatusCreated,
		do(t, mux, http.MethodPost, "/api/previsions", `{"nbLatrine":1,"nbPuisard":2,"nbPublic":3,"nbScolaire":4,"centre":{"id":2}}`).Code)

	rec := do(t, mux, http.MethodGet, "/api/centres?page=0&size=2&sort=libelle,desc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Header().Get(httpx.TotalCountHeader))
	assert.Contains(t, rec.Header().Get("Link"), `rel="next"`)
	var page []dto.CentreDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page, 2)
	assert.Equal(t, "C", *page[0].Libelle)

	rec = do(t, mux, http.MethodGet, "/api/centres?filter=prevision-is-null", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var free []dto.CentreDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &free))
	assert.Len(t, free, 2)

	rec = do(t, mux, http.MethodGet, "/api/previsions?centreId=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var prevs []dto.PrevisionDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prevs))
	require.Len(t, prevs, 1)
	assert.Equal(t, "B", *prevs[0].Centre.Libelle)
}

func TestSearchEndpoint(t *testing.T) {
	mux := newMux(t)
	httpmock.RegisterResponder(http.MethodPost, esURL+"/centre/_search",
		httpmock.NewStringResponder(http.StatusOK, `{"hits":{"hits":[{"_id":"1","_source":{"id":1,"libelle":"Ouaga","responsable":"Diallo","contact":"70"}}]}}`))
	httpmock.RegisterResponder(http.MethodPost, esURL+"/centre/_count",
		httpmock.NewStringResponder(http.StatusOK, `{"count":1}`))

	rec := do(t, mux, http.MethodGet, "/api/_search/centres?query=responsable:Diallo&size=20", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "1", rec.Header().Get(httpx.TotalCountHeader))
	var got []dto.CentreDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Diallo", *got[0].Responsable)
}

func TestSearchEngineFailure(t *testing.T) {
	mux := newMux(t)
	httpmock.RegisterResponder(http.MethodPost, esURL+"/annee/_search",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error":"parse_exception"}`))
	httpmock.RegisterResponder(http.MethodPost, esURL+"/annee/_count",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error":"parse_exception"}`))

	rec := do(t, mux, http.MethodGet, "/api/_search/annees?query=libelle:(", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "search_failed", errorCode(t, rec))
	assert.Contains(t, rec.Body.String(), "parse_exception")
}
