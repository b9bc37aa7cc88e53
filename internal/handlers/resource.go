package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/diewo77/gestioneau/httpx"
	"github.com/diewo77/gestioneau/internal/repository"
	"github.com/diewo77/gestioneau/internal/schema"
	"github.com/diewo77/gestioneau/internal/search"
	"github.com/diewo77/gestioneau/internal/services"
)

// Registrar mounts a resource's routes on a mux.
type Registrar interface {
	Register(mux *http.ServeMux)
}

// Resource serves one concept under /api/{path}.
type Resource[E, D any] struct {
	path string
	svc  *services.Service[E, D]
	log  *zap.Logger
}

func NewResource[E, D any](path string, svc *services.Service[E, D], log *zap.Logger) *Resource[E, D] {
	return &Resource[E, D]{path: path, svc: svc, log: log.With(zap.String("resource", path))}
}

func (h *Resource[E, D]) Register(mux *http.ServeMux) {
	base := "/api/" + h.path
	mux.HandleFunc("POST "+base, h.Create)
	mux.HandleFunc("PUT "+base+"/{id}", h.Update)
	mux.HandleFunc("PATCH "+base+"/{id}", h.Patch)
	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("GET "+base+"/{id}", h.Get)
	mux.HandleFunc("DELETE "+base+"/{id}", h.Delete)
	mux.HandleFunc("GET /api/_search/"+h.path, h.Search)
}

func (h *Resource[E, D]) concept() *schema.Concept[E, D] { return h.svc.Concept() }

func (h *Resource[E, D]) decode(w http.ResponseWriter, r *http.Request) (*D, bool) {
	d := new(D)
	if err := httpx.Decode(w, r, d); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return nil, false
	}
	return d, true
}

func (h *Resource[E, D]) valid(w http.ResponseWriter, d *D) bool {
	if v := h.concept().Validate(d); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return false
	}
	return true
}

// pathID checks the {id} segment against the body's id.
func (h *Resource[E, D]) pathID(w http.ResponseWriter, r *http.Request, d *D) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "idinvalid", nil)
		return 0, false
	}
	bodyID := h.concept().DTOID(d)
	if bodyID == nil {
		httpx.JSONError(w, http.StatusBadRequest, "idnull", nil)
		return 0, false
	}
	if *bodyID != id {
		httpx.JSONError(w, http.StatusBadRequest, "idinvalid", nil)
		return 0, false
	}
	return id, true
}

func (h *Resource[E, D]) fail(w http.ResponseWriter, r *http.Request, err error) {
	var se *search.Error
	switch {
	case errors.Is(err, repository.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, repository.ErrUnknownRelation):
		httpx.JSONError(w, http.StatusBadRequest, "invalid_filter", nil)
	case errors.As(err, &se):
		status := http.StatusBadGateway
		if se.Status == http.StatusBadRequest {
			status = http.StatusBadRequest
		}
		httpx.JSONError(w, status, "search_failed", map[string]any{"status": se.Status, "body": se.Body})
	default:
		h.log.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

// Create handles POST /api/{path}. A body carrying an id is refused.
func (h *Resource[E, D]) Create(w http.ResponseWriter, r *http.Request) {
	d, ok := h.decode(w, r)
	if !ok {
		return
	}
	if h.concept().DTOID(d) != nil {
		httpx.JSONError(w, http.StatusBadRequest, "idexists", nil)
		return
	}
	if !h.valid(w, d) {
		return
	}
	saved, err := h.svc.Save(r.Context(), d)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/"+h.path+"/"+strconv.FormatInt(*h.concept().DTOID(saved), 10))
	httpx.JSON(w, http.StatusCreated, saved)
}

// Update handles PUT /api/{path}/{id}: a full replacement of an existing row.
func (h *Resource[E, D]) Update(w http.ResponseWriter, r *http.Request) {
	d, ok := h.decode(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, d)
	if !ok || !h.valid(w, d) {
		return
	}
	exists, err := h.svc.Exists(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !exists {
		httpx.JSONError(w, http.StatusNotFound, "idnotfound", nil)
		return
	}
	saved, err := h.svc.Save(r.Context(), d)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

// Patch handles PATCH /api/{path}/{id}; only the fields present in the body
// are changed.
func (h *Resource[E, D]) Patch(w http.ResponseWriter, r *http.Request) {
	d, ok := h.decode(w, r)
	if !ok {
		return
	}
	if _, ok := h.pathID(w, r, d); !ok {
		return
	}
	saved, err := h.svc.PartialUpdate(r.Context(), d)
	if errors.Is(err, repository.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "idnotfound", nil)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

// List handles GET /api/{path}. filter={relation}-is-null and {relation}Id=N
// return unpaged subsets; otherwise the page and total are read together.
func (h *Resource[E, D]) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if f := q.Get("filter"); f != "" {
		rel, ok := strings.CutSuffix(f, "-is-null")
		if !ok {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_filter", nil)
			return
		}
		out, err := h.svc.FindAllWhereRelationIsNull(r.Context(), rel)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, nonNil(out))
		return
	}
	for _, rel := range h.concept().Relations() {
		raw := q.Get(rel.Name() + "Id")
		if raw == "" || rel.Kind() != schema.RelationBelongsTo {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "idinvalid", nil)
			return
		}
		out, err := h.svc.FindByRelation(r.Context(), rel.Name(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, nonNil(out))
		return
	}

	p := repository.ParsePage(q.Get("page"), q.Get("size"), q["sort"])
	var (
		total int64
		out   []*D
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		total, err = h.svc.CountAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		out, err = h.svc.FindAll(ctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.PaginationHeaders(w, r.URL, p.Number, p.Size, total)
	httpx.JSON(w, http.StatusOK, nonNil(out))
}

func (h *Resource[E, D]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "idinvalid", nil)
		return
	}
	d, err := h.svc.FindOne(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, d)
}

func (h *Resource[E, D]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "idinvalid", nil)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Search handles GET /api/_search/{path}?query=. The query goes to the
// engine as typed.
func (h *Resource[E, D]) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("query")
	p := repository.ParsePage(q.Get("page"), q.Get("size"), q["sort"])

	var (
		total int64
		out   []*D
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		total, err = h.svc.SearchCount(ctx, query)
		return err
	})
	g.Go(func() (err error) {
		out, err = h.svc.Search(ctx, query, p)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.PaginationHeaders(w, r.URL, p.Number, p.Size, total)
	httpx.JSON(w, http.StatusOK, nonNil(out))
}

func nonNil[D any](s []*D) []*D {
	if s == nil {
		return []*D{}
	}
	return s
}
