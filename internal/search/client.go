// Package search keeps the Elasticsearch twin of each stored entity and runs
// free-text queries against it. Query strings are passed to the engine's
// query_string grammar untouched; engine failures are returned as they come.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/diewo77/gestioneau/internal/config"
	"github.com/diewo77/gestioneau/internal/repository"
)

// Error is a non-2xx answer from the search engine.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("search engine returned %d: %s", e.Status, e.Body)
}

// Observer receives the outcome of every engine call.
type Observer interface {
	ObserveSearch(index, op string, d time.Duration, err error)
}

type Client struct {
	http     *resty.Client
	log      *zap.Logger
	observer Observer
}

// NewClient builds a client for cfg.URL. Requests are never retried.
func NewClient(cfg config.SearchConfig, log *zap.Logger) *Client {
	c := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Username != "" {
		c.SetBasicAuth(cfg.Username, cfg.Password)
	}
	return &Client{http: c, log: log}
}

// WithObserver reports call durations to o.
func (c *Client) WithObserver(o Observer) *Client {
	c.observer = o
	return c
}

// Resty exposes the underlying HTTP client.
func (c *Client) Resty() *resty.Client { return c.http }

// Hit is one matching document.
type Hit struct {
	ID     string          `json:"_id"`
	Source json.RawMessage `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Hits []Hit `json:"hits"`
	} `json:"hits"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

func queryBody(query string) map[string]any {
	if query == "" {
		return map[string]any{"match_all": map[string]any{}}
	}
	return map[string]any{"query_string": map[string]any{"query": query}}
}

func (c *Client) observe(index, op string, start time.Time, err error) {
	if c.observer != nil {
		c.observer.ObserveSearch(index, op, time.Since(start), err)
	}
}

func check(resp *resty.Response, err error, ok ...int) error {
	if err != nil {
		return err
	}
	if resp.IsSuccess() {
		return nil
	}
	for _, s := range ok {
		if resp.StatusCode() == s {
			return nil
		}
	}
	return &Error{Status: resp.StatusCode(), Body: resp.String()}
}

// decode reads a successful answer whatever Content-Type it was sent with.
func decode(resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("search: decode %s answer: %w", resp.Request.URL, err)
	}
	return nil
}

// Search runs query on index and returns one page of hits, in relevance
// order unless p names a sort.
func (c *Client) Search(ctx context.Context, index, query string, p repository.Page) (hits []Hit, err error) {
	start := time.Now()
	defer func() { c.observe(index, "search", start, err) }()

	body := map[string]any{"query": queryBody(query)}
	if p.Paged() {
		body["from"] = p.Offset()
		body["size"] = p.Size
	}
	if len(p.Sort) > 0 {
		var sort []map[string]string
		for _, o := range p.Sort {
			dir := "asc"
			if o.Desc {
				dir = "desc"
			}
			sort = append(sort, map[string]string{o.Property: dir})
		}
		body["sort"] = sort
	}

	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/" + index + "/_search")
	if err = check(resp, err); err == nil {
		err = decode(resp, &out)
	}
	if err != nil {
		c.log.Debug("search failed", zap.String("index", index), zap.String("query", query), zap.Error(err))
		return nil, err
	}
	return out.Hits.Hits, nil
}

// Count returns the number of documents matching query (all when empty).
func (c *Client) Count(ctx context.Context, index, query string) (n int64, err error) {
	start := time.Now()
	defer func() { c.observe(index, "count", start, err) }()

	var out countResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"query": queryBody(query)}).
		Post("/" + index + "/_count")
	if err = check(resp, err); err != nil {
		return 0, err
	}
	if err = decode(resp, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// Index stores doc under id, replacing any previous version.
func (c *Client) Index(ctx context.Context, index string, id int64, doc any) (err error) {
	start := time.Now()
	defer func() { c.observe(index, "index", start, err) }()

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(doc).
		Put("/" + index + "/_doc/" + strconv.FormatInt(id, 10))
	return check(resp, err)
}

// Delete removes the document id. A missing document is not an error.
func (c *Client) Delete(ctx context.Context, index string, id int64) (err error) {
	start := time.Now()
	defer func() { c.observe(index, "delete", start, err) }()

	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/" + index + "/_doc/" + strconv.FormatInt(id, 10))
	return check(resp, err, http.StatusNotFound)
}
