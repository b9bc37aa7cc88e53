package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/diewo77/gestioneau/internal/repository"
)

// ErrConsumed is yielded when a search sequence is ranged over a second time.
var ErrConsumed = errors.New("search: result sequence already consumed")

// Repository is the search twin of one concept, stored as E's JSON form.
type Repository[E any] struct {
	client *Client
	index  string
}

func NewRepository[E any](c *Client, index string) *Repository[E] {
	return &Repository[E]{client: c, index: index}
}

func (r *Repository[E]) Index() string { return r.index }

// Search returns the hits of query as a lazy, one-shot sequence: the request
// is sent when iteration starts and a second iteration only yields
// ErrConsumed. A transport or engine error is yielded once, unmodified.
func (r *Repository[E]) Search(ctx context.Context, query string, p repository.Page) iter.Seq2[*E, error] {
	var used atomic.Bool
	return func(yield func(*E, error) bool) {
		if used.Swap(true) {
			yield(nil, ErrConsumed)
			return
		}
		hits, err := r.client.Search(ctx, r.index, query, p)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, h := range hits {
			e := new(E)
			if err := json.Unmarshal(h.Source, e); err != nil {
				yield(nil, fmt.Errorf("decode %s hit %s: %w", r.index, h.ID, err))
				return
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}

// Collect drains seq, stopping at the first error.
func Collect[E any](seq iter.Seq2[*E, error]) ([]*E, error) {
	var out []*E
	for e, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *Repository[E]) Count(ctx context.Context, query string) (int64, error) {
	return r.client.Count(ctx, r.index, query)
}

func (r *Repository[E]) Save(ctx context.Context, id int64, e *E) error {
	return r.client.Index(ctx, r.index, id, e)
}

func (r *Repository[E]) DeleteByID(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, r.index, id)
}
