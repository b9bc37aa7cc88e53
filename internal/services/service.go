// Package services holds the per-concept business layer: storage writes
// keep the search index in step, and every result leaves as a DTO.
package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/diewo77/gestioneau/internal/repository"
	"github.com/diewo77/gestioneau/internal/schema"
	"github.com/diewo77/gestioneau/internal/search"
)

// Reindexer rebuilds the search twin of one concept from storage.
type Reindexer interface {
	Name() string
	Reindex(ctx context.Context, limiter *rate.Limiter) (int, error)
}

type Service[E, D any] struct {
	concept *schema.Concept[E, D]
	repo    *repository.Repository[E, D]
	search  *search.Repository[E]
	log     *zap.Logger
}

func New[E, D any](db *gorm.DB, c *schema.Concept[E, D], sc *search.Client, log *zap.Logger) *Service[E, D] {
	return &Service[E, D]{
		concept: c,
		repo:    repository.New(db, c),
		search:  search.NewRepository[E](sc, c.Index()),
		log:     log.With(zap.String("concept", c.Name())),
	}
}

func (s *Service[E, D]) Name() string                   { return s.concept.Name() }
func (s *Service[E, D]) Concept() *schema.Concept[E, D] { return s.concept }

// Save stores d (insert without id, update otherwise), reloads it with its
// relations attached and indexes it.
func (s *Service[E, D]) Save(ctx context.Context, d *D) (*D, error) {
	s.log.Debug("request to save", zap.Any("dto", d))
	return s.store(ctx, s.concept.ToEntity(d))
}

// PartialUpdate merges the non-nil fields of d into the stored entity named
// by d's id. It returns repository.ErrNotFound when no such row exists.
func (s *Service[E, D]) PartialUpdate(ctx context.Context, d *D) (*D, error) {
	s.log.Debug("request to partially update", zap.Any("dto", d))
	id := s.concept.DTOID(d)
	if id == nil {
		return nil, fmt.Errorf("partial update %s without id: %w", s.concept.Name(), repository.ErrNotFound)
	}
	e, err := s.repo.FindByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	s.concept.PartialUpdate(e, d)
	return s.store(ctx, e)
}

func (s *Service[E, D]) store(ctx context.Context, e *E) (*D, error) {
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	saved, err := s.repo.FindByID(ctx, s.concept.ID(e))
	if err != nil {
		return nil, err
	}
	if err := s.search.Save(ctx, s.concept.ID(saved), saved); err != nil {
		return nil, fmt.Errorf("index %s %d: %w", s.concept.Name(), s.concept.ID(saved), err)
	}
	return s.concept.ToDTO(saved), nil
}

func (s *Service[E, D]) FindAll(ctx context.Context, p repository.Page) ([]*D, error) {
	s.log.Debug("request to get all", zap.Int("page", p.Number), zap.Int("size", p.Size))
	es, err := s.repo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.concept.ToDTOs(es), nil
}

// FindAllWhereRelationIsNull lists the entities with no partner through
// relation, e.g. the centres that have no prevision yet.
func (s *Service[E, D]) FindAllWhereRelationIsNull(ctx context.Context, relation string) ([]*D, error) {
	s.log.Debug("request to get all where relation is null", zap.String("relation", relation))
	es, err := s.repo.FindAllWhereRelationIsNull(ctx, relation)
	if err != nil {
		return nil, err
	}
	return s.concept.ToDTOs(es), nil
}

func (s *Service[E, D]) FindByRelation(ctx context.Context, relation string, id int64) ([]*D, error) {
	s.log.Debug("request to get by relation", zap.String("relation", relation), zap.Int64("id", id))
	es, err := s.repo.FindByRelation(ctx, relation, id)
	if err != nil {
		return nil, err
	}
	return s.concept.ToDTOs(es), nil
}

func (s *Service[E, D]) CountAll(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service[E, D]) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *Service[E, D]) FindOne(ctx context.Context, id int64) (*D, error) {
	s.log.Debug("request to get", zap.Int64("id", id))
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.concept.ToDTO(e), nil
}

// Delete removes the row, then its search document.
func (s *Service[E, D]) Delete(ctx context.Context, id int64) error {
	s.log.Debug("request to delete", zap.Int64("id", id))
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := s.search.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("unindex %s %d: %w", s.concept.Name(), id, err)
	}
	return nil
}

// Search runs query against the concept's index. Engine errors come back
// untouched.
func (s *Service[E, D]) Search(ctx context.Context, query string, p repository.Page) ([]*D, error) {
	s.log.Debug("request to search", zap.String("query", query), zap.Int("page", p.Number), zap.Int("size", p.Size))
	var out []*D
	for e, err := range s.search.Search(ctx, query, p) {
		if err != nil {
			return nil, err
		}
		out = append(out, s.concept.ToDTO(e))
	}
	return out, nil
}

func (s *Service[E, D]) SearchCount(ctx context.Context, query string) (int64, error) {
	return s.search.Count(ctx, query)
}

// Reindex pushes every stored entity to the search index and returns how
// many were indexed. A non-nil limiter paces the index calls.
func (s *Service[E, D]) Reindex(ctx context.Context, limiter *rate.Limiter) (int, error) {
	es, err := s.repo.FindAll(ctx, repository.Page{})
	if err != nil {
		return 0, err
	}
	for i, e := range es {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return i, err
			}
		}
		if err := s.search.Save(ctx, s.concept.ID(e), e); err != nil {
			return i, fmt.Errorf("index %s %d: %w", s.concept.Name(), s.concept.ID(e), err)
		}
	}
	s.log.Info("reindexed", zap.Int("count", len(es)))
	return len(es), nil
}
