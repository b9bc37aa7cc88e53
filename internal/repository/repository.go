// Package repository stores concepts with gorm and reads them back through
// one joined query per concept, decoded by the schema engine.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/gestioneau/internal/schema"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnknownRelation = errors.New("unknown relation")
)

// Repository reads and writes one concept.
type Repository[E, D any] struct {
	db      *gorm.DB
	concept *schema.Concept[E, D]
	query   string
}

func New[E, D any](db *gorm.DB, c *schema.Concept[E, D]) *Repository[E, D] {
	return &Repository[E, D]{db: db, concept: c, query: selectJoined(c)}
}

func (r *Repository[E, D]) Concept() *schema.Concept[E, D] { return r.concept }

func quote(ident string) string { return `"` + ident + `"` }

// selectJoined builds
//
//	SELECT e.col AS e_col, rel.col AS rel_col ... FROM table e
//	LEFT OUTER JOIN target rel ON e.rel_id = rel.id ...
//
// for every belongs-to relation of c.
func selectJoined[E, D any](c *schema.Concept[E, D]) string {
	var cols []string
	for _, col := range c.Columns() {
		cols = append(cols, fmt.Sprintf("e.%s AS e_%s", quote(col), col))
	}
	var joins []string
	for _, rel := range c.Relations() {
		if rel.Kind() != schema.RelationBelongsTo {
			continue
		}
		alias := quote(rel.Name())
		for _, col := range rel.Target().Columns() {
			cols = append(cols, fmt.Sprintf("%s.%s AS %s_%s", alias, quote(col), rel.Name(), col))
		}
		joins = append(joins, fmt.Sprintf("LEFT OUTER JOIN %s %s ON e.%s = %s.%s",
			quote(rel.Target().TableName()), alias, quote(rel.Column()), alias, quote("id")))
	}
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(" FROM ")
	b.WriteString(quote(c.TableName()))
	b.WriteString(" e")
	for _, j := range joins {
		b.WriteString(" ")
		b.WriteString(j)
	}
	return b.String()
}

func (r *Repository[E, D]) orderBy(p Page) string {
	var parts []string
	for _, o := range p.Sort {
		col, ok := r.concept.SortColumn(o.Property)
		if !ok {
			continue
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, "e."+quote(col)+" "+dir)
	}
	if len(parts) == 0 {
		return " ORDER BY e.id ASC"
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func (r *Repository[E, D]) find(ctx context.Context, where string, p Page, args ...any) ([]*E, error) {
	sql := r.query
	if where != "" {
		sql += " WHERE " + where
	}
	sql += r.orderBy(p)
	if p.Paged() {
		sql += " LIMIT ? OFFSET ?"
		args = append(args, p.Size, p.Offset())
	}

	rows, err := r.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.concept.TableName(), err)
	}
	scanned, err := schema.ScanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.concept.TableName(), err)
	}
	out := make([]*E, 0, len(scanned))
	for _, row := range scanned {
		e, err := r.concept.DecodeJoined(row, "e")
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// FindAll returns one page ordered by p.Sort, or by id when no sort
// property is known.
func (r *Repository[E, D]) FindAll(ctx context.Context, p Page) ([]*E, error) {
	return r.find(ctx, "", p)
}

// FindByID returns the entity with its belongs-to relations attached.
func (r *Repository[E, D]) FindByID(ctx context.Context, id int64) (*E, error) {
	found, err := r.find(ctx, "e.id = ?", Page{}, id)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%s %d: %w", r.concept.Name(), id, ErrNotFound)
	}
	return found[0], nil
}

// FindAllWhereRelationIsNull lists the entities not linked through the named
// relation. For an owns-one relation that means no owner row points at them.
func (r *Repository[E, D]) FindAllWhereRelationIsNull(ctx context.Context, relation string) ([]*E, error) {
	rel, ok := r.concept.Relation(relation)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", r.concept.Name(), relation, ErrUnknownRelation)
	}
	var where string
	switch rel.Kind() {
	case schema.RelationOwnsOne:
		owner := quote(rel.OwnerColumn())
		where = fmt.Sprintf("e.id NOT IN (SELECT %s FROM %s WHERE %s IS NOT NULL)", owner, quote(rel.OwnerTable()), owner)
	default:
		where = "e." + quote(rel.Column()) + " IS NULL"
	}
	return r.find(ctx, where, Page{})
}

// FindByRelation lists the entities whose named belongs-to relation points at id.
func (r *Repository[E, D]) FindByRelation(ctx context.Context, relation string, id int64) ([]*E, error) {
	rel, ok := r.concept.Relation(relation)
	if !ok || rel.Kind() != schema.RelationBelongsTo {
		return nil, fmt.Errorf("%s.%s: %w", r.concept.Name(), relation, ErrUnknownRelation)
	}
	return r.find(ctx, "e."+quote(rel.Column())+" = ?", Page{}, id)
}

func (r *Repository[E, D]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Table(r.concept.TableName()).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", r.concept.TableName(), err)
	}
	return n, nil
}

func (r *Repository[E, D]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(r.concept.TableName()).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r.concept.TableName(), err)
	}
	return n > 0, nil
}

// Save inserts e when it has no id (the storage-assigned id is written back)
// and otherwise updates every column of the existing row.
func (r *Repository[E, D]) Save(ctx context.Context, e *E) error {
	db := r.db.WithContext(ctx)
	id := r.concept.ID(e)
	if id == 0 {
		if err := db.Create(e).Error; err != nil {
			return fmt.Errorf("create %s: %w", r.concept.Name(), err)
		}
		return nil
	}
	exists, err := r.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s %d: %w", r.concept.Name(), id, ErrNotFound)
	}
	if err := db.Save(e).Error; err != nil {
		return fmt.Errorf("update %s: %w", r.concept.Name(), err)
	}
	return nil
}

func (r *Repository[E, D]) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(new(E), id)
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", r.concept.Name(), res.Error)
	}
	return nil
}
