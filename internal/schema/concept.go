package schema

import (
	"fmt"

	"github.com/diewo77/gestioneau/validation"
)

// Table is the type-erased view of a concept, used as a relation target and
// by storage code that only needs names and columns.
type Table interface {
	Name() string
	TableName() string
	Index() string
	// Columns lists the storage columns: id, scalars, then foreign keys.
	Columns() []string
	decodeRef(row Row, prefix string) (any, error)
}

// Concept is the declaration of one persisted concept E and its DTO D.
type Concept[E, D any] struct {
	name  string
	table string
	index string

	id    func(*E) *int64
	dtoID func(*D) **int64

	fields    []*Field[E, D]
	relations []*Relation[E, D]
}

// Define starts the declaration of a concept. id addresses the entity
// identifier (0 while transient) and dtoID the DTO identifier.
func Define[E, D any](name, table, index string, id func(*E) *int64, dtoID func(*D) **int64) *Concept[E, D] {
	return &Concept[E, D]{name: name, table: table, index: index, id: id, dtoID: dtoID}
}

// WithFields appends scalar fields in column order.
func (c *Concept[E, D]) WithFields(fs ...*Field[E, D]) *Concept[E, D] {
	c.fields = append(c.fields, fs...)
	return c
}

// WithRelations appends outbound relations.
func (c *Concept[E, D]) WithRelations(rs ...*Relation[E, D]) *Concept[E, D] {
	for _, r := range rs {
		if _, dup := c.Relation(r.name); dup {
			panic(fmt.Sprintf("schema: %s: duplicate relation %q", c.name, r.name))
		}
	}
	c.relations = append(c.relations, rs...)
	return c
}

func (c *Concept[E, D]) Name() string      { return c.name }
func (c *Concept[E, D]) TableName() string { return c.table }
func (c *Concept[E, D]) Index() string     { return c.index }

func (c *Concept[E, D]) Relations() []*Relation[E, D] { return c.relations }

func (c *Concept[E, D]) Columns() []string {
	cols := make([]string, 0, 1+len(c.fields)+len(c.relations))
	cols = append(cols, "id")
	for _, f := range c.fields {
		cols = append(cols, f.column)
	}
	for _, r := range c.relations {
		if r.kind == RelationBelongsTo {
			cols = append(cols, r.column)
		}
	}
	return cols
}

// Relation looks up a relation by name.
func (c *Concept[E, D]) Relation(name string) (*Relation[E, D], bool) {
	for _, r := range c.relations {
		if r.name == name {
			return r, true
		}
	}
	return nil, false
}

// SortColumn maps a JSON property name to its storage column.
func (c *Concept[E, D]) SortColumn(property string) (string, bool) {
	if property == "id" {
		return "id", true
	}
	for _, f := range c.fields {
		if f.property == property || f.column == property {
			return f.column, true
		}
	}
	for _, r := range c.relations {
		if r.kind == RelationBelongsTo && (r.name+".id" == property || r.column == property) {
			return r.column, true
		}
	}
	return "", false
}

// ID returns the entity identifier, 0 while transient.
func (c *Concept[E, D]) ID(e *E) int64 { return *c.id(e) }

func (c *Concept[E, D]) SetID(e *E, id int64) { *c.id(e) = id }

// DTOID returns the DTO identifier, nil when absent.
func (c *Concept[E, D]) DTOID(d *D) *int64 { return *c.dtoID(d) }

func (c *Concept[E, D]) SetDTOID(d *D, id *int64) { *c.dtoID(d) = clone(id) }

// Decode reads prefix_id, every declared prefix_column and every
// prefix_relation_id from row into a fresh entity. Related entities are
// never attached; only foreign keys are set. A NULL required column leaves
// the field nil.
func (c *Concept[E, D]) Decode(row Row, prefix string) (*E, error) {
	e := new(E)
	id, err := row.Get(prefix+"_id", KindID)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	if id != nil {
		*c.id(e) = id.(int64)
	}
	for _, f := range c.fields {
		if err := f.decode(row, prefix+"_"+f.column, e); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.name, err)
		}
	}
	for _, r := range c.relations {
		if r.kind != RelationBelongsTo {
			continue
		}
		v, err := row.Get(prefix+"_"+r.column, KindID)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.name, err)
		}
		if v == nil {
			*r.fk(e) = nil
			continue
		}
		fk := v.(int64)
		*r.fk(e) = &fk
	}
	return e, nil
}

// DecodeJoined decodes the entity with prefix and attaches every
// belongs-to relation whose joined columns (prefixed with the relation
// name) carry a non-NULL identifier.
func (c *Concept[E, D]) DecodeJoined(row Row, prefix string) (*E, error) {
	e, err := c.Decode(row, prefix)
	if err != nil {
		return nil, err
	}
	for _, r := range c.relations {
		if err := r.decodeJoined(row, e); err != nil {
			return nil, fmt.Errorf("decode %s.%s: %w", c.name, r.name, err)
		}
	}
	return e, nil
}

func (c *Concept[E, D]) decodeRef(row Row, prefix string) (any, error) {
	id, err := row.Get(prefix+"_id", KindID)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, nil
	}
	return c.Decode(row, prefix)
}

// ToDTO projects e. Relations go through their profile and never carry a
// further nested relation.
func (c *Concept[E, D]) ToDTO(e *E) *D {
	if e == nil {
		return nil
	}
	d := new(D)
	if id := *c.id(e); id != 0 {
		*c.dtoID(d) = &id
	}
	for _, f := range c.fields {
		f.toDTO(e, d)
	}
	for _, r := range c.relations {
		if r.kind == RelationBelongsTo {
			*r.dto(d) = r.project(e)
		}
	}
	return d
}

func (c *Concept[E, D]) ToDTOs(es []*E) []*D {
	out := make([]*D, 0, len(es))
	for _, e := range es {
		out = append(out, c.ToDTO(e))
	}
	return out
}

// ToEntity projects d back. Nested relations only set foreign keys.
func (c *Concept[E, D]) ToEntity(d *D) *E {
	if d == nil {
		return nil
	}
	e := new(E)
	if id := *c.dtoID(d); id != nil {
		*c.id(e) = *id
	}
	for _, f := range c.fields {
		f.toEntity(d, e)
	}
	for _, r := range c.relations {
		if r.kind != RelationBelongsTo {
			continue
		}
		if ref := *r.dto(d); ref != nil && ref.ID != nil {
			*r.fk(e) = clone(ref.ID)
		}
	}
	return e
}

// PartialUpdate merges the non-nil fields of d into e. A relation given with
// an id replaces the foreign key and drops the stale attached entity.
func (c *Concept[E, D]) PartialUpdate(e *E, d *D) {
	if e == nil || d == nil {
		return
	}
	for _, f := range c.fields {
		f.merge(d, e)
	}
	for _, r := range c.relations {
		if r.kind != RelationBelongsTo {
			continue
		}
		if ref := *r.dto(d); ref != nil && ref.ID != nil {
			r.clear(e)
			*r.fk(e) = clone(ref.ID)
		}
	}
}

// Validate reports every required scalar missing from d.
func (c *Concept[E, D]) Validate(d *D) validation.Violations {
	v := validation.Violations{}
	for _, f := range c.fields {
		f.validate(d, v)
	}
	return v
}
