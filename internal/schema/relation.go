package schema

// Profile selects how much of a related entity is copied into a DTO.
type Profile int

const (
	// ProfileLabel copies the identifier and the libelle.
	ProfileLabel Profile = iota
	// ProfileID copies the identifier only.
	ProfileID
)

func (p Profile) String() string {
	if p == ProfileID {
		return "id"
	}
	return "libelle"
}

// RelationKind distinguishes foreign keys held by the entity from
// back-references held by the other side.
type RelationKind int

const (
	RelationBelongsTo RelationKind = iota
	RelationOwnsOne
)

// Referent is implemented by every entity that can be the target of a relation.
type Referent interface {
	GetID() int64
}

// Labeled is implemented by entities exposing a libelle.
type Labeled interface {
	GetLibelle() *string
}

// Ref is the nested DTO for a related concept: never deeper than one hop.
type Ref struct {
	ID      *int64  `json:"id"`
	Libelle *string `json:"libelle,omitempty"`
}

// RefTo builds a Ref carrying only an identifier.
func RefTo(id int64) *Ref {
	return &Ref{ID: &id}
}

// Relation binds one outbound relation of E.
type Relation[E, D any] struct {
	name    string
	kind    RelationKind
	column  string
	target  Table
	profile Profile

	// owns-one back-references: the owner table and the column pointing at E.
	ownerTable  string
	ownerColumn string

	fk      func(*E) **int64
	get     func(*E) Referent
	set     func(*E, any) bool
	clear   func(*E)
	dto     func(*D) **Ref
	project func(*E) *Ref
}

// BelongsTo declares a foreign key relation named name. The storage column is
// name+"_id" and joined columns are read with name as prefix. set is the
// entity's own setter, which keeps the foreign key (and any back-pointer on
// the target) in step with the attached entity.
func BelongsTo[E, D, T any, PT interface {
	*T
	Referent
}](name string, target Table, profile Profile, fk func(*E) **int64, ref func(*E) **T, set func(*E, *T), dto func(*D) **Ref) *Relation[E, D] {
	r := &Relation[E, D]{
		name:    name,
		kind:    RelationBelongsTo,
		column:  name + "_id",
		target:  target,
		profile: profile,
		fk:      fk,
		dto:     dto,
	}
	r.get = func(e *E) Referent {
		t := *ref(e)
		if t == nil {
			return nil
		}
		return PT(t)
	}
	r.set = func(e *E, v any) bool {
		t, ok := v.(*T)
		if !ok {
			return false
		}
		set(e, t)
		return true
	}
	r.clear = func(e *E) {
		set(e, nil)
	}
	r.project = func(e *E) *Ref {
		if t := *ref(e); t != nil && PT(t).GetID() != 0 {
			return projectRef(PT(t), profile)
		}
		// Not attached, or attached but never stored: the foreign key alone
		// still identifies the target.
		if id := *fk(e); id != nil {
			return RefTo(*id)
		}
		return nil
	}
	return r
}

// OwnsOne declares a back-reference: ownerTable.ownerColumn points at E.
// It carries no column on E and never appears in the DTO.
func OwnsOne[E, D any](name, ownerTable, ownerColumn string) *Relation[E, D] {
	return &Relation[E, D]{
		name:        name,
		kind:        RelationOwnsOne,
		ownerTable:  ownerTable,
		ownerColumn: ownerColumn,
	}
}

func projectRef(t Referent, profile Profile) *Ref {
	ref := RefTo(t.GetID())
	if profile == ProfileLabel {
		if l, ok := t.(Labeled); ok {
			ref.Libelle = clone(l.GetLibelle())
		}
	}
	return ref
}

func (r *Relation[E, D]) Name() string        { return r.name }
func (r *Relation[E, D]) Kind() RelationKind  { return r.kind }
func (r *Relation[E, D]) Column() string      { return r.column }
func (r *Relation[E, D]) Target() Table       { return r.target }
func (r *Relation[E, D]) Profile() Profile    { return r.profile }
func (r *Relation[E, D]) OwnerTable() string  { return r.ownerTable }
func (r *Relation[E, D]) OwnerColumn() string { return r.ownerColumn }

// ForeignKey returns the relation's foreign key value on e.
func (r *Relation[E, D]) ForeignKey(e *E) *int64 {
	if r.kind != RelationBelongsTo {
		return nil
	}
	return *r.fk(e)
}

// Related returns the attached related entity, or nil.
func (r *Relation[E, D]) Related(e *E) Referent {
	if r.kind != RelationBelongsTo {
		return nil
	}
	return r.get(e)
}

// Attach sets the related entity and its foreign key together. related must
// be a pointer to the target entity type (a typed nil detaches); Attach
// reports whether the value was accepted.
func (r *Relation[E, D]) Attach(e *E, related any) bool {
	if r.kind != RelationBelongsTo {
		return false
	}
	return r.set(e, related)
}

// Detach clears both the related entity and its foreign key.
func (r *Relation[E, D]) Detach(e *E) {
	if r.kind == RelationBelongsTo {
		r.clear(e)
	}
}

// decodeJoined reads the related entity from row columns prefixed with the
// relation name and attaches it when the joined identifier is present.
func (r *Relation[E, D]) decodeJoined(row Row, e *E) error {
	if r.kind != RelationBelongsTo || r.target == nil {
		return nil
	}
	related, err := r.target.decodeRef(row, r.name)
	if err != nil || related == nil {
		return err
	}
	r.set(e, related)
	return nil
}
