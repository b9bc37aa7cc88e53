package schema

import (
	"time"

	"github.com/diewo77/gestioneau/validation"
)

// Field binds one scalar column to an entity field and its DTO twin.
type Field[E, D any] struct {
	column   string
	property string
	kind     Kind
	required bool

	decode   func(row Row, column string, e *E) error
	toDTO    func(e *E, d *D)
	toEntity func(d *D, e *E)
	merge    func(d *D, e *E)
	present  func(d *D) bool
}

// Column is the storage column name (without any join prefix).
func (f *Field[E, D]) Column() string { return f.column }

// Property is the JSON property name used on the wire.
func (f *Field[E, D]) Property() string { return f.property }

func (f *Field[E, D]) Kind() Kind { return f.kind }

func (f *Field[E, D]) Required() bool { return f.required }

// Optional marks the field as nullable on create and update.
func (f *Field[E, D]) Optional() *Field[E, D] {
	f.required = false
	return f
}

func (f *Field[E, D]) validate(d *D, v validation.Violations) {
	if f.required {
		validation.NotNull(f.property, f.present(d), v)
	}
}

// Text declares a text column.
func Text[E, D any](column, property string, ent func(*E) **string, dto func(*D) **string) *Field[E, D] {
	return scalar(KindText, column, property, ent, dto)
}

// Integer declares a 32-bit integer column read into an int.
func Integer[E, D any](column, property string, ent func(*E) **int, dto func(*D) **int) *Field[E, D] {
	return scalar(KindInteger, column, property, ent, dto)
}

// Long declares a 64-bit integer column.
func Long[E, D any](column, property string, ent func(*E) **int64, dto func(*D) **int64) *Field[E, D] {
	return scalar(KindLong, column, property, ent, dto)
}

// Float declares a single precision column (coordinates).
func Float[E, D any](column, property string, ent func(*E) **float32, dto func(*D) **float32) *Field[E, D] {
	return scalar(KindFloat, column, property, ent, dto)
}

// Instant declares a timestamp column.
func Instant[E, D any](column, property string, ent func(*E) **time.Time, dto func(*D) **time.Time) *Field[E, D] {
	return scalar(KindInstant, column, property, ent, dto)
}

// scalar builds the accessors for a field whose Go type T matches what
// Coerce returns for kind.
func scalar[E, D, T any](kind Kind, column, property string, ent func(*E) **T, dto func(*D) **T) *Field[E, D] {
	return &Field[E, D]{
		column:   column,
		property: property,
		kind:     kind,
		required: true,
		decode: func(row Row, col string, e *E) error {
			v, err := row.Get(col, kind)
			if err != nil {
				return err
			}
			if v == nil {
				*ent(e) = nil
				return nil
			}
			t := v.(T)
			*ent(e) = &t
			return nil
		},
		toDTO: func(e *E, d *D) {
			*dto(d) = clone(*ent(e))
		},
		toEntity: func(d *D, e *E) {
			*ent(e) = clone(*dto(d))
		},
		merge: func(d *D, e *E) {
			if p := *dto(d); p != nil {
				*ent(e) = clone(p)
			}
		},
		present: func(d *D) bool {
			return *dto(d) != nil
		},
	}
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
