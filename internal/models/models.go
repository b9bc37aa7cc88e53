// Package models holds the persisted entities. Scalars are pointers so a
// NULL column stays distinguishable from a zero value; each belongs-to
// relation is a foreign key id plus an optionally attached entity.
package models

import "fmt"

// Identified is satisfied by every entity pointer.
type Identified interface {
	comparable
	GetID() int64
}

// Equal reports whether a and b denote the same stored row: the same
// instance, or two instances sharing a non-zero id. Transient entities are
// only equal to themselves.
func Equal[T Identified](a, b T) bool {
	var zero T
	if a == zero || b == zero {
		return false
	}
	if a == b {
		return true
	}
	return a.GetID() != 0 && a.GetID() == b.GetID()
}

// idOf returns the id of v for a foreign key column, nil when v is nil or transient.
func idOf[T Identified](v T) *int64 {
	var zero T
	if v == zero {
		return nil
	}
	id := v.GetID()
	if id == 0 {
		return nil
	}
	return &id
}

// Lookup is the shape shared by the label-only reference tables.
type Lookup struct {
	ID      int64   `gorm:"primaryKey" json:"id"`
	Libelle *string `gorm:"size:255;not null" json:"libelle"`
}

func (l *Lookup) GetID() int64        { return l.ID }
func (l *Lookup) GetLibelle() *string { return l.Libelle }

func (l *Lookup) format(name string) string {
	return fmt.Sprintf("%s{id=%d, libelle=%s}", name, l.ID, quote(l.Libelle))
}

func quote(s *string) string {
	if s == nil {
		return "null"
	}
	return "'" + *s + "'"
}

func show[T any](v *T) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(*v)
}

type Region struct{ Lookup }

func (Region) TableName() string       { return "region" }
func (r *Region) String() string       { return r.format("Region") }
func (r *Region) Equal(o *Region) bool { return Equal(r, o) }

type TypeCommune struct{ Lookup }

func (TypeCommune) TableName() string            { return "type_commune" }
func (t *TypeCommune) String() string            { return t.format("TypeCommune") }
func (t *TypeCommune) Equal(o *TypeCommune) bool { return Equal(t, o) }

type TypeHabitation struct{ Lookup }

func (TypeHabitation) TableName() string               { return "type_habitation" }
func (t *TypeHabitation) String() string               { return t.format("TypeHabitation") }
func (t *TypeHabitation) Equal(o *TypeHabitation) bool { return Equal(t, o) }

type NatureOuvrage struct{ Lookup }

func (NatureOuvrage) TableName() string              { return "nature_ouvrage" }
func (n *NatureOuvrage) String() string              { return n.format("NatureOuvrage") }
func (n *NatureOuvrage) Equal(o *NatureOuvrage) bool { return Equal(n, o) }

type ModeEvacExcreta struct{ Lookup }

func (ModeEvacExcreta) TableName() string                { return "mode_evac_excreta" }
func (m *ModeEvacExcreta) String() string                { return m.format("ModeEvacExcreta") }
func (m *ModeEvacExcreta) Equal(o *ModeEvacExcreta) bool { return Equal(m, o) }

type ModeEvacuationEauUsee struct{ Lookup }

func (ModeEvacuationEauUsee) TableName() string                      { return "mode_evacuation_eau_usee" }
func (m *ModeEvacuationEauUsee) String() string                      { return m.format("ModeEvacuationEauUsee") }
func (m *ModeEvacuationEauUsee) Equal(o *ModeEvacuationEauUsee) bool { return Equal(m, o) }

type SourceApprovEp struct{ Lookup }

func (SourceApprovEp) TableName() string               { return "source_approv_ep" }
func (s *SourceApprovEp) String() string               { return s.format("SourceApprovEp") }
func (s *SourceApprovEp) Equal(o *SourceApprovEp) bool { return Equal(s, o) }

type Macon struct{ Lookup }

func (Macon) TableName() string      { return "macon" }
func (m *Macon) String() string      { return m.format("Macon") }
func (m *Macon) Equal(o *Macon) bool { return Equal(m, o) }

type Prefabricant struct{ Lookup }

func (Prefabricant) TableName() string             { return "prefabricant" }
func (p *Prefabricant) String() string             { return p.format("Prefabricant") }
func (p *Prefabricant) Equal(o *Prefabricant) bool { return Equal(p, o) }
