package models

import "fmt"

// Organisational chain: DirectionRegionale > CentreRegroupement > Centre,
// and the yearly Prevision shared one-to-one by a Centre and an Annee.

type DirectionRegionale struct {
	Lookup
	Responsable *string `gorm:"size:255;not null" json:"responsable"`
	Contact     *string `gorm:"size:255;not null" json:"contact"`
}

func (DirectionRegionale) TableName() string { return "direction_regionale" }

func (d *DirectionRegionale) String() string {
	return fmt.Sprintf("DirectionRegionale{id=%d, libelle=%s, responsable=%s, contact=%s}",
		d.ID, quote(d.Libelle), quote(d.Responsable), quote(d.Contact))
}

func (d *DirectionRegionale) Equal(o *DirectionRegionale) bool { return Equal(d, o) }

type CentreRegroupement struct {
	Lookup
	Responsable          *string             `gorm:"size:255;not null" json:"responsable"`
	Contact              *string             `gorm:"size:255;not null" json:"contact"`
	DirectionRegionaleID *int64              `gorm:"column:directionregionale_id;index" json:"directionregionaleId,omitempty"`
	DirectionRegionale   *DirectionRegionale `gorm:"-" json:"directionregionale,omitempty"`
}

func (CentreRegroupement) TableName() string { return "centre_regroupement" }

func (c *CentreRegroupement) String() string {
	return fmt.Sprintf("CentreRegroupement{id=%d, libelle=%s, responsable=%s, contact=%s}",
		c.ID, quote(c.Libelle), quote(c.Responsable), quote(c.Contact))
}

func (c *CentreRegroupement) Equal(o *CentreRegroupement) bool { return Equal(c, o) }

func (c *CentreRegroupement) SetDirectionRegionale(d *DirectionRegionale) {
	c.DirectionRegionale = d
	c.DirectionRegionaleID = idOf(d)
}

type Centre struct {
	Lookup
	Responsable          *string             `gorm:"size:255;not null" json:"responsable"`
	Contact              *string             `gorm:"size:255;not null" json:"contact"`
	CentreRegroupementID *int64              `gorm:"column:centreregroupement_id;index" json:"centreregroupementId,omitempty"`
	CentreRegroupement   *CentreRegroupement `gorm:"-" json:"centreregroupement,omitempty"`

	// Prevision points back here through prevision.centre_id.
	Prevision *Prevision `gorm:"-" json:"-"`
}

func (Centre) TableName() string { return "centre" }

func (c *Centre) String() string {
	return fmt.Sprintf("Centre{id=%d, libelle=%s, responsable=%s, contact=%s}",
		c.ID, quote(c.Libelle), quote(c.Responsable), quote(c.Contact))
}

func (c *Centre) Equal(o *Centre) bool { return Equal(c, o) }

func (c *Centre) SetCentreRegroupement(r *CentreRegroupement) {
	c.CentreRegroupement = r
	c.CentreRegroupementID = idOf(r)
}

// AttachPrevision links p to c, detaching whatever either side was linked to before.
func (c *Centre) AttachPrevision(p *Prevision) { linkCentre(c, p) }

type Annee struct {
	Lookup

	// Prevision points back here through prevision.refannee_id.
	Prevision *Prevision `gorm:"-" json:"-"`
}

func (Annee) TableName() string      { return "annee" }
func (a *Annee) String() string      { return a.format("Annee") }
func (a *Annee) Equal(o *Annee) bool { return Equal(a, o) }

// AttachPrevision links p to a, detaching whatever either side was linked to before.
func (a *Annee) AttachPrevision(p *Prevision) { linkAnnee(a, p) }

// Prevision holds the yearly targets of one Centre.
type Prevision struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	NbLatrine  *int    `gorm:"column:nb_latrine;not null" json:"nbLatrine"`
	NbPuisard  *int    `gorm:"column:nb_puisard;not null" json:"nbPuisard"`
	NbPublic   *int    `gorm:"column:nb_public;not null" json:"nbPublic"`
	NbScolaire *int    `gorm:"column:nb_scolaire;not null" json:"nbScolaire"`
	CentreID   *int64  `gorm:"column:centre_id;uniqueIndex" json:"centreId,omitempty"`
	Centre     *Centre `gorm:"-" json:"centre,omitempty"`
	RefanneeID *int64  `gorm:"column:refannee_id;uniqueIndex" json:"refanneeId,omitempty"`
	Refannee   *Annee  `gorm:"-" json:"refannee,omitempty"`
}

func (Prevision) TableName() string { return "prevision" }
func (p *Prevision) GetID() int64   { return p.ID }

func (p *Prevision) String() string {
	return fmt.Sprintf("Prevision{id=%d, nbLatrine=%s, nbPuisard=%s, nbPublic=%s, nbScolaire=%s}",
		p.ID, show(p.NbLatrine), show(p.NbPuisard), show(p.NbPublic), show(p.NbScolaire))
}

func (p *Prevision) Equal(o *Prevision) bool { return Equal(p, o) }

// SetCentre links p to c through linkCentre so the back-pointer stays in step.
func (p *Prevision) SetCentre(c *Centre) { linkCentre(c, p) }

// SetRefannee links p to a through linkAnnee so the back-pointer stays in step.
func (p *Prevision) SetRefannee(a *Annee) { linkAnnee(a, p) }

// linkCentre makes c and p point at each other. Either may be nil: a nil c
// detaches p from its centre, a nil p detaches c from its prevision. Old
// partners on both sides are cleared before the new link is made.
func linkCentre(c *Centre, p *Prevision) {
	if p != nil && p.Centre != nil && p.Centre != c {
		p.Centre.Prevision = nil
	}
	if c != nil && c.Prevision != nil && c.Prevision != p {
		c.Prevision.Centre = nil
		c.Prevision.CentreID = nil
	}
	if c != nil {
		c.Prevision = p
	}
	if p != nil {
		p.Centre = c
		p.CentreID = idOf(c)
	}
}

// linkAnnee is linkCentre for the year side.
func linkAnnee(a *Annee, p *Prevision) {
	if p != nil && p.Refannee != nil && p.Refannee != a {
		p.Refannee.Prevision = nil
	}
	if a != nil && a.Prevision != nil && a.Prevision != p {
		a.Prevision.Refannee = nil
		a.Prevision.RefanneeID = nil
	}
	if a != nil {
		a.Prevision = p
	}
	if p != nil {
		p.Refannee = a
		p.RefanneeID = idOf(a)
	}
}
