package models

import (
	"fmt"
	"time"
)

// FicheSuiviOuvrage tracks the construction of one household sanitation work.
type FicheSuiviOuvrage struct {
	ID               int64      `gorm:"primaryKey" json:"id"`
	PrjAppuis        *string    `gorm:"column:prj_appuis;size:255;not null" json:"prjAppuis"`
	NomBenef         *string    `gorm:"column:nom_benef;size:255;not null" json:"nomBenef"`
	PrenomBenef      *string    `gorm:"column:prenom_benef;size:255;not null" json:"prenomBenef"`
	ProfessionBenef  *string    `gorm:"column:profession_benef;size:255;not null" json:"professionBenef"`
	NbUsagers        *int64     `gorm:"column:nb_usagers;not null" json:"nbUsagers"`
	Contacts         *string    `gorm:"column:contacts;size:255;not null" json:"contacts"`
	Longitude        *float32   `gorm:"column:longitude;not null" json:"longitude"`
	Latitude         *float32   `gorm:"column:latitude;not null" json:"latitude"`
	DateRemiseDevis  *time.Time `gorm:"column:date_remise_devis;not null" json:"dateRemiseDevis"`
	DateDebutTravaux *time.Time `gorm:"column:date_debut_travaux;not null" json:"dateDebutTravaux"`
	DateFinTravaux   *time.Time `gorm:"column:date_fin_travaux;not null" json:"dateFinTravaux"`
	Rue              *string    `gorm:"column:rue;size:255" json:"rue,omitempty"`
	Porte            *string    `gorm:"column:porte;size:255" json:"porte,omitempty"`
	CoutMenage       *string    `gorm:"column:cout_menage;size:255;not null" json:"coutMenage"`
	SubvOnea         *int       `gorm:"column:subv_onea;not null" json:"subvOnea"`
	SubvProjet       *int       `gorm:"column:subv_projet;not null" json:"subvProjet"`
	AutreSubv        *int       `gorm:"column:autre_subv;not null" json:"autreSubv"`
	Toles            *int       `gorm:"column:toles;not null" json:"toles"`
	Animateur        *string    `gorm:"column:animateur;size:255;not null" json:"animateur"`
	Superviseur      *string    `gorm:"column:superviseur;size:255;not null" json:"superviseur"`
	Controleur       *string    `gorm:"column:controleur;size:255;not null" json:"controleur"`

	ParcelleID              *int64                 `gorm:"column:parcelle_id;index" json:"parcelleId,omitempty"`
	Parcelle                *Parcelle              `gorm:"-" json:"parcelle,omitempty"`
	PrevisionID             *int64                 `gorm:"column:prevision_id;index" json:"previsionId,omitempty"`
	Prevision               *Prevision             `gorm:"-" json:"prevision,omitempty"`
	NatureOuvrageID         *int64                 `gorm:"column:natureouvrage_id;index" json:"natureouvrageId,omitempty"`
	NatureOuvrage           *NatureOuvrage         `gorm:"-" json:"natureouvrage,omitempty"`
	TypeHabitationID        *int64                 `gorm:"column:typehabitation_id;index" json:"typehabitationId,omitempty"`
	TypeHabitation          *TypeHabitation        `gorm:"-" json:"typehabitation,omitempty"`
	SourceApprovEpID        *int64                 `gorm:"column:sourceapprovep_id;index" json:"sourceapprovepId,omitempty"`
	SourceApprovEp          *SourceApprovEp        `gorm:"-" json:"sourceapprovep,omitempty"`
	ModeEvacuationEauUseeID *int64                 `gorm:"column:modeevacuationeauusee_id;index" json:"modeevacuationeauuseeId,omitempty"`
	ModeEvacuationEauUsee   *ModeEvacuationEauUsee `gorm:"-" json:"modeevacuationeauusee,omitempty"`
	ModeEvacExcretaID       *int64                 `gorm:"column:modeevacexcreta_id;index" json:"modeevacexcretaId,omitempty"`
	ModeEvacExcreta         *ModeEvacExcreta       `gorm:"-" json:"modeevacexcreta,omitempty"`
	MaconID                 *int64                 `gorm:"column:macon_id;index" json:"maconId,omitempty"`
	Macon                   *Macon                 `gorm:"-" json:"macon,omitempty"`
	PrefabricantID          *int64                 `gorm:"column:prefabricant_id;index" json:"prefabricantId,omitempty"`
	Prefabricant            *Prefabricant          `gorm:"-" json:"prefabricant,omitempty"`
}

func (FicheSuiviOuvrage) TableName() string { return "fiche_suivi_ouvrage" }
func (f *FicheSuiviOuvrage) GetID() int64   { return f.ID }

func (f *FicheSuiviOuvrage) Equal(o *FicheSuiviOuvrage) bool { return Equal(f, o) }

func (f *FicheSuiviOuvrage) String() string {
	return fmt.Sprintf("FicheSuiviOuvrage{id=%d, prjAppuis=%s, nomBenef=%s, prenomBenef=%s, nbUsagers=%s, longitude=%s, latitude=%s}",
		f.ID, quote(f.PrjAppuis), quote(f.NomBenef), quote(f.PrenomBenef), show(f.NbUsagers), show(f.Longitude), show(f.Latitude))
}

func (f *FicheSuiviOuvrage) SetParcelle(p *Parcelle) {
	f.Parcelle = p
	f.ParcelleID = idOf(p)
}

func (f *FicheSuiviOuvrage) SetPrevision(p *Prevision) {
	f.Prevision = p
	f.PrevisionID = idOf(p)
}

func (f *FicheSuiviOuvrage) SetNatureOuvrage(n *NatureOuvrage) {
	f.NatureOuvrage = n
	f.NatureOuvrageID = idOf(n)
}

func (f *FicheSuiviOuvrage) SetTypeHabitation(t *TypeHabitation) {
	f.TypeHabitation = t
	f.TypeHabitationID = idOf(t)
}

func (f *FicheSuiviOuvrage) SetSourceApprovEp(s *SourceApprovEp) {
	f.SourceApprovEp = s
	f.SourceApprovEpID = idOf(s)
}

func (f *FicheSuiviOuvrage) SetModeEvacuationEauUsee(m *ModeEvacuationEauUsee) {
	f.ModeEvacuationEauUsee = m
	f.ModeEvacuationEauUseeID = idOf(m)
}

func (f *FicheSuiviOuvrage) SetModeEvacExcreta(m *ModeEvacExcreta) {
	f.ModeEvacExcreta = m
	f.ModeEvacExcretaID = idOf(m)
}

func (f *FicheSuiviOuvrage) SetMacon(m *Macon) {
	f.Macon = m
	f.MaconID = idOf(m)
}

func (f *FicheSuiviOuvrage) SetPrefabricant(p *Prefabricant) {
	f.Prefabricant = p
	f.PrefabricantID = idOf(p)
}
