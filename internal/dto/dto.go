// Package dto holds the wire representation of each concept. Relations are
// always a one-hop schema.Ref, never a nested DTO.
package dto

import (
	"time"

	"github.com/diewo77/gestioneau/internal/schema"
)

// Ref is re-exported so handlers and clients can build nested references.
type Ref = schema.Ref

// LookupDTO is the wire shape of every label-only reference table.
type LookupDTO struct {
	ID      *int64  `json:"id"`
	Libelle *string `json:"libelle"`
}

type (
	RegionDTO                LookupDTO
	TypeCommuneDTO           LookupDTO
	TypeHabitationDTO        LookupDTO
	NatureOuvrageDTO         LookupDTO
	ModeEvacExcretaDTO       LookupDTO
	ModeEvacuationEauUseeDTO LookupDTO
	SourceApprovEpDTO        LookupDTO
	MaconDTO                 LookupDTO
	PrefabricantDTO          LookupDTO
	AnneeDTO                 LookupDTO
)

type ProvinceDTO struct {
	ID      *int64  `json:"id"`
	Libelle *string `json:"libelle"`
	Region  *Ref    `json:"region,omitempty"`
}

type CommuneDTO struct {
	ID          *int64  `json:"id"`
	Libelle     *string `json:"libelle"`
	Province    *Ref    `json:"province,omitempty"`
	TypeCommune *Ref    `json:"typecommune,omitempty"`
}

type LocaliteDTO struct {
	ID      *int64  `json:"id"`
	Libelle *string `json:"libelle"`
	Commune *Ref    `json:"commune,omitempty"`
}

type SecteurDTO struct {
	ID       *int64  `json:"id"`
	Libelle  *string `json:"libelle"`
	Localite *Ref    `json:"localite,omitempty"`
}

type SectionDTO struct {
	ID      *int64  `json:"id"`
	Libelle *string `json:"libelle"`
	Secteur *Ref    `json:"secteur,omitempty"`
}

type LotDTO struct {
	ID      *int64  `json:"id"`
	Libelle *string `json:"libelle"`
	Section *Ref    `json:"section,omitempty"`
}

type ParcelleDTO struct {
	ID      *int64  `json:"id"`
	Libelle *string `json:"libelle"`
	Lot     *Ref    `json:"lot,omitempty"`
}

type DirectionRegionaleDTO struct {
	ID          *int64  `json:"id"`
	Libelle     *string `json:"libelle"`
	Responsable *string `json:"responsable"`
	Contact     *string `json:"contact"`
}

type CentreRegroupementDTO struct {
	ID                 *int64  `json:"id"`
	Libelle            *string `json:"libelle"`
	Responsable        *string `json:"responsable"`
	Contact            *string `json:"contact"`
	DirectionRegionale *Ref    `json:"directionregionale,omitempty"`
}

type CentreDTO struct {
	ID                 *int64  `json:"id"`
	Libelle            *string `json:"libelle"`
	Responsable        *string `json:"responsable"`
	Contact            *string `json:"contact"`
	CentreRegroupement *Ref    `json:"centreregroupement,omitempty"`
}

type PrevisionDTO struct {
	ID         *int64 `json:"id"`
	NbLatrine  *int   `json:"nbLatrine"`
	NbPuisard  *int   `json:"nbPuisard"`
	NbPublic   *int   `json:"nbPublic"`
	NbScolaire *int   `json:"nbScolaire"`
	Centre     *Ref   `json:"centre,omitempty"`
	Refannee   *Ref   `json:"refannee,omitempty"`
}

type FicheSuiviOuvrageDTO struct {
	ID               *int64     `json:"id"`
	PrjAppuis        *string    `json:"prjAppuis"`
	NomBenef         *string    `json:"nomBenef"`
	PrenomBenef      *string    `json:"prenomBenef"`
	ProfessionBenef  *string    `json:"professionBenef"`
	NbUsagers        *int64     `json:"nbUsagers"`
	Contacts         *string    `json:"contacts"`
	Longitude        *float32   `json:"longitude"`
	Latitude         *float32   `json:"latitude"`
	DateRemiseDevis  *time.Time `json:"dateRemiseDevis"`
	DateDebutTravaux *time.Time `json:"dateDebutTravaux"`
	DateFinTravaux   *time.Time `json:"dateFinTravaux"`
	Rue              *string    `json:"rue,omitempty"`
	Porte            *string    `json:"porte,omitempty"`
	CoutMenage       *string    `json:"coutMenage"`
	SubvOnea         *int       `json:"subvOnea"`
	SubvProjet       *int       `json:"subvProjet"`
	AutreSubv        *int       `json:"autreSubv"`
	Toles            *int       `json:"toles"`
	Animateur        *string    `json:"animateur"`
	Superviseur      *string    `json:"superviseur"`
	Controleur       *string    `json:"controleur"`

	Parcelle              *Ref `json:"parcelle,omitempty"`
	Prevision             *Ref `json:"prevision,omitempty"`
	NatureOuvrage         *Ref `json:"natureouvrage,omitempty"`
	TypeHabitation        *Ref `json:"typehabitation,omitempty"`
	SourceApprovEp        *Ref `json:"sourceapprovep,omitempty"`
	ModeEvacuationEauUsee *Ref `json:"modeevacuationeauusee,omitempty"`
	ModeEvacExcreta       *Ref `json:"modeevacexcreta,omitempty"`
	Macon                 *Ref `json:"macon,omitempty"`
	Prefabricant          *Ref `json:"prefabricant,omitempty"`
}
