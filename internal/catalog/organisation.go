package catalog

import (
	"github.com/diewo77/gestioneau/internal/dto"
	"github.com/diewo77/gestioneau/internal/models"
	"github.com/diewo77/gestioneau/internal/schema"
)

var DirectionRegionale = labelled("DirectionRegionale", "direction_regionale", "directionregionale",
	func(e *models.DirectionRegionale) *models.Lookup { return &e.Lookup },
	func(d *dto.DirectionRegionaleDTO) **int64 { return &d.ID },
	func(d *dto.DirectionRegionaleDTO) **string { return &d.Libelle },
).WithFields(
	schema.Text("responsable", "responsable",
		func(e *models.DirectionRegionale) **string { return &e.Responsable },
		func(d *dto.DirectionRegionaleDTO) **string { return &d.Responsable }),
	schema.Text("contact", "contact",
		func(e *models.DirectionRegionale) **string { return &e.Contact },
		func(d *dto.DirectionRegionaleDTO) **string { return &d.Contact }),
)

var CentreRegroupement = labelled("CentreRegroupement", "centre_regroupement", "centreregroupement",
	func(e *models.CentreRegroupement) *models.Lookup { return &e.Lookup },
	func(d *dto.CentreRegroupementDTO) **int64 { return &d.ID },
	func(d *dto.CentreRegroupementDTO) **string { return &d.Libelle },
).WithFields(
	schema.Text("responsable", "responsable",
		func(e *models.CentreRegroupement) **string { return &e.Responsable },
		func(d *dto.CentreRegroupementDTO) **string { return &d.Responsable }),
	schema.Text("contact", "contact",
		func(e *models.CentreRegroupement) **string { return &e.Contact },
		func(d *dto.CentreRegroupementDTO) **string { return &d.Contact }),
).WithRelations(
	schema.BelongsTo("directionregionale", DirectionRegionale, schema.ProfileLabel,
		func(e *models.CentreRegroupement) **int64 { return &e.DirectionRegionaleID },
		func(e *models.CentreRegroupement) **models.DirectionRegionale { return &e.DirectionRegionale },
		(*models.CentreRegroupement).SetDirectionRegionale,
		func(d *dto.CentreRegroupementDTO) **schema.Ref { return &d.DirectionRegionale }),
)

var Centre = labelled("Centre", "centre", "centre",
	func(e *models.Centre) *models.Lookup { return &e.Lookup },
	func(d *dto.CentreDTO) **int64 { return &d.ID },
	func(d *dto.CentreDTO) **string { return &d.Libelle },
).WithFields(
	schema.Text("responsable", "responsable",
		func(e *models.Centre) **string { return &e.Responsable },
		func(d *dto.CentreDTO) **string { return &d.Responsable }),
	schema.Text("contact", "contact",
		func(e *models.Centre) **string { return &e.Contact },
		func(d *dto.CentreDTO) **string { return &d.Contact }),
).WithRelations(
	schema.BelongsTo("centreregroupement", CentreRegroupement, schema.ProfileLabel,
		func(e *models.Centre) **int64 { return &e.CentreRegroupementID },
		func(e *models.Centre) **models.CentreRegroupement { return &e.CentreRegroupement },
		(*models.Centre).SetCentreRegroupement,
		func(d *dto.CentreDTO) **schema.Ref { return &d.CentreRegroupement }),
	schema.OwnsOne[models.Centre, dto.CentreDTO]("prevision", "prevision", "centre_id"),
)

// Prevision has no libelle: its centre and year project as {id, libelle}
// but it is itself referenced id-only.
var Prevision = schema.Define("Prevision", "prevision", "prevision",
	func(e *models.Prevision) *int64 { return &e.ID },
	func(d *dto.PrevisionDTO) **int64 { return &d.ID },
).WithFields(
	schema.Integer("nb_latrine", "nbLatrine",
		func(e *models.Prevision) **int { return &e.NbLatrine },
		func(d *dto.PrevisionDTO) **int { return &d.NbLatrine }),
	schema.Integer("nb_puisard", "nbPuisard",
		func(e *models.Prevision) **int { return &e.NbPuisard },
		func(d *dto.PrevisionDTO) **int { return &d.NbPuisard }),
	schema.Integer("nb_public", "nbPublic",
		func(e *models.Prevision) **int { return &e.NbPublic },
		func(d *dto.PrevisionDTO) **int { return &d.NbPublic }),
	schema.Integer("nb_scolaire", "nbScolaire",
		func(e *models.Prevision) **int { return &e.NbScolaire },
		func(d *dto.PrevisionDTO) **int { return &d.NbScolaire }),
).WithRelations(
	schema.BelongsTo("centre", Centre, schema.ProfileLabel,
		func(e *models.Prevision) **int64 { return &e.CentreID },
		func(e *models.Prevision) **models.Centre { return &e.Centre },
		(*models.Prevision).SetCentre,
		func(d *dto.PrevisionDTO) **schema.Ref { return &d.Centre }),
	schema.BelongsTo("refannee", Annee, schema.ProfileLabel,
		func(e *models.Prevision) **int64 { return &e.RefanneeID },
		func(e *models.Prevision) **models.Annee { return &e.Refannee },
		(*models.Prevision).SetRefannee,
		func(d *dto.PrevisionDTO) **schema.Ref { return &d.Refannee }),
)
