// Package catalog declares every persisted concept once: its columns, its
// relations and the projection profile of each relation.
package catalog

import (
	"github.com/diewo77/gestioneau/internal/dto"
	"github.com/diewo77/gestioneau/internal/models"
	"github.com/diewo77/gestioneau/internal/schema"
)

// lookup declares a label-only reference table.
func lookup[E, D any](name, table, index string, lk func(*E) *models.Lookup, dl func(*D) *dto.LookupDTO) *schema.Concept[E, D] {
	return schema.Define(name, table, index,
		func(e *E) *int64 { return &lk(e).ID },
		func(d *D) **int64 { return &dl(d).ID },
	).WithFields(
		schema.Text("libelle", "libelle",
			func(e *E) **string { return &lk(e).Libelle },
			func(d *D) **string { return &dl(d).Libelle }),
	)
}

var (
	Region = lookup("Region", "region", "region",
		func(e *models.Region) *models.Lookup { return &e.Lookup },
		func(d *dto.RegionDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) })

	TypeCommune = lookup("TypeCommune", "type_commune", "typecommune",
		func(e *models.TypeCommune) *models.Lookup { return &e.Lookup },
		func(d *dto.TypeCommuneDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) })

	TypeHabitation = lookup("TypeHabitation", "type_habitation", "typehabitation",
		func(e *models.TypeHabitation) *models.Lookup { return &e.Lookup },
		func(d *dto.TypeHabitationDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) })

	NatureOuvrage = lookup("NatureOuvrage", "nature_ouvrage", "natureouvrage",
		func(e *models.NatureOuvrage) *models.Lookup { return &e.Lookup },
		func(d *dto.NatureOuvrageDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) })

	ModeEvacExcreta = lookup("ModeEvacExcreta", "mode_evac_excreta", "modeevacexcreta",
		func(e *models.ModeEvacExcreta) *models.Lookup { return &e.Lookup },
		func(d *dto.ModeEvacExcretaDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) })

	ModeEvacuationEauUsee = lookup("ModeEvacuationEauUsee", "mode_evacuation_eau_usee", "modeevacuationeauusee",
		func(e *models.ModeEvacuationEauUsee) *models.Lookup { return &e.Lookup },
		func(d *dto.ModeEvacuationEauUseeDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) })

	SourceApprovEp = lookup("SourceApprovEp", "source_approv_ep", "sourceapprovep",
		func(e *models.SourceApprovEp) *models.Lookup { return &e.Lookup },
		func(d *dto.SourceApprovEpDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) })

	Macon = lookup("Macon", "macon", "macon",
		func(e *models.Macon) *models.Lookup { return &e.Lookup },
		func(d *dto.MaconDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) })

	Prefabricant = lookup("Prefabricant", "prefabricant", "prefabricant",
		func(e *models.Prefabricant) *models.Lookup { return &e.Lookup },
		func(d *dto.PrefabricantDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) })

	Annee = lookup("Annee", "annee", "annee",
		func(e *models.Annee) *models.Lookup { return &e.Lookup },
		func(d *dto.AnneeDTO) *dto.LookupDTO { return (*dto.LookupDTO)(d) },
	).WithRelations(
		schema.OwnsOne[models.Annee, dto.AnneeDTO]("prevision", "prevision", "refannee_id"),
	)
)
