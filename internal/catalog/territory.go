package catalog

import (
	"github.com/diewo77/gestioneau/internal/dto"
	"github.com/diewo77/gestioneau/internal/models"
	"github.com/diewo77/gestioneau/internal/schema"
)

// labelled declares a concept whose only scalar is libelle.
func labelled[E, D any](name, table, index string, lk func(*E) *models.Lookup, id func(*D) **int64, libelle func(*D) **string) *schema.Concept[E, D] {
	return schema.Define(name, table, index,
		func(e *E) *int64 { return &lk(e).ID }, id,
	).WithFields(
		schema.Text("libelle", "libelle", func(e *E) **string { return &lk(e).Libelle }, libelle),
	)
}

var Province = labelled("Province", "province", "province",
	func(e *models.Province) *models.Lookup { return &e.Lookup },
	func(d *dto.ProvinceDTO) **int64 { return &d.ID },
	func(d *dto.ProvinceDTO) **string { return &d.Libelle },
).WithRelations(
	schema.BelongsTo("region", Region, schema.ProfileLabel,
		func(e *models.Province) **int64 { return &e.RegionID },
		func(e *models.Province) **models.Region { return &e.Region },
		(*models.Province).SetRegion,
		func(d *dto.ProvinceDTO) **schema.Ref { return &d.Region }),
)

var Commune = labelled("Commune", "commune", "commune",
	func(e *models.Commune) *models.Lookup { return &e.Lookup },
	func(d *dto.CommuneDTO) **int64 { return &d.ID },
	func(d *dto.CommuneDTO) **string { return &d.Libelle },
).WithRelations(
	schema.BelongsTo("province", Province, schema.ProfileLabel,
		func(e *models.Commune) **int64 { return &e.ProvinceID },
		func(e *models.Commune) **models.Province { return &e.Province },
		(*models.Commune).SetProvince,
		func(d *dto.CommuneDTO) **schema.Ref { return &d.Province }),
	schema.BelongsTo("typecommune", TypeCommune, schema.ProfileLabel,
		func(e *models.Commune) **int64 { return &e.TypeCommuneID },
		func(e *models.Commune) **models.TypeCommune { return &e.TypeCommune },
		(*models.Commune).SetTypeCommune,
		func(d *dto.CommuneDTO) **schema.Ref { return &d.TypeCommune }),
)

var Localite = labelled("Localite", "localite", "localite",
	func(e *models.Localite) *models.Lookup { return &e.Lookup },
	func(d *dto.LocaliteDTO) **int64 { return &d.ID },
	func(d *dto.LocaliteDTO) **string { return &d.Libelle },
).WithRelations(
	schema.BelongsTo("commune", Commune, schema.ProfileLabel,
		func(e *models.Localite) **int64 { return &e.CommuneID },
		func(e *models.Localite) **models.Commune { return &e.Commune },
		(*models.Localite).SetCommune,
		func(d *dto.LocaliteDTO) **schema.Ref { return &d.Commune }),
)

var Secteur = labelled("Secteur", "secteur", "secteur",
	func(e *models.Secteur) *models.Lookup { return &e.Lookup },
	func(d *dto.SecteurDTO) **int64 { return &d.ID },
	func(d *dto.SecteurDTO) **string { return &d.Libelle },
).WithRelations(
	schema.BelongsTo("localite", Localite, schema.ProfileLabel,
		func(e *models.Secteur) **int64 { return &e.LocaliteID },
		func(e *models.Secteur) **models.Localite { return &e.Localite },
		(*models.Secteur).SetLocalite,
		func(d *dto.SecteurDTO) **schema.Ref { return &d.Localite }),
)

var Section = labelled("Section", "section", "section",
	func(e *models.Section) *models.Lookup { return &e.Lookup },
	func(d *dto.SectionDTO) **int64 { return &d.ID },
	func(d *dto.SectionDTO) **string { return &d.Libelle },
).WithRelations(
	schema.BelongsTo("secteur", Secteur, schema.ProfileLabel,
		func(e *models.Section) **int64 { return &e.SecteurID },
		func(e *models.Section) **models.Secteur { return &e.Secteur },
		(*models.Section).SetSecteur,
		func(d *dto.SectionDTO) **schema.Ref { return &d.Secteur }),
)

var Lot = labelled("Lot", "lot", "lot",
	func(e *models.Lot) *models.Lookup { return &e.Lookup },
	func(d *dto.LotDTO) **int64 { return &d.ID },
	func(d *dto.LotDTO) **string { return &d.Libelle },
).WithRelations(
	schema.BelongsTo("section", Section, schema.ProfileLabel,
		func(e *models.Lot) **int64 { return &e.SectionID },
		func(e *models.Lot) **models.Section { return &e.Section },
		(*models.Lot).SetSection,
		func(d *dto.LotDTO) **schema.Ref { return &d.Section }),
)

var Parcelle = labelled("Parcelle", "parcelle", "parcelle",
	func(e *models.Parcelle) *models.Lookup { return &e.Lookup },
	func(d *dto.ParcelleDTO) **int64 { return &d.ID },
	func(d *dto.ParcelleDTO) **string { return &d.Libelle },
).WithRelations(
	schema.BelongsTo("lot", Lot, schema.ProfileLabel,
		func(e *models.Parcelle) **int64 { return &e.LotID },
		func(e *models.Parcelle) **models.Lot { return &e.Lot },
		(*models.Parcelle).SetLot,
		func(d *dto.ParcelleDTO) **schema.Ref { return &d.Lot }),
)
