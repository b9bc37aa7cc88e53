package catalog

import (
	"time"

	"github.com/diewo77/gestioneau/internal/dto"
	"github.com/diewo77/gestioneau/internal/models"
	"github.com/diewo77/gestioneau/internal/schema"
)

type (
	fiche    = models.FicheSuiviOuvrage
	ficheDTO = dto.FicheSuiviOuvrageDTO
)

func ficheText(column, property string, ent func(*fiche) **string, d func(*ficheDTO) **string) *schema.Field[fiche, ficheDTO] {
	return schema.Text(column, property, ent, d)
}

func ficheInt(column, property string, ent func(*fiche) **int, d func(*ficheDTO) **int) *schema.Field[fiche, ficheDTO] {
	return schema.Integer(column, property, ent, d)
}

var FicheSuiviOuvrage = schema.Define("FicheSuiviOuvrage", "fiche_suivi_ouvrage", "fichesuiviouvrage",
	func(e *fiche) *int64 { return &e.ID },
	func(d *ficheDTO) **int64 { return &d.ID },
).WithFields(
	ficheText("prj_appuis", "prjAppuis", func(e *fiche) **string { return &e.PrjAppuis }, func(d *ficheDTO) **string { return &d.PrjAppuis }),
	ficheText("nom_benef", "nomBenef", func(e *fiche) **string { return &e.NomBenef }, func(d *ficheDTO) **string { return &d.NomBenef }),
	ficheText("prenom_benef", "prenomBenef", func(e *fiche) **string { return &e.PrenomBenef }, func(d *ficheDTO) **string { return &d.PrenomBenef }),
	ficheText("profession_benef", "professionBenef", func(e *fiche) **string { return &e.ProfessionBenef }, func(d *ficheDTO) **string { return &d.ProfessionBenef }),
	schema.Long("nb_usagers", "nbUsagers", func(e *fiche) **int64 { return &e.NbUsagers }, func(d *ficheDTO) **int64 { return &d.NbUsagers }),
	ficheText("contacts", "contacts", func(e *fiche) **string { return &e.Contacts }, func(d *ficheDTO) **string { return &d.Contacts }),
	schema.Float("longitude", "longitude", func(e *fiche) **float32 { return &e.Longitude }, func(d *ficheDTO) **float32 { return &d.Longitude }),
	schema.Float("latitude", "latitude", func(e *fiche) **float32 { return &e.Latitude }, func(d *ficheDTO) **float32 { return &d.Latitude }),
	schema.Instant("date_remise_devis", "dateRemiseDevis", func(e *fiche) **time.Time { return &e.DateRemiseDevis }, func(d *ficheDTO) **time.Time { return &d.DateRemiseDevis }),
	schema.Instant("date_debut_travaux", "dateDebutTravaux", func(e *fiche) **time.Time { return &e.DateDebutTravaux }, func(d *ficheDTO) **time.Time { return &d.DateDebutTravaux }),
	schema.Instant("date_fin_travaux", "dateFinTravaux", func(e *fiche) **time.Time { return &e.DateFinTravaux }, func(d *ficheDTO) **time.Time { return &d.DateFinTravaux }),
	ficheText("rue", "rue", func(e *fiche) **string { return &e.Rue }, func(d *ficheDTO) **string { return &d.Rue }).Optional(),
	ficheText("porte", "porte", func(e *fiche) **string { return &e.Porte }, func(d *ficheDTO) **string { return &d.Porte }).Optional(),
	ficheText("cout_menage", "coutMenage", func(e *fiche) **string { return &e.CoutMenage }, func(d *ficheDTO) **string { return &d.CoutMenage }),
	ficheInt("subv_onea", "subvOnea", func(e *fiche) **int { return &e.SubvOnea }, func(d *ficheDTO) **int { return &d.SubvOnea }),
	ficheInt("subv_projet", "subvProjet", func(e *fiche) **int { return &e.SubvProjet }, func(d *ficheDTO) **int { return &d.SubvProjet }),
	ficheInt("autre_subv", "autreSubv", func(e *fiche) **int { return &e.AutreSubv }, func(d *ficheDTO) **int { return &d.AutreSubv }),
	ficheInt("toles", "toles", func(e *fiche) **int { return &e.Toles }, func(d *ficheDTO) **int { return &d.Toles }),
	ficheText("animateur", "animateur", func(e *fiche) **string { return &e.Animateur }, func(d *ficheDTO) **string { return &d.Animateur }),
	ficheText("superviseur", "superviseur", func(e *fiche) **string { return &e.Superviseur }, func(d *ficheDTO) **string { return &d.Superviseur }),
	ficheText("controleur", "controleur", func(e *fiche) **string { return &e.Controleur }, func(d *ficheDTO) **string { return &d.Controleur }),
).WithRelations(
	schema.BelongsTo("parcelle", Parcelle, schema.ProfileLabel,
		func(e *fiche) **int64 { return &e.ParcelleID },
		func(e *fiche) **models.Parcelle { return &e.Parcelle },
		(*fiche).SetParcelle,
		func(d *ficheDTO) **schema.Ref { return &d.Parcelle }),
	// Prevision has no label of its own.
	schema.BelongsTo("prevision", Prevision, schema.ProfileID,
		func(e *fiche) **int64 { return &e.PrevisionID },
		func(e *fiche) **models.Prevision { return &e.Prevision },
		(*fiche).SetPrevision,
		func(d *ficheDTO) **schema.Ref { return &d.Prevision }),
	schema.BelongsTo("natureouvrage", NatureOuvrage, schema.ProfileLabel,
		func(e *fiche) **int64 { return &e.NatureOuvrageID },
		func(e *fiche) **models.NatureOuvrage { return &e.NatureOuvrage },
		(*fiche).SetNatureOuvrage,
		func(d *ficheDTO) **schema.Ref { return &d.NatureOuvrage }),
	schema.BelongsTo("typehabitation", TypeHabitation, schema.ProfileLabel,
		func(e *fiche) **int64 { return &e.TypeHabitationID },
		func(e *fiche) **models.TypeHabitation { return &e.TypeHabitation },
		(*fiche).SetTypeHabitation,
		func(d *ficheDTO) **schema.Ref { return &d.TypeHabitation }),
	schema.BelongsTo("sourceapprovep", SourceApprovEp, schema.ProfileLabel,
		func(e *fiche) **int64 { return &e.SourceApprovEpID },
		func(e *fiche) **models.SourceApprovEp { return &e.SourceApprovEp },
		(*fiche).SetSourceApprovEp,
		func(d *ficheDTO) **schema.Ref { return &d.SourceApprovEp }),
	schema.BelongsTo("modeevacuationeauusee", ModeEvacuationEauUsee, schema.ProfileLabel,
		func(e *fiche) **int64 { return &e.ModeEvacuationEauUseeID },
		func(e *fiche) **models.ModeEvacuationEauUsee { return &e.ModeEvacuationEauUsee },
		(*fiche).SetModeEvacuationEauUsee,
		func(d *ficheDTO) **schema.Ref { return &d.ModeEvacuationEauUsee }),
	schema.BelongsTo("modeevacexcreta", ModeEvacExcreta, schema.ProfileLabel,
		func(e *fiche) **int64 { return &e.ModeEvacExcretaID },
		func(e *fiche) **models.ModeEvacExcreta { return &e.ModeEvacExcreta },
		(*fiche).SetModeEvacExcreta,
		func(d *ficheDTO) **schema.Ref { return &d.ModeEvacExcreta }),
	schema.BelongsTo("macon", Macon, schema.ProfileLabel,
		func(e *fiche) **int64 { return &e.MaconID },
		func(e *fiche) **models.Macon { return &e.Macon },
		(*fiche).SetMacon,
		func(d *ficheDTO) **schema.Ref { return &d.Macon }),
	schema.BelongsTo("prefabricant", Prefabricant, schema.ProfileLabel,
		func(e *fiche) **int64 { return &e.PrefabricantID },
		func(e *fiche) **models.Prefabricant { return &e.Prefabricant },
		(*fiche).SetPrefabricant,
		func(d *ficheDTO) **schema.Ref { return &d.Prefabricant }),
)
