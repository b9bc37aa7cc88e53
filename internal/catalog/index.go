package catalog

import "github.com/diewo77/gestioneau/internal/schema"

// All lists every concept, referenced tables before the tables pointing at them.
func All() []schema.Table {
	return []schema.Table{
		Region, TypeCommune, TypeHabitation, NatureOuvrage, ModeEvacExcreta,
		ModeEvacuationEauUsee, SourceApprovEp, Macon, Prefabricant, Annee,
		Province, Commune, Localite, Secteur, Section, Lot, Parcelle,
		DirectionRegionale, CentreRegroupement, Centre,
		Prevision, FicheSuiviOuvrage,
	}
}

var paths = map[string]string{
	"Region":                "regions",
	"TypeCommune":           "type-communes",
	"TypeHabitation":        "type-habitations",
	"NatureOuvrage":         "nature-ouvrages",
	"ModeEvacExcreta":       "mode-evac-excretas",
	"ModeEvacuationEauUsee": "mode-evacuation-eau-usees",
	"SourceApprovEp":        "source-approv-eps",
	"Macon":                 "macons",
	"Prefabricant":          "prefabricants",
	"Annee":                 "annees",
	"Province":              "provinces",
	"Commune":               "communes",
	"Localite":              "localites",
	"Secteur":               "secteurs",
	"Section":               "sections",
	"Lot":                   "lots",
	"Parcelle":              "parcelles",
	"DirectionRegionale":    "direction-regionales",
	"CentreRegroupement":    "centre-regroupements",
	"Centre":                "centres",
	"Prevision":             "previsions",
	"FicheSuiviOuvrage":     "fiche-suivi-ouvrages",
}

// Path returns the REST collection segment of a concept, e.g. "fiche-suivi-ouvrages".
func Path(t schema.Table) string {
	return paths[t.Name()]
}
