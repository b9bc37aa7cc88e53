package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/gestioneau/internal/models"
)

// Baseline reference rows. Seed inserts the missing ones only.
var (
	baseTypeCommunes    = []string{"Urbaine", "Rurale"}
	baseNatureOuvrages  = []string{"Latrine", "Puisard", "Latrine publique", "Latrine scolaire"}
	baseTypeHabitations = []string{"Cour commune", "Villa", "Case"}
)

// Seed inserts baseline lookup rows and reports how many were created.
func Seed(db *gorm.DB) (int, error) {
	created := 0
	for _, l := range baseTypeCommunes {
		n, err := seedLookup(db, &models.TypeCommune{}, l, func() any { return &models.TypeCommune{Lookup: lookup(l)} })
		if err != nil {
			return created, err
		}
		created += n
	}
	for _, l := range baseNatureOuvrages {
		n, err := seedLookup(db, &models.NatureOuvrage{}, l, func() any { return &models.NatureOuvrage{Lookup: lookup(l)} })
		if err != nil {
			return created, err
		}
		created += n
	}
	for _, l := range baseTypeHabitations {
		n, err := seedLookup(db, &models.TypeHabitation{}, l, func() any { return &models.TypeHabitation{Lookup: lookup(l)} })
		if err != nil {
			return created, err
		}
		created += n
	}
	return created, nil
}

func lookup(libelle string) models.Lookup {
	return models.Lookup{Libelle: &libelle}
}

func seedLookup(db *gorm.DB, model any, libelle string, build func() any) (int, error) {
	err := db.Model(model).Where("libelle = ?", libelle).First(model).Error
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("seed %T %q: %w", model, libelle, err)
	}
	if err := db.Create(build()).Error; err != nil {
		return 0, fmt.Errorf("seed %T %q: %w", model, libelle, err)
	}
	return 1, nil
}
