package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/gestioneau/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	return d
}

func TestMigrateCreatesEveryTable(t *testing.T) {
	d := openTestDB(t)
	require.NoError(t, Migrate(d, false, "", zap.NewNop()))

	for _, table := range []string{"region", "type_commune", "fiche_suivi_ouvrage", "prevision", "centre_regroupement"} {
		assert.True(t, d.Migrator().HasTable(table), table)
	}
	assert.True(t, d.Migrator().HasColumn(&models.FicheSuiviOuvrage{}, "modeevacuationeauusee_id"))
	assert.True(t, d.Migrator().HasColumn(&models.Commune{}, "typecommune_id"))
}

func TestSeedIdempotent(t *testing.T) {
	d := openTestDB(t)
	require.NoError(t, Migrate(d, false, "", zap.NewNop()))

	n, err := Seed(d)
	require.NoError(t, err)
	assert.Equal(t, len(baseTypeCommunes)+len(baseNatureOuvrages)+len(baseTypeHabitations), n)

	n, err = Seed(d)
	require.NoError(t, err)
	assert.Zero(t, n)

	var urbaine, rurale int64
	d.Model(&models.TypeCommune{}).Where("libelle = ?", "Urbaine").Count(&urbaine)
	d.Model(&models.TypeCommune{}).Where("libelle = ?", "Rurale").Count(&rurale)
	assert.Equal(t, int64(1), urbaine)
	assert.Equal(t, int64(1), rurale)
}
