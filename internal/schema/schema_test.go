package schema_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/gestioneau/internal/catalog"
	"github.com/diewo77/gestioneau/internal/dto"
	"github.com/diewo77/gestioneau/internal/models"
	"github.com/diewo77/gestioneau/internal/schema"
)

func strp(s string) *string { return &s }
func i64(n int64) *int64    { return &n }

func TestDecodeFicheRow(t *testing.T) {
	row := schema.MapRow{
		"fiche_id":           int64(7),
		"fiche_prj_appuis":   "X",
		"fiche_nb_usagers":   int64(3),
		"fiche_longitude":    1.5,
		"fiche_latitude":     12.0,
		"fiche_parcelle_id":  int64(9),
		"fiche_prevision_id": int64(2),
	}

	f, err := catalog.FicheSuiviOuvrage.Decode(row, "fiche")
	require.NoError(t, err)

	assert.Equal(t, int64(7), f.ID)
	assert.Equal(t, "X", *f.PrjAppuis)
	assert.Equal(t, int64(3), *f.NbUsagers)
	assert.Equal(t, float32(1.5), *f.Longitude)
	assert.Equal(t, float32(12.0), *f.Latitude)
	assert.Equal(t, int64(9), *f.ParcelleID)
	assert.Equal(t, int64(2), *f.PrevisionID)
	assert.Nil(t, f.Parcelle)
	assert.Nil(t, f.Prevision)

	// Required columns absent from the row stay nil.
	assert.Nil(t, f.NomBenef)
	assert.Nil(t, f.DateRemiseDevis)
	assert.Nil(t, f.MaconID)
}

func TestProjectionStopsAtOneHop(t *testing.T) {
	lot := &models.Lot{Lookup: models.Lookup{ID: 4, Libelle: strp("L4")}}
	parcelle := &models.Parcelle{Lookup: models.Lookup{ID: 9, Libelle: strp("P9")}}
	parcelle.SetLot(lot)

	f := &models.FicheSuiviOuvrage{ID: 1}
	f.SetParcelle(parcelle)
	f.SetPrevision(&models.Prevision{ID: 2})

	d := catalog.FicheSuiviOuvrage.ToDTO(f)
	want := &schema.Ref{ID: i64(9), Libelle: strp("P9")}
	if diff := cmp.Diff(want, d.Parcelle); diff != "" {
		t.Errorf("parcelle projection mismatch (-want +got):\n%s", diff)
	}
	// Prevision is projected id-only.
	assert.Equal(t, &schema.Ref{ID: i64(2)}, d.Prevision)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, map[string]any{"id": float64(9), "libelle": "P9"}, wire["parcelle"])
	assert.Equal(t, map[string]any{"id": float64(2)}, wire["prevision"])
	assert.NotContains(t, wire, "macon")
}

func TestRoundTripKeepsForeignKeys(t *testing.T) {
	row := schema.MapRow{
		"e_id":               int64(7),
		"e_parcelle_id":      int64(9),
		"e_prevision_id":     int64(2),
		"e_macon_id":         nil,
		"e_date_fin_travaux": "2024-03-01 10:00:00",
		"parcelle_id":        int64(9),
		"parcelle_libelle":   "P9",
	}
	f, err := catalog.FicheSuiviOuvrage.DecodeJoined(row, "e")
	require.NoError(t, err)
	require.NotNil(t, f.Parcelle)

	d := catalog.FicheSuiviOuvrage.ToDTO(f)
	assert.Equal(t, "P9", *d.Parcelle.Libelle)

	back := catalog.FicheSuiviOuvrage.ToEntity(d)
	assert.Equal(t, f.ID, back.ID)
	assert.Equal(t, *f.ParcelleID, *back.ParcelleID)
	assert.Equal(t, *f.PrevisionID, *back.PrevisionID)
	assert.Nil(t, back.MaconID)
	assert.Nil(t, back.Parcelle, "reverse projection sets ids only")
	assert.True(t, f.DateFinTravaux.Equal(*back.DateFinTravaux))
}

func TestAbsentRelationProjectsToNil(t *testing.T) {
	d := catalog.Province.ToDTO(&models.Province{Lookup: models.Lookup{ID: 3}})
	assert.Nil(t, d.Region)
	assert.Nil(t, catalog.Province.ToDTO(nil))
	assert.Nil(t, catalog.Province.ToEntity(nil))
}

func TestTransientRelatedProjectsToNil(t *testing.T) {
	p := &models.Province{Lookup: models.Lookup{ID: 3}}
	p.SetRegion(&models.Region{Lookup: models.Lookup{Libelle: strp("Nord")}})
	assert.Nil(t, catalog.Province.ToDTO(p).Region, "no ref with id 0")

	p.Region.ID = 7
	p.RegionID = nil
	assert.Equal(t, &schema.Ref{ID: i64(7), Libelle: strp("Nord")}, catalog.Province.ToDTO(p).Region)

	p.Region.ID = 0
	p.RegionID = i64(9)
	assert.Equal(t, schema.RefTo(9), catalog.Province.ToDTO(p).Region, "falls back to the foreign key")

	rel, ok := catalog.FicheSuiviOuvrage.Relation("prevision")
	require.True(t, ok)
	assert.Equal(t, schema.ProfileID, rel.Profile())
}

func TestDecodeJoinedFromSQLRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"e_id", "e_libelle", "e_region_id", "region_id", "region_libelle"}).
			AddRow(int64(1), []byte("Kadiogo"), int64(5), int64(5), []byte("Centre")).
			AddRow(int64(2), []byte("Boulkiemde"), nil, nil, nil),
	)

	rows, err := db.Query("SELECT e.id AS e_id FROM province e")
	require.NoError(t, err)
	scanned, err := schema.ScanRows(rows)
	require.NoError(t, err)
	require.Len(t, scanned, 2)

	p1, err := catalog.Province.DecodeJoined(scanned[0], "e")
	require.NoError(t, err)
	assert.Equal(t, "Kadiogo", *p1.Libelle)
	require.NotNil(t, p1.Region)
	assert.Equal(t, int64(5), p1.Region.ID)
	assert.Equal(t, "Centre", *p1.Region.Libelle)
	assert.Equal(t, int64(5), *p1.RegionID)

	p2, err := catalog.Province.DecodeJoined(scanned[1], "e")
	require.NoError(t, err)
	assert.Nil(t, p2.Region)
	assert.Nil(t, p2.RegionID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecodeCoercionError(t *testing.T) {
	_, err := catalog.Region.Decode(schema.MapRow{"e_id": "abc"}, "e")
	require.Error(t, err)

	var ce *schema.CoercionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "e_id", ce.Column)
	assert.Equal(t, schema.KindID, ce.Kind)
}

func TestValidate(t *testing.T) {
	v := catalog.Centre.Validate(&dto.CentreDTO{Libelle: strp("C1")})
	assert.Equal(t, "required", v["responsable"])
	assert.Equal(t, "required", v["contact"])
	assert.NotContains(t, v, "libelle")

	// rue and porte are optional.
	f := catalog.FicheSuiviOuvrage.Validate(&dto.FicheSuiviOuvrageDTO{})
	assert.Contains(t, f, "prjAppuis")
	assert.Contains(t, f, "dateFinTravaux")
	assert.NotContains(t, f, "rue")
	assert.NotContains(t, f, "porte")
}

func TestPartialUpdate(t *testing.T) {
	c := &models.Centre{
		Lookup:      models.Lookup{ID: 1, Libelle: strp("Ancien")},
		Responsable: strp("Diallo"),
	}
	c.SetCentreRegroupement(&models.CentreRegroupement{Lookup: models.Lookup{ID: 3}})

	catalog.Centre.PartialUpdate(c, &dto.CentreDTO{
		Libelle:            strp("Nouveau"),
		CentreRegroupement: &schema.Ref{ID: i64(4)},
	})

	assert.Equal(t, "Nouveau", *c.Libelle)
	assert.Equal(t, "Diallo", *c.Responsable, "nil fields are ignored")
	assert.Equal(t, int64(4), *c.CentreRegroupementID)
	assert.Nil(t, c.CentreRegroupement)
}

func TestRelationAttachThroughSetter(t *testing.T) {
	rel, ok := catalog.Prevision.Relation("refannee")
	require.True(t, ok)
	assert.Equal(t, "refannee_id", rel.Column())

	a := &models.Annee{Lookup: models.Lookup{ID: 2024}}
	p := &models.Prevision{ID: 1}
	require.True(t, rel.Attach(p, a))
	assert.Same(t, p, a.Prevision)
	assert.Same(t, a, rel.Related(p))
	assert.Equal(t, int64(2024), *rel.ForeignKey(p))
	assert.Equal(t, schema.ProfileLabel, rel.Profile())

	assert.False(t, rel.Attach(p, &models.Centre{}), "wrong target type is refused")

	rel.Detach(p)
	assert.Nil(t, p.RefanneeID)
	assert.Nil(t, a.Prevision)
}

func TestSortColumn(t *testing.T) {
	col, ok := catalog.FicheSuiviOuvrage.SortColumn("dateRemiseDevis")
	assert.True(t, ok)
	assert.Equal(t, "date_remise_devis", col)

	col, ok = catalog.FicheSuiviOuvrage.SortColumn("id")
	assert.True(t, ok)
	assert.Equal(t, "id", col)

	_, ok = catalog.FicheSuiviOuvrage.SortColumn("password")
	assert.False(t, ok)
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"id", "libelle", "region_id"}, catalog.Province.Columns())
	assert.Equal(t, []string{"id", "libelle"}, catalog.Annee.Columns(), "owns-one adds no column")
}

func TestCoerce(t *testing.T) {
	when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		kind schema.Kind
		want any
	}{
		{"int32 id", int32(4), schema.KindID, int64(4)},
		{"bytes id", []byte("12"), schema.KindID, int64(12)},
		{"integer", int64(8), schema.KindInteger, 8},
		{"float64 to float32", 2.25, schema.KindFloat, float32(2.25)},
		{"text bytes", []byte("abc"), schema.KindText, "abc"},
		{"instant text", "2024-03-01T10:00:00Z", schema.KindInstant, when},
		{"instant sqlite", "2024-03-01 10:00:00", schema.KindInstant, when},
		{"nil", nil, schema.KindText, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.Coerce(tt.in, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := schema.Coerce(int64(1)<<40, schema.KindInteger)
	assert.Error(t, err, "out of int32 range")
	_, err = schema.Coerce(true, schema.KindText)
	assert.Error(t, err)
}
