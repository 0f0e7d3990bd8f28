package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipgiuliani/sfgarden/internal/planting"
	"github.com/philipgiuliani/sfgarden/internal/seedling"
)

// passthroughConverter lets non-standard argument types (string slices
// for ANY($1), time.Time dates) reach the mock unconverted.
type passthroughConverter struct{}

func (passthroughConverter) ConvertValue(v interface{}) (driver.Value, error) {
	return driver.Value(v), nil
}

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.ValueConverterOption(passthroughConverter{}),
	)
	require.NoError(t, err)
	return New(db, "user-1"), mock, db
}

var testDate = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

// --- Gardens ---

func TestCreateGarden(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*INSERT INTO gardens .*RETURNING created_at`).
		WithArgs("home", "user-1", "Home Garden", 4, 4).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(testDate))

	g := &Garden{ID: "home", Name: "Home Garden", Columns: 4, Rows: 4}
	require.NoError(t, s.CreateGarden(context.Background(), g))
	assert.Equal(t, testDate, g.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGarden_NotFound(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT id, name, columns, rows, created_at FROM gardens`).
		WithArgs("missing", "user-1").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetGarden(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListGardens(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "columns", "rows", "created_at"}).
		AddRow("home", "Home Garden", 4, 4, testDate).
		AddRow("plot", "Allotment", 8, 6, testDate)
	mock.ExpectQuery(`(?s)SELECT id, name, columns, rows, created_at FROM gardens\s+WHERE user_id`).
		WithArgs("user-1").
		WillReturnRows(rows)

	gardens, err := s.ListGardens(context.Background())
	require.NoError(t, err)
	require.Len(t, gardens, 2)
	assert.Equal(t, "home", gardens[0].ID)
	assert.Equal(t, 8, gardens[1].Columns)
}

// --- Plantings ---

func TestAddPlanting_Defaults(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*INSERT INTO plantings .*RETURNING created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(testDate))

	p := &Planting{GardenID: "home", Square: "B3", Plant: "Tomato", Count: 2, PlantedOn: testDate}
	require.NoError(t, s.AddPlanting(context.Background(), p))
	assert.NotEmpty(t, p.ID, "missing ID should be generated")
	assert.Equal(t, planting.StatusActive, p.Status, "missing status should default to active")
}

func TestAddPlanting_InvalidStatus(t *testing.T) {
	s, _, db := newStoreWithMock(t)
	defer db.Close()

	p := &Planting{GardenID: "home", Square: "B3", Plant: "Tomato", Status: "wilting"}
	err := s.AddPlanting(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid planting status")
}

func TestActivePlantings(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "garden_id", "square", "plant", "variety", "count", "planted_on", "status", "created_at"}).
		AddRow("p1", "home", "A1", "Tomato", "San Marzano", 1, testDate, "active", testDate)
	mock.ExpectQuery(`(?s)FROM plantings\s+WHERE garden_id = \$1 AND user_id = \$2 AND status = 'active'`).
		WithArgs("home", "user-1").
		WillReturnRows(rows)

	plantings, err := s.ActivePlantings(context.Background(), "home")
	require.NoError(t, err)
	require.Len(t, plantings, 1)
	assert.Equal(t, "A1", plantings[0].Square)
	assert.Equal(t, planting.StatusActive, plantings[0].Status)
}

func TestUpdatePlantingStatus_NotFound(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE plantings SET status`).
		WithArgs("harvested", "missing", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdatePlantingStatus(context.Background(), "missing", planting.StatusHarvested)
	assert.ErrorIs(t, err, ErrNotFound)
}

// --- Seedlings ---

func TestAddSeedling(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT INTO seedlings`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	sd := seedling.New("Tomato", "", 6, testDate)
	require.NoError(t, s.AddSeedling(context.Background(), sd))
	assert.NotEmpty(t, sd.ID)
}

func TestListSeedlings_PhaseFilter(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "plant", "variety", "count", "phase", "sown_on", "phase_changed_on", "planting_id"}).
		AddRow("s1", "Tomato", "", 6, "hardening", testDate, testDate, "")
	mock.ExpectQuery(`(?s)FROM seedlings\s+WHERE user_id = \$1`).
		WithArgs("user-1", "hardening").
		WillReturnRows(rows)

	seedlings, err := s.ListSeedlings(context.Background(), seedling.PhaseHardening)
	require.NoError(t, err)
	require.Len(t, seedlings, 1)
	assert.Equal(t, seedling.PhaseHardening, seedlings[0].Phase)
}

func TestUpdateSeedlingPhase_NotFound(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE seedlings SET phase`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	sd := &seedling.Seedling{ID: "missing", Phase: seedling.PhaseGerminated, PhaseChangedOn: testDate}
	err := s.UpdateSeedlingPhase(context.Background(), sd)
	assert.ErrorIs(t, err, ErrNotFound)
}

// --- Harvests ---

func TestAddHarvest(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT INTO harvests`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	h := &Harvest{PlantingID: "p1", HarvestedOn: testDate, Amount: "6 fruits"}
	require.NoError(t, s.AddHarvest(context.Background(), h))
	assert.NotEmpty(t, h.ID, "missing ID should be generated")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListHarvests(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "planting_id", "harvested_on", "amount", "weight_grams", "notes"}).
		AddRow("h1", "p1", testDate, "6 fruits", int64(250), "first picking").
		AddRow("h2", "p1", testDate, "one basket", nil, "")
	mock.ExpectQuery(`(?s)FROM harvests\s+WHERE planting_id = \$1 AND user_id = \$2`).
		WithArgs("p1", "user-1").
		WillReturnRows(rows)

	harvests, err := s.ListHarvests(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, harvests, 2)
	require.NotNil(t, harvests[0].WeightGrams)
	assert.Equal(t, 250, *harvests[0].WeightGrams)
	assert.Nil(t, harvests[1].WeightGrams)
}

// --- Notes ---

func TestAddNote_InvalidCategory(t *testing.T) {
	s, _, db := newStoreWithMock(t)
	defer db.Close()

	n := &Note{GardenID: "home", Category: "rant", Body: "aphids again"}
	err := s.AddNote(context.Background(), n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid note category")
}

func TestAddNote_DefaultsCategory(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*INSERT INTO notes .*RETURNING created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(testDate))

	n := &Note{GardenID: "home", Body: "first sprouts"}
	require.NoError(t, s.AddNote(context.Background(), n))
	assert.Equal(t, "observation", n.Category)
}

func TestListNotes(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "garden_id", "category", "square", "planting_id", "body", "created_at"}).
		AddRow("n1", "home", "issue", "B3", "", "aphids on the kale", testDate).
		AddRow("n2", "home", "observation", "", "", "first sprouts", testDate)
	mock.ExpectQuery(`(?s)FROM notes\s+WHERE garden_id = \$1 AND user_id = \$2`).
		WithArgs("home", "user-1").
		WillReturnRows(rows)

	notes, err := s.ListNotes(context.Background(), "home")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "issue", notes[0].Category)
	assert.Equal(t, "B3", notes[0].Square)
}

// --- Catalog ---

func TestColumns(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"table_name", "column_name", "data_type", "is_nullable", "column_default"}).
		AddRow("gardens", "id", "text", "NO", "").
		AddRow("plantings", "variety", "text", "YES", "")
	mock.ExpectQuery(`(?s)FROM information_schema\.columns`).
		WillReturnRows(rows)

	columns, err := s.Columns(context.Background(), []string{"gardens", "plantings"})
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.False(t, columns[0].Nullable)
	assert.True(t, columns[1].Nullable)
}

func TestForeignKeys(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"table_name", "column_name", "ref_table", "ref_column"}).
		AddRow("plantings", "garden_id", "gardens", "id")
	mock.ExpectQuery(`(?s)constraint_type = 'FOREIGN KEY'`).
		WillReturnRows(rows)

	fks, err := s.ForeignKeys(context.Background(), []string{"plantings"})
	require.NoError(t, err)
	require.Len(t, fks, 1)
	assert.Equal(t, "gardens", fks[0].RefTable)
}

func TestChecks_QueryError(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)constraint_type = 'CHECK'`).
		WillReturnError(errors.New("permission denied"))

	_, err := s.Checks(context.Background(), []string{"plantings"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog query error")
}
