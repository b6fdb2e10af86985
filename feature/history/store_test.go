package history

import (
	"context"
	"testing"
	"time"

	"csv-comparison/core/compare"
	"csv-comparison/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := NewStore(db)
	require.NoError(t, store.AutoMigrate())
	return store
}

func sampleResult() *compare.Result {
	return &compare.Result{
		ReferenceSource: "ref.csv",
		CandidateSource: "cand.csv",
		Date:            time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		ReferenceRows:   3,
		CandidateRows:   3,
		KeyDefinition:   "ID",
		Breaks: []compare.BreakDetail{
			{
				Type:           compare.BreakValueMismatch,
				Key:            "A",
				ReferenceRow:   1,
				CandidateRow:   1,
				Column:         "Price",
				ReferenceValue: "1.0",
				CandidateValue: "2.0",
				Description:    "Key:A, Reference Row:1, Value:1.0 != Candidate Row:1, Value:2.0",
			},
			{
				Type:         compare.BreakRowInCandidateNotInReference,
				Key:          "D",
				ReferenceRow: -1,
				CandidateRow: 3,
				Description:  "Key missing: D",
			},
		},
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	def := compare.Definition{Delimiter: ",", KeyColumns: []string{"ID"}, ToleranceType: compare.ToleranceAbsolute, ToleranceValue: 0.5}
	id, err := store.Save(ctx, def, sampleResult(), 1500*time.Millisecond)
	require.NoError(t, err)
	assert.NotZero(t, id)

	run, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ref.csv", run.ReferenceSource)
	assert.Equal(t, 2, run.BreakCount)
	assert.Equal(t, int64(1500), run.DurationMs)
	assert.Equal(t, def, run.Definition)
	require.Len(t, run.Breaks, 2)
	assert.Equal(t, "Price", run.Breaks[0].Column)
	assert.Equal(t, "D", run.Breaks[1].Key)

	result := run.Result()
	assert.Equal(t, sampleResult().Breaks, result.Breaks)
	assert.Equal(t, int64(3), result.CandidateRows)
	assert.True(t, result.HasBreaks())
}

func TestStore_GetNotFound(t *testing.T) {
	store := setupStore(t)

	_, err := store.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_List(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	def := compare.Definition{Delimiter: ","}

	for i := 0; i < 3; i++ {
		_, err := store.Save(ctx, def, sampleResult(), time.Second)
		require.NoError(t, err)
	}

	runs, err := store.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Greater(t, runs[0].ID, runs[1].ID)
	assert.Empty(t, runs[0].Breaks)

	runs, err = store.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStore_CheckSchema(t *testing.T) {
	store := setupStore(t)

	missing, err := store.CheckSchema()
	require.NoError(t, err)
	assert.Empty(t, missing)

	require.NoError(t, store.db.Exec("DROP TABLE breaks").Error)
	require.NoError(t, store.db.Exec("CREATE TABLE breaks (id INTEGER PRIMARY KEY, run_id INTEGER)").Error)

	missing, err = store.CheckSchema()
	require.NoError(t, err)
	assert.Contains(t, missing, "breaks.break_key")
	assert.Contains(t, missing, "breaks.column_name")
	assert.NotContains(t, missing, "breaks.run_id")
}

func TestStore_SaveError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `runs`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err = NewStore(db).Save(context.Background(), compare.Definition{Delimiter: ","}, sampleResult(), time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to save comparison run")
	assert.NoError(t, mock.ExpectationsWereMet())
}
