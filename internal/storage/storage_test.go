package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStorage needs a reachable libsql server, e.g.
// KEIMA_TEST_DATABASE_URL=http://127.0.0.1:8080 from `turso dev`.
func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	url := os.Getenv("KEIMA_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("KEIMA_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	st, err := Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = st.DB.ExecContext(ctx, "DELETE FROM workout_sets")
	require.NoError(t, err)
	_, err = st.DB.ExecContext(ctx, "DELETE FROM workouts")
	require.NoError(t, err)
	return st
}

func testLog(start time.Time, sets int) *models.WorkoutLog {
	wl := &models.WorkoutLog{
		ID:           uuid.New().String(),
		TemplateID:   "push",
		TemplateName: "Treino A - Push",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	}
	for i := 0; i < sets; i++ {
		wl.Sets = append(wl.Sets, models.WorkoutSet{
			ID:        uuid.New().String(),
			Exercise:  i % 2,
			Weight:    60,
			Reps:      10,
			RPE:       8,
			Timestamp: start.Add(time.Duration(i) * time.Minute),
		})
	}
	return wl
}

func TestOpenWithoutURL(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSaveAndListWorkouts(t *testing.T) {
	st := openTestStorage(t)
	ctx := context.Background()
	base := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)

	older := testLog(base, 3)
	newer := testLog(base.Add(48*time.Hour), 2)
	require.NoError(t, st.SaveWorkout(ctx, older))
	require.NoError(t, st.SaveWorkout(ctx, newer))

	n, err := st.CountWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	exists, err := st.WorkoutExists(ctx, older.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	workouts, err := st.ListWorkouts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, newer.ID, workouts[0].ID)
	assert.Len(t, workouts[0].Sets, 2)
	assert.True(t, workouts[0].StartTime.Equal(newer.StartTime))
}

func TestSaveWorkoutTwiceKeepsOneRow(t *testing.T) {
	st := openTestStorage(t)
	ctx := context.Background()
	wl := testLog(time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC), 2)

	require.NoError(t, st.SaveWorkout(ctx, wl))
	require.NoError(t, st.SaveWorkout(ctx, wl))

	n, err := st.CountWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	workouts, err := st.ListWorkouts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Len(t, workouts[0].Sets, 2)
}

func TestCountWorkoutsSince(t *testing.T) {
	st := openTestStorage(t)
	ctx := context.Background()
	monday := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)

	require.NoError(t, st.SaveWorkout(ctx, testLog(monday.Add(-24*time.Hour), 1)))
	require.NoError(t, st.SaveWorkout(ctx, testLog(monday, 1)))
	require.NoError(t, st.SaveWorkout(ctx, testLog(monday.Add(50*time.Hour), 1)))

	n, err := st.CountWorkoutsSince(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = st.CountWorkoutsSince(ctx, monday.Add(7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestExportImportRoundTrip(t *testing.T) {
	st := openTestStorage(t)
	ctx := context.Background()
	require.NoError(t, st.SaveWorkout(ctx, testLog(time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC), 2)))

	path := filepath.Join(t.TempDir(), "journal.toml")
	require.NoError(t, st.ExportToTOML(ctx, path))

	_, err := st.DB.ExecContext(ctx, "DELETE FROM workout_sets")
	require.NoError(t, err)
	_, err = st.DB.ExecContext(ctx, "DELETE FROM workouts")
	require.NoError(t, err)

	require.NoError(t, st.ImportFromTOML(ctx, path))
	workouts, err := st.ListWorkouts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Len(t, workouts[0].Sets, 2)
}
