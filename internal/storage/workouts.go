package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/misterclayt0n/keima/internal/models"
	"github.com/rs/zerolog/log"
)

func (s *Storage) WorkoutExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM workouts WHERE id = ?)",
		id,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check workout existence: %w", err)
	}

	return exists, nil
}

// SaveWorkout stores a finished workout and its sets in one transaction.
// Saving a workout whose id is already journaled is a no-op.
func (s *Storage) SaveWorkout(ctx context.Context, wl *models.WorkoutLog) error {
	exists, err := s.WorkoutExists(ctx, wl.ID)
	if err != nil {
		return err
	}
	if exists {
		log.Debug().Str("workout", wl.ID).Msg("workout already journaled")
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workouts (id, template_id, template_name, start_time, end_time)
		VALUES (?, ?, ?, ?, ?)`,
		wl.ID,
		wl.TemplateID,
		wl.TemplateName,
		wl.StartTime.UTC().Format(time.RFC3339),
		wl.EndTime.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to insert workout: %w", err)
	}

	for _, set := range wl.Sets {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO workout_sets (id, workout_id, exercise_index, weight, reps, rpe, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			set.ID,
			wl.ID,
			set.Exercise,
			set.Weight,
			set.Reps,
			set.RPE,
			set.Timestamp.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("Failed to insert set: %w", err)
		}
	}

	return tx.Commit()
}

// ListWorkouts returns the latest workouts, newest first, with their sets.
// limit <= 0 returns all.
func (s *Storage) ListWorkouts(ctx context.Context, limit int) ([]models.WorkoutLog, error) {
	query := `SELECT id, template_id, template_name, start_time, end_time
		FROM workouts ORDER BY start_time DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.WorkoutLog
	for rows.Next() {
		var wl models.WorkoutLog
		var start, end string
		if err := rows.Scan(&wl.ID, &wl.TemplateID, &wl.TemplateName, &start, &end); err != nil {
			return nil, err
		}
		wl.StartTime, _ = time.Parse(time.RFC3339, start)
		wl.EndTime, _ = time.Parse(time.RFC3339, end)
		workouts = append(workouts, wl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workouts {
		sets, err := s.workoutSets(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Sets = sets
	}
	return workouts, nil
}

func (s *Storage) workoutSets(ctx context.Context, workoutID string) ([]models.WorkoutSet, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, exercise_index, weight, reps, rpe, timestamp
		FROM workout_sets
		WHERE workout_id = ?
		ORDER BY timestamp ASC`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load sets: %w", err)
	}
	defer rows.Close()

	var sets []models.WorkoutSet
	for rows.Next() {
		var set models.WorkoutSet
		var rawTime string
		if err := rows.Scan(&set.ID, &set.Exercise, &set.Weight, &set.Reps, &set.RPE, &rawTime); err != nil {
			return nil, err
		}
		set.Timestamp, _ = time.Parse(time.RFC3339, rawTime)
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

func (s *Storage) CountWorkouts(ctx context.Context) (int, error) {
	var n int
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM workouts").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count workouts: %w", err)
	}
	return n, nil
}

// CountWorkoutsSince counts workouts started at or after since.
func (s *Storage) CountWorkoutsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM workouts WHERE start_time >= ?",
		since.UTC().Format(time.RFC3339),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count workouts: %w", err)
	}
	return n, nil
}
