package workout

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/rs/zerolog/log"
)

// StateFileName is the active workout file in the state directory.
const StateFileName = "workout.toml"

var (
	ErrNoActiveWorkout   = errors.New("no active workout")
	ErrWorkoutInProgress = errors.New("a workout is already in progress")
	ErrUnknownTemplate   = errors.New("unknown workout template")
)

// Journal archives finished workouts.
type Journal interface {
	SaveWorkout(ctx context.Context, log *models.WorkoutLog) error
}

type Tracker struct {
	path      string
	templates []models.WorkoutTemplate
	journal   Journal
	now       func() time.Time
}

// NewTracker keeps state in dir. journal may be nil.
func NewTracker(dir string, templates []models.WorkoutTemplate, journal Journal) *Tracker {
	return &Tracker{
		path:      filepath.Join(dir, StateFileName),
		templates: templates,
		journal:   journal,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (t *Tracker) Templates() []models.WorkoutTemplate {
	return t.templates
}

func (t *Tracker) Exists() bool {
	_, err := os.Stat(t.path)
	return !os.IsNotExist(err)
}

func (t *Tracker) Start(templateID string) (*models.WorkoutState, error) {
	if t.Exists() {
		return nil, ErrWorkoutInProgress
	}
	tmpl, ok := FindTemplate(t.templates, templateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, templateID)
	}

	state := &models.WorkoutState{
		ID:        uuid.New().String(),
		Template:  tmpl,
		StartTime: t.now(),
	}
	if err := t.save(state); err != nil {
		return nil, err
	}
	return state, nil
}

// Active loads the workout in progress.
func (t *Tracker) Active() (*models.WorkoutState, error) {
	var state models.WorkoutState
	if _, err := toml.DecodeFile(t.path, &state); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoActiveWorkout
		}
		return nil, fmt.Errorf("read workout state: %w", err)
	}
	return &state, nil
}

// ParseSet reads set input leniently: anything that is not a number counts
// as zero.
func ParseSet(weight, reps, rpe string) (float64, int, int) {
	w, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(weight), ",", ".", 1), 64)
	if err != nil {
		w = 0
	}
	r, err := strconv.Atoi(strings.TrimSpace(reps))
	if err != nil {
		r = 0
	}
	p, err := strconv.Atoi(strings.TrimSpace(rpe))
	if err != nil {
		p = 0
	}
	return w, r, p
}

// AddSet logs a set for the current exercise.
func (t *Tracker) AddSet(weight float64, reps, rpe int) (*models.WorkoutState, models.WorkoutSet, error) {
	state, err := t.Active()
	if err != nil {
		return nil, models.WorkoutSet{}, err
	}

	set := models.WorkoutSet{
		ID:        uuid.New().String(),
		Exercise:  state.CurrentExercise,
		Weight:    weight,
		Reps:      reps,
		RPE:       rpe,
		Timestamp: t.now(),
	}
	state.Sets = append(state.Sets, set)

	if err := t.save(state); err != nil {
		return nil, models.WorkoutSet{}, err
	}
	return state, set, nil
}

// Next moves to the following exercise. After the last exercise the workout
// is finished and its log returned.
func (t *Tracker) Next(ctx context.Context) (*models.WorkoutState, *models.WorkoutLog, error) {
	state, err := t.Active()
	if err != nil {
		return nil, nil, err
	}

	if state.CurrentExercise < len(state.Template.Exercises)-1 {
		state.CurrentExercise++
		if err := t.save(state); err != nil {
			return nil, nil, err
		}
		return state, nil, nil
	}

	wl, err := t.Finish(ctx)
	return nil, wl, err
}

// Finish ends the workout, archives it when a journal is configured and
// removes the state file.
func (t *Tracker) Finish(ctx context.Context) (*models.WorkoutLog, error) {
	state, err := t.Active()
	if err != nil {
		return nil, err
	}

	wl := &models.WorkoutLog{
		ID:           state.ID,
		TemplateID:   state.Template.ID,
		TemplateName: state.Template.Name,
		StartTime:    state.StartTime,
		EndTime:      t.now(),
		Sets:         state.Sets,
	}

	if t.journal != nil {
		if err := t.journal.SaveWorkout(ctx, wl); err != nil {
			return nil, fmt.Errorf("save workout: %w", err)
		}
	} else {
		log.Debug().Str("workout", wl.ID).Msg("No journal configured, workout not archived")
	}

	if err := t.Cancel(); err != nil {
		return nil, err
	}
	return wl, nil
}

// Cancel drops the workout in progress without archiving it.
func (t *Tracker) Cancel() error {
	if err := os.Remove(t.path); err != nil {
		if os.IsNotExist(err) {
			return ErrNoActiveWorkout
		}
		return err
	}
	return nil
}

func (t *Tracker) save(state *models.WorkoutState) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(t.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(state)
}
