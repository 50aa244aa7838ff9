package models

import "time"

type WorkoutTemplate struct {
	ID          string             `toml:"id"`
	Name        string             `toml:"name"`
	Description string             `toml:"description"`
	Duration    string             `toml:"duration"`
	Exercises   []TemplateExercise `toml:"exercise"`
}

type TemplateExercise struct {
	Name string `toml:"name"`
	Sets int    `toml:"sets"`
	Reps string `toml:"reps"`
	Rest string `toml:"rest"`
}

type WorkoutSet struct {
	ID        string    `toml:"id"`
	Exercise  int       `toml:"exercise"` // Index into the template exercises.
	Weight    float64   `toml:"weight"`
	Reps      int       `toml:"reps"`
	RPE       int       `toml:"rpe"`
	Timestamp time.Time `toml:"timestamp"`
}

// WorkoutState is the in-progress workout, kept on disk between commands.
type WorkoutState struct {
	ID              string          `toml:"id"`
	Template        WorkoutTemplate `toml:"template"`
	CurrentExercise int             `toml:"current_exercise"`
	Sets            []WorkoutSet    `toml:"sets"`
	StartTime       time.Time       `toml:"start_time"`
}

// CurrentSets returns the sets logged for the exercise in progress.
func (s *WorkoutState) CurrentSets() []WorkoutSet {
	var out []WorkoutSet
	for _, set := range s.Sets {
		if set.Exercise == s.CurrentExercise {
			out = append(out, set)
		}
	}
	return out
}

// WorkoutLog is a finished workout as stored in the journal.
type WorkoutLog struct {
	ID           string       `json:"id"`
	TemplateID   string       `json:"template_id"`
	TemplateName string       `json:"template_name"`
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	Sets         []WorkoutSet `json:"sets"`
}

// Volume is the sum of weight × reps over every set.
func (l *WorkoutLog) Volume() float64 {
	var total float64
	for _, s := range l.Sets {
		if s.Weight > 0 && s.Reps > 0 {
			total += s.Weight * float64(s.Reps)
		}
	}
	return total
}
