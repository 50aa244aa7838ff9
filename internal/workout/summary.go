package workout

import (
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/utils"
)

// ExerciseSummary aggregates the sets of one template exercise.
type ExerciseSummary struct {
	Name    string
	Sets    int
	Volume  float64
	BestSet *models.WorkoutSet
	Best1RM float64
}

// Summarize groups the logged sets by exercise, in template order.
// Exercises without sets are included with zero values.
func Summarize(tmpl models.WorkoutTemplate, sets []models.WorkoutSet) []ExerciseSummary {
	out := make([]ExerciseSummary, len(tmpl.Exercises))
	for i, ex := range tmpl.Exercises {
		out[i].Name = ex.Name
	}

	for _, s := range sets {
		if s.Exercise < 0 || s.Exercise >= len(out) {
			continue
		}
		sum := &out[s.Exercise]
		sum.Sets++
		if s.Weight > 0 && s.Reps > 0 {
			sum.Volume += s.Weight * float64(s.Reps)
		}
		if est := utils.CalculateEpley1RM(s.Weight, s.Reps); est > sum.Best1RM {
			set := s
			sum.BestSet = &set
			sum.Best1RM = est
		}
	}
	return out
}
