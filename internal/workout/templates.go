// Package workout runs a workout from a template and keeps the in-progress
// state on disk between commands.
package workout

import (
	"errors"
	"os"
	"strings"

	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/utils"
)

// TemplatesFileName holds user-defined templates in the state directory.
const TemplatesFileName = "templates.toml"

var builtins = []models.WorkoutTemplate{
	{
		ID:          "push",
		Name:        "Treino A - Push",
		Description: "Peito, Ombros e Tríceps",
		Duration:    "45-60 min",
		Exercises: []models.TemplateExercise{
			{Name: "Supino Reto", Sets: 4, Reps: "8-12", Rest: "90s"},
			{Name: "Supino Inclinado", Sets: 3, Reps: "10-12", Rest: "90s"},
			{Name: "Desenvolvimento", Sets: 3, Reps: "10-12", Rest: "90s"},
			{Name: "Elevação Lateral", Sets: 3, Reps: "12-15", Rest: "60s"},
			{Name: "Tríceps Testa", Sets: 3, Reps: "10-12", Rest: "60s"},
		},
	},
	{
		ID:          "pull",
		Name:        "Treino B - Pull",
		Description: "Costas e Bíceps",
		Duration:    "45-60 min",
		Exercises: []models.TemplateExercise{
			{Name: "Puxada Frontal", Sets: 4, Reps: "8-12", Rest: "90s"},
			{Name: "Remada Curvada", Sets: 3, Reps: "10-12", Rest: "90s"},
			{Name: "Remada Unilateral", Sets: 3, Reps: "10-12", Rest: "90s"},
			{Name: "Rosca Direta", Sets: 3, Reps: "10-12", Rest: "60s"},
			{Name: "Rosca Martelo", Sets: 3, Reps: "12-15", Rest: "60s"},
		},
	},
	{
		ID:          "legs",
		Name:        "Treino C - Legs",
		Description: "Pernas e Glúteos",
		Duration:    "60-75 min",
		Exercises: []models.TemplateExercise{
			{Name: "Agachamento", Sets: 4, Reps: "8-12", Rest: "120s"},
			{Name: "Leg Press", Sets: 3, Reps: "12-15", Rest: "90s"},
			{Name: "Stiff", Sets: 3, Reps: "10-12", Rest: "90s"},
			{Name: "Extensora", Sets: 3, Reps: "12-15", Rest: "60s"},
			{Name: "Flexora", Sets: 3, Reps: "12-15", Rest: "60s"},
		},
	},
}

// Builtins returns a copy of the built-in templates.
func Builtins() []models.WorkoutTemplate {
	out := make([]models.WorkoutTemplate, len(builtins))
	copy(out, builtins)
	return out
}

// LoadTemplates returns the built-ins followed by the templates in path.
// A user template with a built-in id replaces the built-in. A missing file
// is not an error.
func LoadTemplates(path string) ([]models.WorkoutTemplate, error) {
	templates := Builtins()
	if path == "" {
		return templates, nil
	}

	custom, err := utils.ParseTemplatesFromTOML(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return templates, nil
		}
		return nil, err
	}

	for _, c := range custom {
		if c.ID == "" || len(c.Exercises) == 0 {
			continue
		}
		replaced := false
		for i := range templates {
			if templates[i].ID == c.ID {
				templates[i] = c
				replaced = true
			}
		}
		if !replaced {
			templates = append(templates, c)
		}
	}
	return templates, nil
}

// FindTemplate matches on id, case insensitive.
func FindTemplate(templates []models.WorkoutTemplate, id string) (models.WorkoutTemplate, bool) {
	for _, t := range templates {
		if strings.EqualFold(t.ID, id) {
			return t, true
		}
	}
	return models.WorkoutTemplate{}, false
}
