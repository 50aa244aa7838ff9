package catalog

import "strings"

// Levels and Equipment are the filter values the catalog accepts.
var (
	Levels    = []string{"beginner", "intermediate", "advanced"}
	Equipment = []string{"body only", "dumbbell", "barbell", "machine", "cable", "kettlebell", "bands", "medicine ball", "foam roll", "e-z curl bar"}
)

var levelLabels = map[string]string{
	"beginner":     "Iniciante",
	"intermediate": "Intermediário",
	"advanced":     "Avançado",
	"expert":       "Avançado",
}

var equipmentLabels = map[string]string{
	"body only":     "Peso Corporal",
	"body weight":   "Peso Corporal",
	"dumbbell":      "Halter",
	"barbell":       "Barra",
	"machine":       "Máquina",
	"cable":         "Cabo",
	"kettlebell":    "Kettlebell",
	"kettlebells":   "Kettlebell",
	"bands":         "Elástico",
	"medicine ball": "Medicine Ball",
	"foam roll":     "Rolo",
	"e-z curl bar":  "Barra W",
	"other":         "Outro",
}

var muscleLabels = map[string]string{
	"abdominals":  "abdominais",
	"hamstrings":  "posteriores",
	"adductors":   "adutores",
	"biceps":      "bíceps",
	"quadriceps":  "quadríceps",
	"shoulders":   "ombros",
	"middle back": "costas médias",
	"chest":       "peito",
	"calves":      "panturrilhas",
	"glutes":      "glúteos",
	"lower back":  "lombar",
	"lats":        "dorsais",
	"triceps":     "tríceps",
	"traps":       "trapézio",
	"forearms":    "antebraços",
}

// Unknown values pass through unchanged.
func TranslateLevel(level string) string {
	return translate(levelLabels, level)
}

func TranslateEquipment(equipment string) string {
	return translate(equipmentLabels, equipment)
}

func TranslateMuscles(muscles []string) []string {
	out := make([]string, len(muscles))
	for i, m := range muscles {
		out[i] = translate(muscleLabels, m)
	}
	return out
}

func translate(table map[string]string, s string) string {
	if t, ok := table[strings.ToLower(s)]; ok {
		return t
	}
	return s
}
