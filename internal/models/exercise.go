package models

type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Equipment        string   `json:"equipment"`
	Level            string   `json:"level"`
	Category         string   `json:"category,omitempty"`
	Instructions     []string `json:"instructions"`
	Images           []string `json:"images"`
}

// ExercisePage is one offset/limit slice of the catalog.
type ExercisePage struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
	HasMore   bool       `json:"hasMore"`
}

type ExerciseStats struct {
	Total       int            `json:"total"`
	ByLevel     map[string]int `json:"byLevel"`
	ByEquipment map[string]int `json:"byEquipment,omitempty"`
}
