package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/keima/internal/models"
)

// TemplateFile is the TOML layout for user-defined workout templates.
type TemplateFile struct {
	Templates []models.WorkoutTemplate `toml:"template"`
}

func ParseTemplatesFromTOML(path string) ([]models.WorkoutTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file TemplateFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return file.Templates, nil
}
