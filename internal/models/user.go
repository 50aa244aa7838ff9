package models

import "strings"

type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FirstName returns the first word of the user's name, or "Usuário" when
// the name is blank.
func (u *UserProfile) FirstName() string {
	if u == nil {
		return "Usuário"
	}
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return "Usuário"
	}
	return fields[0]
}

// Onboarding goals.
const (
	GoalLoseWeight = "perder_peso"
	GoalGainMass   = "ganhar_massa"
	GoalKeepWeight = "manter_peso"
)

type Goal struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

var Goals = []Goal{
	{ID: GoalLoseWeight, Name: "Perder Peso"},
	{ID: GoalGainMass, Name: "Ganhar Massa"},
	{ID: GoalKeepWeight, Name: "Manter Peso"},
}

// FindGoal looks a goal up by id.
func FindGoal(id string) (Goal, bool) {
	for _, g := range Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}
