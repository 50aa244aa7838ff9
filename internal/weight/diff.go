package weight

import (
	"math"
	"sort"

	"github.com/misterclayt0n/keima/internal/models"
)

type DiffKind string

const (
	Gain DiffKind = "gain"
	Loss DiffKind = "loss"
	Same DiffKind = "same"
)

type Diff struct {
	Value float64 // Absolute change in kg, rounded to 0.1.
	Kind  DiffKind
}

// Difference compares the two most recent records of a most-recent-first
// history. It returns nil with fewer than two records.
func Difference(history []models.WeightRecord) *Diff {
	if len(history) < 2 {
		return nil
	}
	d := history[0].Weight - history[1].Weight
	kind := Same
	switch {
	case d > 0:
		kind = Gain
	case d < 0:
		kind = Loss
	}
	return &Diff{Value: math.Round(math.Abs(d)*10) / 10, Kind: kind}
}

// SortRecent orders records by date, most recent first. Records on the same
// date keep the later id first.
func SortRecent(records []models.WeightRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].ID > records[j].ID
	})
}
