// Package progress summarizes the weight history for the progress screen.
package progress

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/misterclayt0n/keima/internal/models"
)

type Point struct {
	Date   string
	Weight float64
}

type Summary struct {
	Current  float64 // Most recent weight, 0 without history.
	Change   float64 // Current minus the oldest weight, rounded to 0.1.
	Entries  int
	Workouts int
	Points   []Point // Oldest first.
}

// Summarize expects history most recent first, as the weight API returns it.
// Only the last maxPoints records are charted; maxPoints <= 0 charts all.
func Summarize(history []models.WeightRecord, workouts, maxPoints int) Summary {
	s := Summary{Entries: len(history), Workouts: workouts}
	if len(history) == 0 {
		return s
	}

	s.Current = history[0].Weight
	oldest := history[len(history)-1].Weight
	s.Change = math.Round((s.Current-oldest)*10) / 10

	n := len(history)
	if maxPoints > 0 && n > maxPoints {
		n = maxPoints
	}
	for i := n - 1; i >= 0; i-- {
		s.Points = append(s.Points, Point{Date: history[i].Date, Weight: history[i].Weight})
	}
	return s
}

// Bars renders one horizontal bar per point, scaled between the lightest and
// heaviest weights.
func Bars(points []Point, width int) []string {
	if len(points) == 0 || width <= 0 {
		return nil
	}

	lo, hi := points[0].Weight, points[0].Weight
	for _, p := range points {
		lo = math.Min(lo, p.Weight)
		hi = math.Max(hi, p.Weight)
	}

	out := make([]string, len(points))
	for i, p := range points {
		n := width
		if hi > lo {
			n = 1 + int(math.Round(float64(width-1)*(p.Weight-lo)/(hi-lo)))
		}
		out[i] = strings.Repeat("█", n)
	}
	return out
}

// WeekStart returns Monday 00:00 of the ISO week containing now, in now's
// location.
func WeekStart(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	y, m, d := now.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
}

// WeekStreak counts the consecutive ISO weeks, ending with the week of now,
// that contain at least one of the given times.
func WeekStreak(times []time.Time, now time.Time) int {
	weeks := make(map[string]bool)
	for _, t := range times {
		year, week := t.ISOWeek()
		weeks[fmt.Sprintf("%d-%02d", year, week)] = true
	}

	streak := 0
	for {
		year, week := now.ISOWeek()
		if !weeks[fmt.Sprintf("%d-%02d", year, week)] {
			return streak
		}
		streak++
		now = now.AddDate(0, 0, -7)
	}
}
