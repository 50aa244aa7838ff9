// Package weight records body weight and compares recent measurements.
package weight

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/keima/internal/models"
)

// MaxWeight is the largest accepted weight in kg.
const MaxWeight = 1000

var (
	ErrInvalidWeight = errors.New("Por favor, insira um peso válido")
	ErrInvalidDate   = errors.New("Data deve estar no formato YYYY-MM-DD")
)

// ParseWeight validates raw user input. It accepts a comma as the decimal
// separator.
func ParseWeight(raw string) (float64, error) {
	raw = strings.TrimSpace(strings.Replace(raw, ",", ".", 1))
	if raw == "" {
		return 0, ErrInvalidWeight
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, ErrInvalidWeight
	}
	if w <= 0 || w > MaxWeight {
		return 0, ErrInvalidWeight
	}
	return w, nil
}

func ValidateDate(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Today is the default date for a new record.
func Today() string {
	return time.Now().Format(models.DateLayout)
}

// Backend is the weight API.
type Backend interface {
	Weights(ctx context.Context, header http.Header) ([]models.WeightRecord, error)
	AddWeight(ctx context.Context, header http.Header, weight float64, date string) (*models.WeightRecord, error)
	LatestWeight(ctx context.Context, header http.Header) (*models.WeightRecord, error)
}

// HeaderSource supplies the auth headers, normally a *session.Manager.
type HeaderSource interface {
	AuthHeaders() http.Header
}

type Tracker struct {
	backend Backend
	auth    HeaderSource
}

func NewTracker(backend Backend, auth HeaderSource) *Tracker {
	return &Tracker{backend: backend, auth: auth}
}

// Submit validates and records a weight. Invalid input never reaches the
// backend.
func (t *Tracker) Submit(ctx context.Context, raw, date string) (*models.WeightRecord, error) {
	w, err := ParseWeight(raw)
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = Today()
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	rec, err := t.backend.AddWeight(ctx, t.auth.AuthHeaders(), w, date)
	if err != nil {
		return nil, fmt.Errorf("record weight: %w", err)
	}
	if rec == nil {
		rec = &models.WeightRecord{Date: date, Weight: w}
	}
	return rec, nil
}

// History is fetched fresh on every call, most recent first.
func (t *Tracker) History(ctx context.Context) ([]models.WeightRecord, error) {
	records, err := t.backend.Weights(ctx, t.auth.AuthHeaders())
	if err != nil {
		return nil, fmt.Errorf("load weight history: %w", err)
	}
	SortRecent(records)
	return records, nil
}

// Latest returns nil when nothing has been recorded.
func (t *Tracker) Latest(ctx context.Context) (*models.WeightRecord, error) {
	rec, err := t.backend.LatestWeight(ctx, t.auth.AuthHeaders())
	if err != nil {
		return nil, fmt.Errorf("load latest weight: %w", err)
	}
	return rec, nil
}
