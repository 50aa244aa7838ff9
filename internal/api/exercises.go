package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/misterclayt0n/keima/internal/models"
)

type ExerciseQuery struct {
	Search    string
	Level     string
	Equipment string
	Limit     int
	Offset    int
}

// Values drops empty and zero fields.
func (q ExerciseQuery) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Level != "" {
		v.Set("level", q.Level)
	}
	if q.Equipment != "" {
		v.Set("equipment", q.Equipment)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return v
}

func (c *Client) Exercises(ctx context.Context, q ExerciseQuery) (*models.ExercisePage, error) {
	u := c.catalogURL + "/api/exercises"
	if qs := q.Values().Encode(); qs != "" {
		u += "?" + qs
	}
	var page models.ExercisePage
	if err := c.do(ctx, http.MethodGet, u, nil, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Exercise(ctx context.Context, id string) (*models.Exercise, error) {
	var ex models.Exercise
	if err := c.do(ctx, http.MethodGet, c.catalogURL+"/api/exercises/"+url.PathEscape(id), nil, nil, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (c *Client) ExerciseStats(ctx context.Context) (*models.ExerciseStats, error) {
	var stats models.ExerciseStats
	if err := c.do(ctx, http.MethodGet, c.catalogURL+"/api/exercises/stats/summary", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
