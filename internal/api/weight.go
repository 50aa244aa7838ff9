package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/misterclayt0n/keima/internal/models"
)

type weightEnvelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Error    string          `json:"error"`
	Message  string          `json:"message"`
	RecordID int64           `json:"record_id"`
}

func (e *weightEnvelope) decode(out any) error {
	if !e.Success {
		return &APIError{Status: http.StatusOK, Message: e.Error}
	}
	if out == nil || len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, out)
}

// Weights returns the weight history, most recent first.
func (c *Client) Weights(ctx context.Context, header http.Header) ([]models.WeightRecord, error) {
	var env weightEnvelope
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/api/weight", header, nil, &env); err != nil {
		return nil, err
	}
	var records []models.WeightRecord
	if err := env.decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// AddWeight records a weight for date (YYYY-MM-DD). The backend may answer
// with only {success, message, record_id}; the record is then built from the
// submitted values.
func (c *Client) AddWeight(ctx context.Context, header http.Header, weight float64, date string) (*models.WeightRecord, error) {
	in := struct {
		Weight float64 `json:"weight"`
		Date   string  `json:"date"`
	}{weight, date}

	var env weightEnvelope
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/weight", header, in, &env); err != nil {
		return nil, err
	}
	var rec *models.WeightRecord
	if err := env.decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &models.WeightRecord{ID: env.RecordID, Date: date, Weight: weight}
	}
	return rec, nil
}

// LatestWeight returns nil without error when nothing has been recorded.
func (c *Client) LatestWeight(ctx context.Context, header http.Header) (*models.WeightRecord, error) {
	var env weightEnvelope
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/api/weight/latest", header, nil, &env); err != nil {
		return nil, err
	}
	var rec *models.WeightRecord
	if err := env.decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}
