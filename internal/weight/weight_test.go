package weight

import (
	"context"
	"net/http"
	"testing"

	"github.com/misterclayt0n/keima/internal/api"
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	records  []models.WeightRecord
	addCalls int
	headers  []http.Header
	err      error
	noRecord bool // AddWeight answers without the stored record.
}

func (f *fakeBackend) Weights(ctx context.Context, header http.Header) ([]models.WeightRecord, error) {
	f.headers = append(f.headers, header)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.WeightRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeBackend) AddWeight(ctx context.Context, header http.Header, weight float64, date string) (*models.WeightRecord, error) {
	f.addCalls++
	f.headers = append(f.headers, header)
	if f.err != nil {
		return nil, f.err
	}
	rec := models.WeightRecord{ID: int64(len(f.records) + 1), Date: date, Weight: weight}
	f.records = append(f.records, rec)
	if f.noRecord {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeBackend) LatestWeight(ctx context.Context, header http.Header) (*models.WeightRecord, error) {
	if len(f.records) == 0 {
		return nil, nil
	}
	recs := make([]models.WeightRecord, len(f.records))
	copy(recs, f.records)
	SortRecent(recs)
	return &recs[0], nil
}

type staticHeaders struct{}

func (staticHeaders) AuthHeaders() http.Header {
	return api.BearerHeader("tok")
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"70.5", 70.5, false},
		{" 80 ", 80, false},
		{"72,3", 72.3, false},
		{"1000", 1000, false},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"1000.1", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseWeight(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWeight)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubmitRejectsInvalidInputBeforeNetwork(t *testing.T) {
	for _, raw := range []string{"", "0", "-1", "x"} {
		backend := &fakeBackend{}
		tr := NewTracker(backend, staticHeaders{})

		_, err := tr.Submit(context.Background(), raw, "2025-08-01")
		assert.ErrorIs(t, err, ErrInvalidWeight, raw)
		assert.Zero(t, backend.addCalls, raw)
	}
}

func TestSubmitRejectsBadDate(t *testing.T) {
	backend := &fakeBackend{}
	tr := NewTracker(backend, staticHeaders{})

	_, err := tr.Submit(context.Background(), "70", "01/08/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, backend.addCalls)
}

func TestSubmitDefaultsToToday(t *testing.T) {
	backend := &fakeBackend{}
	tr := NewTracker(backend, staticHeaders{})

	rec, err := tr.Submit(context.Background(), "70.5", "")
	require.NoError(t, err)
	assert.Equal(t, Today(), rec.Date)
	assert.Equal(t, 70.5, rec.Weight)
	assert.Equal(t, "Bearer tok", backend.headers[0].Get("Authorization"))
}

func TestSubmitWithoutReturnedRecord(t *testing.T) {
	backend := &fakeBackend{noRecord: true}
	tr := NewTracker(backend, staticHeaders{})

	rec, err := tr.Submit(context.Background(), "72", "2025-08-20")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "2025-08-20", rec.Date)
	assert.Equal(t, 72.0, rec.Weight)
}

func TestSubmitWrapsBackendError(t *testing.T) {
	backend := &fakeBackend{err: api.ErrUnauthorized}
	tr := NewTracker(backend, staticHeaders{})

	_, err := tr.Submit(context.Background(), "70", "2025-08-01")
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestHistoryMostRecentFirst(t *testing.T) {
	backend := &fakeBackend{records: []models.WeightRecord{
		{ID: 1, Date: "2025-08-01", Weight: 75},
		{ID: 3, Date: "2025-08-22", Weight: 73.2},
		{ID: 2, Date: "2025-08-15", Weight: 73.8},
		{ID: 4, Date: "2025-08-22", Weight: 73.0},
	}}
	tr := NewTracker(backend, staticHeaders{})

	history, err := tr.History(context.Background())
	require.NoError(t, err)
	ids := []int64{}
	for _, r := range history {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{4, 3, 2, 1}, ids)
}

func TestLatest(t *testing.T) {
	backend := &fakeBackend{}
	tr := NewTracker(backend, staticHeaders{})

	latest, err := tr.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = tr.Submit(context.Background(), "70", "2025-08-01")
	require.NoError(t, err)
	_, err = tr.Submit(context.Background(), "71", "2025-08-02")
	require.NoError(t, err)

	latest, err = tr.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 71.0, latest.Weight)
}

func TestDifference(t *testing.T) {
	rec := func(w float64) models.WeightRecord { return models.WeightRecord{Weight: w} }

	assert.Nil(t, Difference(nil))
	assert.Nil(t, Difference([]models.WeightRecord{rec(70)}))
	assert.Equal(t, &Diff{Value: 0.6, Kind: Loss}, Difference([]models.WeightRecord{rec(73.2), rec(73.8)}))
	assert.Equal(t, &Diff{Value: 1.5, Kind: Gain}, Difference([]models.WeightRecord{rec(75), rec(73.5)}))
	assert.Equal(t, &Diff{Value: 0, Kind: Same}, Difference([]models.WeightRecord{rec(70), rec(70)}))
}
