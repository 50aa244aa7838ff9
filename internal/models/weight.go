package models

import "time"

// DateLayout is the wire format of WeightRecord.Date.
const DateLayout = "2006-01-02"

type WeightRecord struct {
	ID        int64   `json:"id" toml:"id"`
	Date      string  `json:"date" toml:"date"`
	Weight    float64 `json:"weight" toml:"weight"`
	Timestamp string  `json:"timestamp,omitempty" toml:"timestamp,omitempty"`
}

// Day parses Date. The zero time is returned for malformed dates.
func (w WeightRecord) Day() time.Time {
	t, err := time.Parse(DateLayout, w.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
