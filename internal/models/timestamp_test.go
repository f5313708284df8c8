package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	want := time.Date(2025, 3, 1, 10, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{name: "RFC3339", raw: `"2025-03-01T10:04:05Z"`, want: want},
		{name: "Naive ISO", raw: `"2025-03-01T10:04:05"`, want: want},
		{name: "Naive ISO with micros", raw: `"2025-03-01T10:04:05.000000"`, want: want},
		{name: "Offset", raw: `"2025-03-01T11:04:05+01:00"`, want: want},
		{name: "Null", raw: `null`},
		{name: "Garbage", raw: `"yesterday"`, wantErr: true},
		{name: "Number", raw: `12`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tc.raw), &ts)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestPlant_DecodesBackendPayload(t *testing.T) {
	payload := `{"id":3,"user_id":1,"name":"Monstera","species":null,"status":"needs_attention",
		"health_score":72,"last_watered":"2025-03-01T10:04:05.123456","created_at":"2025-02-01T08:00:00"}`

	var p Plant
	require.NoError(t, json.Unmarshal([]byte(payload), &p))
	assert.Equal(t, PlantStatusNeedsAttention, p.Status)
	assert.Nil(t, p.Species)
	require.NotNil(t, p.LastWatered)
	assert.Equal(t, 10, p.LastWatered.Hour())
	assert.Nil(t, p.LastFertilized)
}
