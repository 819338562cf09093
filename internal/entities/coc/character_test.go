package coc_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
)

func TestCharacterDecodeStats(t *testing.T) {
	testCases := []struct {
		name         string
		doc          string
		statsMissing bool
		strength     int
	}{
		{name: "missing", doc: `{"id":"a","rawStats":{"str":10}}`, statsMissing: true},
		{name: "null", doc: `{"id":"a","stats":null}`, statsMissing: true},
		{name: "all zero", doc: `{"id":"a","stats":{"str":0,"con":0}}`},
		{name: "present", doc: `{"id":"a","stats":{"str":55}}`, strength: 55},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var char coc.Character
			require.NoError(t, json.Unmarshal([]byte(tc.doc), &char))
			assert.Equal(t, "a", char.ID)
			assert.Equal(t, tc.statsMissing, char.StatsMissing)
			assert.Equal(t, tc.strength, char.Stats.Strength)
		})
	}
}

func TestCharacterDecodeUpdatedAt(t *testing.T) {
	want := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		doc  string
		want time.Time
	}{
		{name: "iso", doc: `{"updatedAt":"2024-05-01T10:00:00.000Z"}`, want: want},
		{name: "epoch millis", doc: `{"updatedAt":1714557600000}`, want: want},
		{name: "empty string", doc: `{"updatedAt":""}`},
		{name: "garbage", doc: `{"updatedAt":"yesterday"}`},
		{name: "null", doc: `{"updatedAt":null}`},
		{name: "absent", doc: `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var char coc.Character
			require.NoError(t, json.Unmarshal([]byte(tc.doc), &char))
			assert.True(t, tc.want.Equal(char.UpdatedAt), "got %v", char.UpdatedAt)
		})
	}
}

func TestCharacterRoundTripKeepsStats(t *testing.T) {
	char := &coc.Character{ID: "a", UpdatedAt: time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)}

	data, err := json.Marshal(char)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "StatsMissing")

	var decoded coc.Character
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.StatsMissing)
	assert.Equal(t, *char, decoded)
}

func TestCharacterDecodeRejectsBadFields(t *testing.T) {
	var char coc.Character
	assert.Error(t, json.Unmarshal([]byte(`{"age":"forty"}`), &char))
}
