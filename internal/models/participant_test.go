package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapLiftsKnownFields(t *testing.T) {
	p := FromMap(map[string]any{
		"name":                "Jane Doe",
		"congressionalOffice": "12|Rep. Smith",
		"audienceProfile":     "staffer",
		"primaryConcern":      "healthcare",
		"adjectives":          []any{"direct", "warm"},
		"priorities":          []any{"clarity"},
		"selectedTraits":      []any{"empathy", "brevity"},
		"referrer":            "newsletter",
		"id":                  999,
		"timestamp":           "2020-01-01T00:00:00Z",
	})

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "12|Rep. Smith", p.CongressionalOffice)
	assert.Equal(t, "staffer", p.AudienceProfile)
	assert.Equal(t, "healthcare", p.PrimaryConcern)
	assert.Equal(t, []string{"direct", "warm"}, p.Adjectives)
	assert.Equal(t, []string{"clarity"}, p.Priorities)
	assert.Equal(t, []string{"empathy", "brevity"}, p.SelectedTraits)
	assert.Equal(t, map[string]any{"referrer": "newsletter"}, p.Extra)

	// Store owns id and timestamp; client values are discarded.
	assert.Zero(t, p.ID)
	assert.Empty(t, p.Timestamp)
}

func TestFromMapKeepsMistypedFieldsInExtra(t *testing.T) {
	p := FromMap(map[string]any{
		"name":       float64(42),
		"adjectives": []any{"ok", float64(1)},
	})
	assert.Empty(t, p.Name)
	assert.Nil(t, p.Adjectives)
	assert.Equal(t, float64(42), p.Extra["name"])
	assert.Equal(t, []any{"ok", float64(1)}, p.Extra["adjectives"])
}

func TestOfficeKeyAndName(t *testing.T) {
	p := &Participant{CongressionalOffice: "12|Rep. Smith"}
	key, ok := p.OfficeKey()
	require.True(t, ok)
	assert.Equal(t, "12", key)
	assert.Equal(t, "Rep. Smith", p.OfficeName())

	p = &Participant{CongressionalOffice: "At-Large"}
	key, ok = p.OfficeKey()
	require.True(t, ok)
	assert.Equal(t, "At-Large", key)
	assert.Equal(t, "At-Large", p.OfficeName())

	p = &Participant{}
	_, ok = p.OfficeKey()
	assert.False(t, ok)
	assert.Equal(t, "Unknown", p.OfficeName())
}

func TestMarshalRoundTrip(t *testing.T) {
	in := &Participant{
		ID:                  7,
		Name:                "A",
		CongressionalOffice: "34|Rep. Jones",
		SelectedTraits:      []string{"x"},
		Timestamp:           "2024-05-01T10:00:00Z",
		Extra:               map[string]any{"channel": "dm"},
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out Participant
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.CongressionalOffice, out.CongressionalOffice)
	assert.Equal(t, in.SelectedTraits, out.SelectedTraits)
	assert.Equal(t, in.Timestamp, out.Timestamp)
	assert.Equal(t, in.Extra, out.Extra)
}

func TestMarshalOmitsUnsetOptionalFields(t *testing.T) {
	p := &Participant{ID: 1, Timestamp: "2024-05-01T10:00:00Z"}
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Len(t, raw, 2)
	assert.Contains(t, raw, "id")
	assert.Contains(t, raw, "timestamp")
}
