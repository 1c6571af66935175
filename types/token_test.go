package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttribute_UnmarshalScalarValues(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Attribute
	}{
		{"string", `{"trait_type":"Mane","value":"Gold"}`, Attribute{TraitType: "Mane", Value: "Gold"}},
		{"integer", `{"trait_type":"Level","value":5}`, Attribute{TraitType: "Level", Value: "5"}},
		{"float", `{"trait_type":"Speed","value":1.25}`, Attribute{TraitType: "Speed", Value: "1.25"}},
		{"bool", `{"trait_type":"Legendary","value":true}`, Attribute{TraitType: "Legendary", Value: "true"}},
		{"null", `{"trait_type":"Hat","value":null}`, Attribute{TraitType: "Hat"}},
		{"missing", `{"trait_type":"Hat"}`, Attribute{TraitType: "Hat"}},
		{"object kept as json", `{"trait_type":"Meta","value":{"a":1}}`, Attribute{TraitType: "Meta", Value: `{"a":1}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attr Attribute
			require.NoError(t, json.Unmarshal([]byte(tt.input), &attr))
			assert.Equal(t, tt.expected, attr)
		})
	}
}

func TestMetadata_UnmarshalLooseNumbers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		edition int64
		date    int64
	}{
		{"numbers", `{"edition":7,"date":1700000000000}`, 7, 1700000000000},
		{"strings", `{"edition":"7","date":" 1700000000000 "}`, 7, 1700000000000},
		{"float", `{"edition":7.0,"date":1.7e12}`, 7, 1700000000000},
		{"empty and null", `{"edition":"","date":null}`, 0, 0},
		{"not a number", `{"edition":"first"}`, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var md Metadata
			require.NoError(t, json.Unmarshal([]byte(tt.input), &md))
			assert.Equal(t, tt.edition, md.Edition)
			assert.Equal(t, tt.date, md.Date)
		})
	}
}

func TestMetadata_UnmarshalKeepsOtherFields(t *testing.T) {
	var md Metadata
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Alpha Lion #7",
		"image_url": "https://img.example/7.png",
		"edition": "7",
		"attributes": [{"trait_type": "Level", "value": 5}, {"trait_type": "Mane", "value": "Gold"}],
		"compiler": "lion-engine"
	}`), &md))

	assert.Equal(t, "Alpha Lion #7", md.Name)
	assert.Equal(t, "https://img.example/7.png", md.ImageUrl)
	assert.Equal(t, "lion-engine", md.Compiler)
	assert.Equal(t, int64(7), md.Edition)
	assert.Equal(t, []Attribute{{TraitType: "Level", Value: "5"}, {TraitType: "Mane", Value: "Gold"}}, md.Attributes)
}
