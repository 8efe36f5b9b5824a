package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePresets(t *testing.T) {
	t.Parallel()

	data := []byte(`
- name: tiny
  rows: 5
  columns: 4
  mines: 3
- name: tall
  rows: 24
  columns: 10
  mines: 40
`)
	presets, err := ParsePresets(data)
	assert.NoError(t, err)
	assert.Len(t, presets, 2)
	assert.Equal(t, Preset{Name: "tiny", Rows: 5, Columns: 4, MineCount: 3}, presets[0])

	p, err := FindPreset(presets, "tall")
	assert.NoError(t, err)
	assert.Equal(t, 40, p.MineCount)

	_, err = FindPreset(presets, "missing")
	assert.Error(t, err)
}

func TestParsePresetsRejectsInvalidBoards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "nameless", data: "- rows: 5\n  columns: 5\n  mines: 3\n"},
		{name: "overfull", data: "- name: bad\n  rows: 2\n  columns: 2\n  mines: 4\n"},
		{name: "not yaml", data: "{{"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(test.data))
			assert.Error(t, err)
		})
	}
}

func TestDefaultPresetsAreValid(t *testing.T) {
	t.Parallel()

	for _, p := range DefaultPresets() {
		assert.NoError(t, p.GameParams().Validate(), p.Name)
	}
}
