package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/create_and_list.yaml")
	require.NoError(t, err)

	assert.Equal(t, "create_and_list", s.Name)
	assert.Equal(t, "2025-06-10", s.Today)
	assert.Equal(t, []string{"1749513600000", "1749513600001"}, s.IDs)
	require.Len(t, s.Seed, 1)
	assert.Equal(t, "Garden Party", s.Seed[0].Title)

	require.Len(t, s.Steps, 2)
	require.NotNil(t, s.Steps[0].Create)
	assert.Equal(t, "  Book Club ", s.Steps[0].Create.Title)
	assert.Equal(t, "created", s.Steps[0].Expect)
	assert.Equal(t, "create", s.Steps[0].action())

	require.Len(t, s.Assertions, 5)
	assert.Equal(t, AssertPanelTitles, s.Assertions[0].Type)
}

func TestLoadScenario_InlineSteps(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/edit_delete.yaml")
	require.NoError(t, err)

	require.NotNil(t, s.Steps[0].Edit)
	assert.Equal(t, "1", s.Steps[0].Edit.ID)
	assert.Equal(t, "Moved", s.Steps[0].Edit.Description)

	require.NotNil(t, s.Steps[2].Delete)
	assert.Equal(t, "2", *s.Steps[2].Delete)

	f, err := LoadScenario("testdata/scenarios/filter_panels.yaml")
	require.NoError(t, err)
	require.NotNil(t, f.Steps[0].Criteria)
	assert.Equal(t, "manage", f.Steps[0].Criteria.Panel)
	assert.EqualValues(t, "past", f.Steps[0].Criteria.Mode)
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown field",
			yaml:    "name: x\ndescription: y\nstep: []\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "missing name",
			yaml:    "description: y\nsteps: [{delete: \"1\"}]\nassertions: [{type: event_count}]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: x\nsteps: [{delete: \"1\"}]\nassertions: [{type: event_count}]\n",
			wantErr: "description is required",
		},
		{
			name:    "bad today",
			yaml:    "name: x\ndescription: y\ntoday: tomorrow\nsteps: [{delete: \"1\"}]\nassertions: [{type: event_count}]\n",
			wantErr: "not a YYYY-MM-DD date",
		},
		{
			name:    "no steps",
			yaml:    "name: x\ndescription: y\nassertions: [{type: event_count}]\n",
			wantErr: "steps list is required",
		},
		{
			name:    "no assertions",
			yaml:    "name: x\ndescription: y\nsteps: [{delete: \"1\"}]\n",
			wantErr: "assertions list is required",
		},
		{
			name:    "empty step",
			yaml:    "name: x\ndescription: y\nsteps: [{expect: noop}]\nassertions: [{type: event_count}]\n",
			wantErr: "steps[0]: one of create",
		},
		{
			name:    "two actions in one step",
			yaml:    "name: x\ndescription: y\nsteps: [{delete: \"1\", criteria: {panel: home}}]\nassertions: [{type: event_count}]\n",
			wantErr: "only one of",
		},
		{
			name:    "edit without id",
			yaml:    "name: x\ndescription: y\nsteps: [{edit: {title: t}}]\nassertions: [{type: event_count}]\n",
			wantErr: "edit: id is required",
		},
		{
			name:    "unknown panel",
			yaml:    "name: x\ndescription: y\nsteps: [{criteria: {panel: sidebar}}]\nassertions: [{type: event_count}]\n",
			wantErr: "steps[0].criteria",
		},
		{
			name:    "too few ids",
			yaml:    "name: x\ndescription: y\nids: [\"a\"]\nsteps: [{create: {title: t}}, {create: {title: u}}]\nassertions: [{type: event_count}]\n",
			wantErr: "ids lists 1 ids",
		},
		{
			name:    "unknown assertion type",
			yaml:    "name: x\ndescription: y\nsteps: [{delete: \"1\"}]\nassertions: [{type: vibes}]\n",
			wantErr: "unknown assertion type",
		},
		{
			name:    "assertion panel missing",
			yaml:    "name: x\ndescription: y\nsteps: [{delete: \"1\"}]\nassertions: [{type: placeholder}]\n",
			wantErr: "assertions[0]",
		},
		{
			name:    "outcome step out of range",
			yaml:    "name: x\ndescription: y\nsteps: [{delete: \"1\"}]\nassertions: [{type: outcome, step: 3, outcome: noop}]\n",
			wantErr: "out of range",
		},
		{
			name:    "outcome without outcome",
			yaml:    "name: x\ndescription: y\nsteps: [{delete: \"1\"}]\nassertions: [{type: outcome, step: 0}]\n",
			wantErr: "outcome is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_AllTestdataFilesParse(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		_, err := os.Stat(f)
		require.NoError(t, err)
		_, err = LoadScenario(f)
		assert.NoError(t, err, f)
	}
}
