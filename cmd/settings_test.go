package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	controllermocks "reprowiz.dev/pkg/reprowiz/internal/controller/mocks"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

func expectSettingsShown(t *testing.T, match func(m.Settings) bool) {
	t.Helper()

	mockUI := controllermocks.NewMockUI(t)
	useUI(t, mockUI)

	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplaySettings(mock.Anything, mock.MatchedBy(match)).Return().Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()
}

func TestSettingsCmd_ShowsSavedSettings(t *testing.T) {
	root := t.TempDir()
	savedSettings(t, root, m.Settings{ProjectName: "Repro", ProjectPath: "/tmp/out", TextureScale: 16})

	expectSettingsShown(t, func(s m.Settings) bool {
		return s.ProjectName == "Repro" && s.TextureScale == 16
	})

	_, err := executeCommand(t, newSettingsCmd, "-p", root, "settings")
	require.NoError(t, err)
}

func TestSettingsCmd_MissingFileShowsDefaults(t *testing.T) {
	root := t.TempDir()

	expectSettingsShown(t, func(s m.Settings) bool {
		return s.TextureScale == 1 && len(s.InputItems) == 0
	})

	_, err := executeCommand(t, newSettingsCmd, "-p", root, "settings")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(root, defaultSettingsName))
}

func TestSettingsCmd_FlagsAreSaved(t *testing.T) {
	root := t.TempDir()
	path := savedSettings(t, root, m.Settings{ProjectName: "Repro", ProjectPath: "/tmp/out", TextureScale: 1})

	expectSettingsShown(t, func(s m.Settings) bool {
		return s.TextureScale == 2 && len(s.InputItems) == 1
	})

	_, err := executeCommand(t, newSettingsCmd, "-p", root, "settings", "--scale", "half", "-i", "Assets/Scenes/*.unity")
	require.NoError(t, err)

	saved := loadSaved(t, path)
	assert.Equal(t, "Repro", saved.ProjectName)
	assert.Equal(t, 2, saved.TextureScale)
	assert.Equal(t, []m.InputSpec{{Kind: m.InputWildcard, Path: "Assets/Scenes/*.unity"}}, saved.InputItems)
}

func TestSettingsCmd_InvalidScaleIsNotSaved(t *testing.T) {
	root := t.TempDir()
	path := savedSettings(t, root, m.Settings{ProjectName: "Repro", TextureScale: 4})

	useUI(t, controllermocks.NewMockUI(t))

	_, err := executeCommand(t, newSettingsCmd, "-p", root, "settings", "--scale", "tiny")
	require.Error(t, err)
	assert.Equal(t, 4, loadSaved(t, path).TextureScale)
}

func TestParseSpecs(t *testing.T) {
	specs, err := parseSpecs([]string{"scene:Assets/A.unity", `Assets\B\*.prefab`})
	require.NoError(t, err)
	assert.Equal(t, []m.InputSpec{
		{Kind: m.InputScene, Path: "Assets/A.unity"},
		{Kind: m.InputWildcard, Path: "Assets/B/*.prefab"},
	}, specs)

	specs, err = parseSpecs([]string{"Assets/Level:1.unity"})
	require.NoError(t, err)
	assert.Equal(t, []m.InputSpec{{Kind: m.InputWildcard, Path: "Assets/Level:1.unity"}}, specs)

	_, err = parseSpecs([]string{"prefab:"})
	assert.Error(t, err)
}
