package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const settingsFilePerm os.FileMode = 0o644

// SettingsStore persists the repro wizard settings.
type SettingsStore interface {
	LoadSettings(path m.Path) (m.Settings, error)
	SaveSettings(path m.Path, settings m.Settings) error
}

// YAMLSettingsStore keeps settings in a YAML document.
type YAMLSettingsStore struct {
	fs SourceFSAdapter
}

// NewSettingsStore returns a YAML settings store writing through fs.
func NewSettingsStore(fs SourceFSAdapter) *YAMLSettingsStore {
	return &YAMLSettingsStore{fs: fs}
}

// LoadSettings reads settings from path. A missing file yields the defaults,
// missing fields keep their default values.
func (s *YAMLSettingsStore) LoadSettings(path m.Path) (m.Settings, error) {
	settings := m.DefaultSettings()

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}

		return settings, fmt.Errorf("read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return m.DefaultSettings(), &m.ReportParseError{Path: path, Err: err}
	}

	settings.Sanitize()

	return settings, nil
}

// SaveSettings writes settings to path atomically.
func (s *YAMLSettingsStore) SaveSettings(path m.Path, settings m.Settings) error {
	settings.Sanitize()

	data, err := yaml.Marshal(&settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := s.fs.WriteFileAtomic(path, data, settingsFilePerm); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}

	return nil
}
