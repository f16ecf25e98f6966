package model

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// TextureScales are the supported texture downscale factors, largest image first.
var TextureScales = []int{1, 2, 4, 8, 16}

var textureScaleNames = []string{"full", "half", "quarter", "eighth", "sixteenth"}

// ParseTextureScale accepts a factor ("4") or its name ("quarter").
func ParseTextureScale(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range textureScaleNames {
		if s == name {
			return TextureScales[i], nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || !ValidTextureScale(n) {
		return 0, fmt.Errorf("invalid texture scale %q (want one of %v or %s)", s, TextureScales, strings.Join(textureScaleNames, ", "))
	}

	return n, nil
}

// TextureScaleName returns the display name of a factor.
func TextureScaleName(n int) string {
	for i, scale := range TextureScales {
		if scale == n {
			return textureScaleNames[i]
		}
	}

	return strconv.Itoa(n)
}

// ValidTextureScale reports whether n is a supported factor.
func ValidTextureScale(n int) bool {
	for _, scale := range TextureScales {
		if scale == n {
			return true
		}
	}

	return false
}

// Settings is the persisted state of the repro wizard.
type Settings struct {
	ProjectName     string      `yaml:"project_name"`
	ProjectPath     string      `yaml:"project_path"`
	OpenAfterExport bool        `yaml:"open_after_export"`
	TextureScale    int         `yaml:"texture_scale"`
	InputItems      []InputSpec `yaml:"input_items"`
	ProjectItems    []InputSpec `yaml:"project_items"`
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() Settings {
	return Settings{
		TextureScale: 1,
		InputItems:   []InputSpec{},
		ProjectItems: []InputSpec{},
	}
}

// Sanitize fills absent lists and resets an unsupported texture scale to 1.
func (s *Settings) Sanitize() {
	if !ValidTextureScale(s.TextureScale) {
		s.TextureScale = 1
	}

	if s.InputItems == nil {
		s.InputItems = []InputSpec{}
	}

	if s.ProjectItems == nil {
		s.ProjectItems = []InputSpec{}
	}

	for i := range s.InputItems {
		s.InputItems[i].Path = s.InputItems[i].Path.Normalize()
		if s.InputItems[i].Kind == "" {
			s.InputItems[i].Kind = InputWildcard
		}
	}

	for i := range s.ProjectItems {
		s.ProjectItems[i].Path = s.ProjectItems[i].Path.Normalize()
		if s.ProjectItems[i].Kind == "" {
			s.ProjectItems[i].Kind = InputWildcard
		}
	}
}

// TargetPath is the directory the repro project is written to, or "" when
// either the name or the location is missing.
func (s Settings) TargetPath() string {
	if strings.TrimSpace(s.ProjectName) == "" || strings.TrimSpace(s.ProjectPath) == "" {
		return ""
	}

	return filepath.Join(s.ProjectPath, s.ProjectName)
}

// SetTarget assigns a chosen location. When isProject reports that the path
// already is a project directory, it is split into location and name.
func (s *Settings) SetTarget(path string, isProject func(string) bool) {
	path = filepath.Clean(path)
	if isProject != nil && isProject(path) {
		s.ProjectName = filepath.Base(path)
		s.ProjectPath = filepath.Dir(path)

		return
	}

	s.ProjectPath = path
}
