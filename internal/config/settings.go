package config

import (
	"fyne.io/fyne/v2"
)

// KeyLanguage is the Fyne preference holding the UI language code
const KeyLanguage = "app_language"

// DefaultLanguage follows the operating system locale
const DefaultLanguage = "system"

var languageOptions = map[string]string{
	DefaultLanguage: "System",
	"en":            "English",
	"ru":            "Русский",
}

// Settings manages the user's UI preferences. The map view itself is never
// stored; each start begins at the configured centre.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the saved language, or DefaultLanguage when nothing
// usable is stored.
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if _, ok := languageOptions[lang]; !ok {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage saves lang. Unknown codes reset the preference to DefaultLanguage.
func (s *Settings) SetLanguage(lang string) {
	if _, ok := languageOptions[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns the selectable languages keyed by code
func (s *Settings) GetLanguageOptions() map[string]string {
	options := make(map[string]string, len(languageOptions))
	for code, name := range languageOptions {
		options[code] = name
	}
	return options
}
