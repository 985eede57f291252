package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/glass-calculator/internal/engine"
	"github.com/ytget/glass-calculator/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyVariant   = "calculator_variant"
	KeyAngleMode = "angle_mode"
	KeyPrecision = "display_precision"
	KeyLanguage  = "app_language"
)

// Default values
const (
	DefaultVariant   = model.VariantBasic
	DefaultAngleMode = model.AngleDegrees
	DefaultPrecision = engine.DefaultPrecision
	DefaultLanguage  = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetVariant returns the keypad shown on start-up
func (s *Settings) GetVariant() model.Variant {
	v := model.Variant(s.app.Preferences().String(KeyVariant))
	if !v.IsValid() {
		s.SetVariant(DefaultVariant)
		return DefaultVariant
	}
	return v
}

// SetVariant sets the start-up keypad; unknown variants store the default
func (s *Settings) SetVariant(v model.Variant) {
	if !v.IsValid() {
		v = DefaultVariant
	}
	s.app.Preferences().SetString(KeyVariant, string(v))
}

// GetAngleMode returns the angle mode a new scientific engine starts in
func (s *Settings) GetAngleMode() model.AngleMode {
	mode := model.AngleMode(s.app.Preferences().String(KeyAngleMode))
	if !mode.IsValid() {
		s.SetAngleMode(DefaultAngleMode)
		return DefaultAngleMode
	}
	return mode
}

// SetAngleMode sets the default angle mode
func (s *Settings) SetAngleMode(mode model.AngleMode) {
	if !mode.IsValid() {
		mode = DefaultAngleMode
	}
	s.app.Preferences().SetString(KeyAngleMode, string(mode))
}

// GetPrecision returns the number of significant digits shown in results
func (s *Settings) GetPrecision() int {
	precision := s.app.Preferences().IntWithFallback(KeyPrecision, -1)
	if precision < 0 {
		s.SetPrecision(DefaultPrecision)
		return DefaultPrecision
	}
	if precision > engine.MaxPrecision {
		s.SetPrecision(precision)
		return engine.MaxPrecision
	}
	return precision
}

// SetPrecision sets the result precision
func (s *Settings) SetPrecision(precision int) {
	if precision < 0 {
		precision = 0
	}
	if precision > engine.MaxPrecision {
		precision = engine.MaxPrecision
	}
	s.app.Preferences().SetInt(KeyPrecision, precision)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetVariantOptions returns available variants
func (s *Settings) GetVariantOptions() []model.Variant {
	return []model.Variant{model.VariantBasic, model.VariantScientific}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Apply copies the values present in f into the preferences
func (s *Settings) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Variant != "" {
		s.SetVariant(model.Variant(f.Variant))
	}
	if f.AngleMode != "" {
		s.SetAngleMode(model.AngleMode(f.AngleMode))
	}
	if f.Precision != nil {
		s.SetPrecision(*f.Precision)
	}
	if f.Language != "" {
		s.SetLanguage(f.Language)
	}
}

// File returns the current preferences as a config file. The language is
// left out while it follows the system.
func (s *Settings) File() *File {
	precision := s.GetPrecision()
	f := &File{
		Variant:   string(s.GetVariant()),
		AngleMode: string(s.GetAngleMode()),
		Precision: &precision,
	}
	if lang := s.GetLanguage(); lang != DefaultLanguage {
		f.Language = lang
	}
	return f
}
