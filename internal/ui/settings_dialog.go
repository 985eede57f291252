package ui

import (
	"maps"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/glass-calculator/internal/config"
	"github.com/ytget/glass-calculator/internal/engine"
	"github.com/ytget/glass-calculator/internal/model"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 360
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// Select labels mapped back to stored values
	variantValues  map[string]model.Variant
	angleValues    map[string]model.AngleMode
	languageValues map[string]string

	// UI components
	variantSelect  *widget.Select
	angleSelect    *widget.Select
	precisionEntry *widget.Entry
	languageSelect *widget.Select
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.variantValues = map[string]model.Variant{}
	var variantOptions []string
	for _, v := range sd.settings.GetVariantOptions() {
		label := l.GetText(KeyBasic)
		if v == model.VariantScientific {
			label = l.GetText(KeyScientific)
		}
		sd.variantValues[label] = v
		variantOptions = append(variantOptions, label)
	}
	sd.variantSelect = widget.NewSelect(variantOptions, nil)

	sd.angleValues = map[string]model.AngleMode{
		l.GetText(KeyDegrees): model.AngleDegrees,
		l.GetText(KeyRadians): model.AngleRadians,
	}
	sd.angleSelect = widget.NewSelect([]string{l.GetText(KeyDegrees), l.GetText(KeyRadians)}, nil)

	sd.precisionEntry = widget.NewEntry()
	sd.precisionEntry.SetPlaceHolder("0-" + strconv.Itoa(engine.MaxPrecision))

	sd.languageValues = map[string]string{}
	languageLabels := sd.settings.GetLanguageOptions()
	var languageOptions []string
	for _, code := range slices.Sorted(maps.Keys(languageLabels)) {
		sd.languageValues[languageLabels[code]] = code
		languageOptions = append(languageOptions, languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyCalculation)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyVariant)+":"),
		sd.variantSelect,

		widget.NewLabel(l.GetText(KeyAngleMode)+":"),
		sd.angleSelect,

		widget.NewLabel(l.GetText(KeyPrecision)+":"),
		sd.precisionEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.variantSelect.SetSelected(labelOf(sd.variantValues, sd.settings.GetVariant()))
	sd.angleSelect.SetSelected(labelOf(sd.angleValues, sd.settings.GetAngleMode()))
	sd.precisionEntry.SetText(strconv.Itoa(sd.settings.GetPrecision()))
	sd.languageSelect.SetSelected(labelOf(sd.languageValues, sd.settings.GetLanguage()))
}

// labelOf finds the select label stored for value
func labelOf[V comparable](values map[string]V, value V) string {
	for label, v := range values {
		if v == value {
			return label
		}
	}
	return ""
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if v, ok := sd.variantValues[sd.variantSelect.Selected]; ok {
		sd.settings.SetVariant(v)
	}

	if mode, ok := sd.angleValues[sd.angleSelect.Selected]; ok {
		sd.settings.SetAngleMode(mode)
	}

	// Invalid numbers keep the stored precision; setter clamps the range
	if precision, err := strconv.Atoi(sd.precisionEntry.Text); err == nil {
		sd.settings.SetPrecision(precision)
	}

	if code, ok := sd.languageValues[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
