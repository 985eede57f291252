package ui

import (
	"maps"
	"slices"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/ytget/glass-calculator/internal/config"
	"github.com/ytget/glass-calculator/internal/engine"
	"github.com/ytget/glass-calculator/internal/keypad"
	"github.com/ytget/glass-calculator/internal/logging"
	"github.com/ytget/glass-calculator/internal/model"
)

// angleSetter is implemented by engines with an angle mode
type angleSetter interface {
	SetAngleMode(mode model.AngleMode)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	log          zerolog.Logger
	sessionID    string

	variant model.Variant
	calc    engine.Keypad

	display  *Display
	angleBtn *widget.Button
	buttons  map[model.Key]*widget.Button

	// Notification panel
	notificationLabel *widget.Label
	notificationTimer *time.Timer

	// Config file rewritten after the settings dialog saves
	configFs   afero.Fs
	configPath string
}

// NewRootUI creates the calculator window content for the given variant
func NewRootUI(window fyne.Window, app fyne.App, variant model.Variant) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		sessionID:    id.String(),
	}
	ui.log = logging.Module("ui").With().Str("session", ui.sessionID).Logger()

	if !variant.IsValid() {
		variant = settings.GetVariant()
	}
	ui.variant = variant
	settings.SetVariant(variant)
	ui.calc = ui.newEngine(variant)

	ui.log.Info().Str("variant", variant.String()).Msg("calculator session started")

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupKeyboard()
	ui.setupUI()
	return ui
}

// newEngine builds an engine configured from the current settings
func (ui *RootUI) newEngine(variant model.Variant) engine.Keypad {
	calc := engine.NewVariant(variant, engine.WithPrecision(ui.settings.GetPrecision()))
	if s, ok := calc.(angleSetter); ok {
		s.SetAngleMode(ui.settings.GetAngleMode())
	}
	return calc
}

// SessionID returns the id logged with every event of this window
func (ui *RootUI) SessionID() string {
	return ui.sessionID
}

// SetConfigFile makes saved settings also be written to the TOML file at
// path, so the file does not override them on the next start.
func (ui *RootUI) SetConfigFile(fs afero.Fs, path string) {
	ui.configFs = fs
	ui.configPath = path
}

// Variant returns the active keypad variant
func (ui *RootUI) Variant() model.Variant {
	return ui.variant
}

// Snapshot returns the engine state currently shown
func (ui *RootUI) Snapshot() engine.Snapshot {
	return ui.calc.Snapshot()
}

// Display returns the display widget
func (ui *RootUI) Display() *Display {
	return ui.display
}

// Button returns the keypad button for key, or nil when the variant has none
func (ui *RootUI) Button(key model.Key) *widget.Button {
	return ui.buttons[key]
}

// Press forwards a key to the engine and redraws the display
func (ui *RootUI) Press(key model.Key) bool {
	ok := ui.calc.Press(key)
	ui.log.Debug().
		Str("key", key.String()).
		Bool("accepted", ok).
		Str("display", ui.calc.Snapshot().Display).
		Msg("key pressed")
	ui.refresh()
	return ok
}

// SetVariant switches between the basic and scientific keypads. A new engine
// is created, so the display and memory start over.
func (ui *RootUI) SetVariant(variant model.Variant) {
	if !variant.IsValid() || variant == ui.variant {
		return
	}
	ui.log.Info().
		Str("from", ui.variant.String()).
		Str("to", variant.String()).
		Msg("variant switched")

	ui.variant = variant
	ui.settings.SetVariant(variant)
	ui.calc = ui.newEngine(variant)
	ui.setupUI()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.display = NewDisplay()
	ui.display.SetOnGesture(ui.onDisplayGesture)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	copyBtn := widget.NewButton(IconCopy, ui.onCopy)
	copyBtn.Importance = widget.LowImportance

	ui.angleBtn = widget.NewButton("", func() {
		ui.Press(model.KeyAngleToggle)
	})
	ui.angleBtn.Importance = widget.LowImportance
	if ui.variant != model.VariantScientific {
		ui.angleBtn.Hide()
	}

	header := container.NewBorder(nil, nil, ui.angleBtn, container.NewHBox(copyBtn, settingsBtn))

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignCenter
	ui.notificationLabel.Hide()

	top := container.NewVBox(header, ui.display, ui.notificationLabel)

	content := container.NewBorder(top, nil, nil, nil, ui.createKeypad(LayoutFor(ui.variant)))
	ui.window.SetContent(container.NewPadded(content))

	if ui.variant == model.VariantScientific {
		ui.window.Resize(fyne.NewSize(ScientificWindowWidth, ScientificWindowHeight))
	} else {
		ui.window.Resize(fyne.NewSize(BasicWindowWidth, BasicWindowHeight))
	}

	ui.refresh()
}

// createKeypad builds one button per layout cell
func (ui *RootUI) createKeypad(l KeypadLayout) fyne.CanvasObject {
	ui.buttons = make(map[model.Key]*widget.Button, len(l.Keys()))
	height := ui.mobile.ButtonHeight()

	rows := make([]fyne.CanvasObject, 0, len(l.Rows))
	for _, cells := range l.Rows {
		objects := make([]fyne.CanvasObject, 0, len(cells))
		for _, c := range cells {
			key := c.Key
			btn := widget.NewButton(key.Label(), func() {
				ui.Press(key)
			})
			btn.Importance = importanceFor(key)
			ui.buttons[key] = btn
			objects = append(objects, btn)
		}
		rows = append(rows, container.New(newSpanLayout(cells, l.Columns, height), objects...))
	}
	return container.NewGridWithRows(len(rows), rows...)
}

// setupKeyboard maps typed runes and named keys onto the keypad
func (ui *RootUI) setupKeyboard() {
	c := ui.window.Canvas()
	c.SetOnTypedRune(func(r rune) {
		if key, ok := keypad.FromRune(r); ok {
			ui.Press(key)
		}
	})
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if key, ok := keypad.FromKeyName(ev.Name); ok {
			ui.Press(key)
		}
	})
}

// refresh redraws everything that depends on the engine state
func (ui *RootUI) refresh() {
	snap := ui.calc.Snapshot()
	ui.display.Update(snap)
	if snap.AngleMode.IsValid() {
		ui.angleBtn.SetText(snap.AngleMode.Label())
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	copyItem := fyne.NewMenuItem(ui.localization.GetText(KeyCopy), ui.onCopy)

	viewMenu := fyne.NewMenu(ui.localization.GetText(KeyView))
	for _, v := range model.Variants {
		variant := v
		item := fyne.NewMenuItem(ui.variantLabel(variant), func() {
			ui.SetVariant(variant)
		})
		item.Checked = ui.variant == variant
		viewMenu.Items = append(viewMenu.Items, item)
	}

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(availableLanguages)) {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		fyne.NewMenu(ui.localization.GetText(KeyEdit), copyItem),
		viewMenu,
		languageMenu,
	))
}

// variantLabel returns the localized name of a variant
func (ui *RootUI) variantLabel(v model.Variant) string {
	if v == model.VariantScientific {
		return ui.localization.GetText(KeyScientific)
	}
	return ui.localization.GetText(KeyBasic)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.log.Info().Str("language", langCode).Msg("language changed")

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
}

// onDisplayGesture maps display swipes to backspace and a long press to copy
func (ui *RootUI) onDisplayGesture(g GestureType) {
	switch g {
	case GestureSwipeLeft, GestureSwipeRight:
		ui.Press(model.KeyBackspace)
	case GestureLongPress:
		ui.onCopy()
	}
}

// onCopy copies the display value to the clipboard
func (ui *RootUI) onCopy() {
	ui.app.Clipboard().SetContent(ui.calc.Snapshot().Display)
	ui.showNotification(ui.localization.GetText(KeyCopied))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies edited preferences to the running session
func (ui *RootUI) onSettingsSaved() {
	ui.log.Info().
		Str("variant", ui.settings.GetVariant().String()).
		Str("angle_mode", ui.settings.GetAngleMode().String()).
		Int("precision", ui.settings.GetPrecision()).
		Str("language", ui.settings.GetLanguage()).
		Msg("settings saved")

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	if variant := ui.settings.GetVariant(); variant != ui.variant {
		ui.SetVariant(variant)
	} else {
		ui.calc.SetPrecision(ui.settings.GetPrecision())
		if s, ok := ui.calc.(angleSetter); ok {
			s.SetAngleMode(ui.settings.GetAngleMode())
		}
		ui.createMenu()
		ui.refresh()
	}

	ui.saveConfigFile()
	ui.showNotification(ui.localization.GetText(KeySettingsSaved))
}

// saveConfigFile writes the preferences to the config file, if one is set
func (ui *RootUI) saveConfigFile() {
	if ui.configFs == nil || ui.configPath == "" {
		return
	}
	if err := config.SaveFile(ui.configFs, ui.configPath, ui.settings.File()); err != nil {
		ui.log.Warn().Err(err).Str("config", ui.configPath).Msg("config file not saved")
		return
	}
	ui.log.Debug().Str("config", ui.configPath).Msg("config file saved")
}

// showNotification shows a short message under the display and hides it
// after NotificationAutoHide.
func (ui *RootUI) showNotification(message string) {
	label := ui.notificationLabel
	label.SetText(message)
	label.Show()

	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(label.Hide)
	})
}

// Notification returns the message currently shown, empty when hidden
func (ui *RootUI) Notification() string {
	if !ui.notificationLabel.Visible() {
		return ""
	}
	return ui.notificationLabel.Text
}
