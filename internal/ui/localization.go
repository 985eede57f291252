package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyBasic         = "basic"
	KeyScientific    = "scientific"
	KeyFile          = "file"
	KeyEdit          = "edit"
	KeyView          = "view"
	KeySettings      = "settings"
	KeyLanguage      = "language"
	KeyCopy          = "copy"
	KeyCopied        = "copied"
	KeyVariant       = "variant"
	KeyAngleMode     = "angle_mode"
	KeyDegrees       = "degrees"
	KeyRadians       = "radians"
	KeyPrecision     = "precision"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettingsSaved = "settings_saved"
	KeyInterface     = "interface"
	KeyCalculation   = "calculation"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "Calculator",
		KeyBasic:         "Basic",
		KeyScientific:    "Scientific",
		KeyFile:          "File",
		KeyEdit:          "Edit",
		KeyView:          "View",
		KeySettings:      "Settings",
		KeyLanguage:      "Language",
		KeyCopy:          "Copy Result",
		KeyCopied:        "Copied to clipboard",
		KeyVariant:       "Keypad",
		KeyAngleMode:     "Angle Mode",
		KeyDegrees:       "Degrees",
		KeyRadians:       "Radians",
		KeyPrecision:     "Significant Digits (0 = full)",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySettingsSaved: "Settings saved successfully!",
		KeyInterface:     "Interface Settings",
		KeyCalculation:   "Calculation Settings",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "Калькулятор",
		KeyBasic:         "Обычный",
		KeyScientific:    "Инженерный",
		KeyFile:          "Файл",
		KeyEdit:          "Правка",
		KeyView:          "Вид",
		KeySettings:      "Настройки",
		KeyLanguage:      "Язык",
		KeyCopy:          "Копировать результат",
		KeyCopied:        "Скопировано в буфер обмена",
		KeyVariant:       "Клавиатура",
		KeyAngleMode:     "Единицы углов",
		KeyDegrees:       "Градусы",
		KeyRadians:       "Радианы",
		KeyPrecision:     "Значащие цифры (0 = все)",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyInterface:     "Интерфейс",
		KeyCalculation:   "Вычисления",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Calculadora",
		KeyBasic:         "Básica",
		KeyScientific:    "Científica",
		KeyFile:          "Arquivo",
		KeyEdit:          "Editar",
		KeyView:          "Exibir",
		KeySettings:      "Configurações",
		KeyLanguage:      "Idioma",
		KeyCopy:          "Copiar Resultado",
		KeyCopied:        "Copiado para a área de transferência",
		KeyVariant:       "Teclado",
		KeyAngleMode:     "Modo de Ângulo",
		KeyDegrees:       "Graus",
		KeyRadians:       "Radianos",
		KeyPrecision:     "Dígitos Significativos (0 = todos)",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyInterface:     "Interface",
		KeyCalculation:   "Cálculo",
	}
}
