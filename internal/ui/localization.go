package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyMapLoadError      = "map_load_error"
	KeyNoImage           = "no_image"
	KeyFile              = "file"
	KeyOpenImage         = "open_image"
	KeyRevealImage       = "reveal_image"
	KeyCopyCoordinates   = "copy_coordinates"
	KeyRefresh           = "refresh"
	KeyView              = "view"
	KeyZoomIn            = "zoom_in"
	KeyZoomOut           = "zoom_out"
	KeyLayer             = "layer"
	KeyLayerMap          = "layer_map"
	KeyLayerSatellite    = "layer_satellite"
	KeyLayerHybrid       = "layer_hybrid"
	KeyLanguage          = "language"
	KeyStatusLatitude    = "status_latitude"
	KeyStatusLongitude   = "status_longitude"
	KeyStatusZoom        = "status_zoom"
	KeyStatusStep        = "status_step"
	KeyCoordinatesCopied = "coordinates_copied"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorLayer        = "error_layer"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves through the
// LANGUAGE, LC_ALL, LC_MESSAGES and LANG environment variables.
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem {
		lang = systemLanguage()
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
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// systemLanguage extracts a two-letter code such as "ru" from locale
// variables like "ru_RU.UTF-8", falling back to English.
func systemLanguage() string {
	for _, name := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		code := strings.ToLower(value)
		if i := strings.IndexAny(code, "_.:-@"); i >= 0 {
			code = code[:i]
		}
		if code != "" {
			return code
		}
	}
	return LangEnglish
}

// initializeTexts sets up all localized texts
func (l *Localization) initializeTexts() {
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:          "Map",
		KeyMapLoadError:      "Failed to load map",
		KeyNoImage:           "Loading map...",
		KeyFile:              "File",
		KeyOpenImage:         "Open image",
		KeyRevealImage:       "Show in folder",
		KeyCopyCoordinates:   "Copy coordinates",
		KeyRefresh:           "Refresh",
		KeyView:              "View",
		KeyZoomIn:            "Zoom in",
		KeyZoomOut:           "Zoom out",
		KeyLayer:             "Layer",
		KeyLayerMap:          "Scheme",
		KeyLayerSatellite:    "Satellite",
		KeyLayerHybrid:       "Hybrid",
		KeyLanguage:          "Language",
		KeyStatusLatitude:    "Lat",
		KeyStatusLongitude:   "Lon",
		KeyStatusZoom:        "Zoom",
		KeyStatusStep:        "Step",
		KeyCoordinatesCopied: "Coordinates copied",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorLayer:        "Unknown map layer",
	}

	l.texts[LangRussian] = map[string]string{
		KeyAppTitle:          "Карта",
		KeyMapLoadError:      "Ошибка при загрузке карты",
		KeyNoImage:           "Загрузка карты...",
		KeyFile:              "Файл",
		KeyOpenImage:         "Открыть изображение",
		KeyRevealImage:       "Показать в папке",
		KeyCopyCoordinates:   "Копировать координаты",
		KeyRefresh:           "Обновить",
		KeyView:              "Вид",
		KeyZoomIn:            "Приблизить",
		KeyZoomOut:           "Отдалить",
		KeyLayer:             "Слой",
		KeyLayerMap:          "Схема",
		KeyLayerSatellite:    "Спутник",
		KeyLayerHybrid:       "Гибрид",
		KeyLanguage:          "Язык",
		KeyStatusLatitude:    "Шир.",
		KeyStatusLongitude:   "Долг.",
		KeyStatusZoom:        "Масштаб",
		KeyStatusStep:        "Шаг",
		KeyCoordinatesCopied: "Координаты скопированы",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorLayer:        "Неизвестный слой карты",
	}
}
