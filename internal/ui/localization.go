package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyAddImage         = "add_image"
	KeyAddFolder        = "add_folder"
	KeyRemoveSelected   = "remove_selected"
	KeyClearList        = "clear_list"
	KeyMoveUp           = "move_up"
	KeyMoveDown         = "move_down"
	KeyRemove           = "remove"
	KeyOutputFile       = "output_file"
	KeyBrowse           = "browse"
	KeyExport           = "export"
	KeyStop             = "stop"
	KeyCancel           = "cancel"
	KeySave             = "save"
	KeyOpen             = "open"
	KeyReveal           = "reveal"
	KeyFrameInterval    = "frame_interval"
	KeyWidth            = "width"
	KeyHeight           = "height"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyDefaults         = "defaults"
	KeyStatusReady      = "status_ready"
	KeyStatusRendering  = "status_rendering"
	KeyStatusEncoding   = "status_encoding"
	KeyStatusStopping   = "status_stopping"
	KeyExportStarted    = "export_started"
	KeyExportCompleted  = "export_completed"
	KeyExportCancelled  = "export_cancelled"
	KeyExportFailed     = "export_failed"
	KeyExportInProgress = "export_in_progress"
	KeyNoImages         = "no_images"
	KeyNoOutputPath     = "no_output_path"
	KeyInvalidNumber    = "invalid_number"
	KeyImagesCount      = "images_count"
	KeySkippedCount     = "skipped_count"
	KeyErrorOpeningFile = "error_opening_file"
	KeySettingsSaved    = "settings_saved"
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
		// Use system locale - simplified to English for now
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
		"de": "Deutsch",
		"en": "English",
		"fr": "Français",
		"es": "Español",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Images to MP4",
		KeyAddImage:         "Add Image",
		KeyAddFolder:        "Add Folder",
		KeyRemoveSelected:   "Remove Selected",
		KeyClearList:        "Clear List",
		KeyMoveUp:           "Move up",
		KeyMoveDown:         "Move down",
		KeyRemove:           "Remove",
		KeyOutputFile:       "Output file",
		KeyBrowse:           "Browse",
		KeyExport:           "Export MP4",
		KeyStop:             "Stop",
		KeyCancel:           "Cancel",
		KeySave:             "Save",
		KeyOpen:             "Open",
		KeyReveal:           "Reveal",
		KeyFrameInterval:    "Frame interval (ms)",
		KeyWidth:            "Width",
		KeyHeight:           "Height",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyDefaults:         "Default values",
		KeyStatusReady:      "Ready",
		KeyStatusRendering:  "Rendering frames...",
		KeyStatusEncoding:   "Encoding video...",
		KeyStatusStopping:   "Stopping...",
		KeyExportStarted:    "Export started",
		KeyExportCompleted:  "Export completed",
		KeyExportCancelled:  "Export cancelled",
		KeyExportFailed:     "Export failed",
		KeyExportInProgress: "An export is already in progress",
		KeyNoImages:         "Please add images first",
		KeyNoOutputPath:     "Please choose an output file",
		KeyInvalidNumber:    "Invalid number",
		KeyImagesCount:      "%d images",
		KeySkippedCount:     "%d images skipped",
		KeyErrorOpeningFile: "Error opening file",
		KeySettingsSaved:    "Settings saved successfully!",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:         "Bilder zu MP4",
		KeyAddImage:         "Bild hinzufügen",
		KeyAddFolder:        "Ordner hinzufügen",
		KeyRemoveSelected:   "Auswahl entfernen",
		KeyClearList:        "Liste leeren",
		KeyMoveUp:           "Nach oben",
		KeyMoveDown:         "Nach unten",
		KeyRemove:           "Entfernen",
		KeyOutputFile:       "Ausgabedatei",
		KeyBrowse:           "Durchsuchen",
		KeyExport:           "MP4 exportieren",
		KeyStop:             "Stopp",
		KeyCancel:           "Abbrechen",
		KeySave:             "Speichern",
		KeyOpen:             "Öffnen",
		KeyReveal:           "Anzeigen",
		KeyFrameInterval:    "Bildintervall (ms)",
		KeyWidth:            "Breite",
		KeyHeight:           "Höhe",
		KeySettings:         "Einstellungen",
		KeyFile:             "Datei",
		KeyLanguage:         "Sprache",
		KeyDefaults:         "Standardwerte",
		KeyStatusReady:      "Bereit",
		KeyStatusRendering:  "Einzelbilder werden erstellt...",
		KeyStatusEncoding:   "Video wird kodiert...",
		KeyStatusStopping:   "Wird gestoppt...",
		KeyExportStarted:    "Export gestartet",
		KeyExportCompleted:  "Export abgeschlossen",
		KeyExportCancelled:  "Export abgebrochen",
		KeyExportFailed:     "Export fehlgeschlagen",
		KeyExportInProgress: "Ein Export läuft bereits",
		KeyNoImages:         "Bitte zuerst Bilder hinzufügen",
		KeyNoOutputPath:     "Bitte eine Ausgabedatei wählen",
		KeyInvalidNumber:    "Ungültige Zahl",
		KeyImagesCount:      "%d Bilder",
		KeySkippedCount:     "%d Bilder übersprungen",
		KeyErrorOpeningFile: "Fehler beim Öffnen der Datei",
		KeySettingsSaved:    "Einstellungen erfolgreich gespeichert!",
	}

	// French texts
	l.texts["fr"] = map[string]string{
		KeyAppTitle:         "Images vers MP4",
		KeyAddImage:         "Ajouter une image",
		KeyAddFolder:        "Ajouter un dossier",
		KeyRemoveSelected:   "Retirer la sélection",
		KeyClearList:        "Vider la liste",
		KeyMoveUp:           "Monter",
		KeyMoveDown:         "Descendre",
		KeyRemove:           "Retirer",
		KeyOutputFile:       "Fichier de sortie",
		KeyBrowse:           "Parcourir",
		KeyExport:           "Exporter en MP4",
		KeyStop:             "Arrêter",
		KeyCancel:           "Annuler",
		KeySave:             "Enregistrer",
		KeyOpen:             "Ouvrir",
		KeyReveal:           "Afficher",
		KeyFrameInterval:    "Intervalle d'image (ms)",
		KeyWidth:            "Largeur",
		KeyHeight:           "Hauteur",
		KeySettings:         "Paramètres",
		KeyFile:             "Fichier",
		KeyLanguage:         "Langue",
		KeyDefaults:         "Valeurs par défaut",
		KeyStatusReady:      "Prêt",
		KeyStatusRendering:  "Rendu des images...",
		KeyStatusEncoding:   "Encodage de la vidéo...",
		KeyStatusStopping:   "Arrêt en cours...",
		KeyExportStarted:    "Export démarré",
		KeyExportCompleted:  "Export terminé",
		KeyExportCancelled:  "Export annulé",
		KeyExportFailed:     "Échec de l'export",
		KeyExportInProgress: "Un export est déjà en cours",
		KeyNoImages:         "Veuillez d'abord ajouter des images",
		KeyNoOutputPath:     "Veuillez choisir un fichier de sortie",
		KeyInvalidNumber:    "Nombre invalide",
		KeyImagesCount:      "%d images",
		KeySkippedCount:     "%d images ignorées",
		KeyErrorOpeningFile: "Erreur lors de l'ouverture du fichier",
		KeySettingsSaved:    "Paramètres enregistrés avec succès !",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:         "Imágenes a MP4",
		KeyAddImage:         "Añadir imagen",
		KeyAddFolder:        "Añadir carpeta",
		KeyRemoveSelected:   "Quitar selección",
		KeyClearList:        "Vaciar lista",
		KeyMoveUp:           "Subir",
		KeyMoveDown:         "Bajar",
		KeyRemove:           "Quitar",
		KeyOutputFile:       "Archivo de salida",
		KeyBrowse:           "Examinar",
		KeyExport:           "Exportar MP4",
		KeyStop:             "Detener",
		KeyCancel:           "Cancelar",
		KeySave:             "Guardar",
		KeyOpen:             "Abrir",
		KeyReveal:           "Mostrar",
		KeyFrameInterval:    "Intervalo de imagen (ms)",
		KeyWidth:            "Ancho",
		KeyHeight:           "Alto",
		KeySettings:         "Configuración",
		KeyFile:             "Archivo",
		KeyLanguage:         "Idioma",
		KeyDefaults:         "Valores predeterminados",
		KeyStatusReady:      "Listo",
		KeyStatusRendering:  "Generando fotogramas...",
		KeyStatusEncoding:   "Codificando vídeo...",
		KeyStatusStopping:   "Deteniendo...",
		KeyExportStarted:    "Exportación iniciada",
		KeyExportCompleted:  "Exportación completada",
		KeyExportCancelled:  "Exportación cancelada",
		KeyExportFailed:     "Exportación fallida",
		KeyExportInProgress: "Ya hay una exportación en curso",
		KeyNoImages:         "Añade imágenes primero",
		KeyNoOutputPath:     "Elige un archivo de salida",
		KeyInvalidNumber:    "Número no válido",
		KeyImagesCount:      "%d imágenes",
		KeySkippedCount:     "%d imágenes omitidas",
		KeyErrorOpeningFile: "Error al abrir el archivo",
		KeySettingsSaved:    "¡Configuración guardada correctamente!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Изображения в MP4",
		KeyAddImage:         "Добавить изображение",
		KeyAddFolder:        "Добавить папку",
		KeyRemoveSelected:   "Удалить выбранное",
		KeyClearList:        "Очистить список",
		KeyMoveUp:           "Вверх",
		KeyMoveDown:         "Вниз",
		KeyRemove:           "Удалить",
		KeyOutputFile:       "Выходной файл",
		KeyBrowse:           "Обзор",
		KeyExport:           "Экспорт в MP4",
		KeyStop:             "Стоп",
		KeyCancel:           "Отмена",
		KeySave:             "Сохранить",
		KeyOpen:             "Открыть",
		KeyReveal:           "Показать",
		KeyFrameInterval:    "Интервал кадра (мс)",
		KeyWidth:            "Ширина",
		KeyHeight:           "Высота",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyDefaults:         "Значения по умолчанию",
		KeyStatusReady:      "Готово",
		KeyStatusRendering:  "Создание кадров...",
		KeyStatusEncoding:   "Кодирование видео...",
		KeyStatusStopping:   "Остановка...",
		KeyExportStarted:    "Экспорт начат",
		KeyExportCompleted:  "Экспорт завершён",
		KeyExportCancelled:  "Экспорт отменён",
		KeyExportFailed:     "Ошибка экспорта",
		KeyExportInProgress: "Экспорт уже выполняется",
		KeyNoImages:         "Сначала добавьте изображения",
		KeyNoOutputPath:     "Выберите выходной файл",
		KeyInvalidNumber:    "Неверное число",
		KeyImagesCount:      "%d изображений",
		KeySkippedCount:     "%d изображений пропущено",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeySettingsSaved:    "Настройки успешно сохранены!",
	}
}
