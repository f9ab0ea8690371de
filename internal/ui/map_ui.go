package ui

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"maps"
	"os"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/webp"

	"github.com/ytget/map-viewer/internal/config"
	"github.com/ytget/map-viewer/internal/logging"
	"github.com/ytget/map-viewer/internal/model"
	"github.com/ytget/map-viewer/internal/platform"
	"github.com/ytget/map-viewer/internal/tiles"
	"github.com/ytget/map-viewer/internal/viewer"
)

// MapUI represents the map window: the image (or an error text in its
// place) above a one-line status bar.
type MapUI struct {
	window       fyne.Window
	app          fyne.App
	nav          viewer.Navigator
	settings     *config.Settings
	localization *Localization
	keymap       *KeyMap
	log          zerolog.Logger
	ctx          context.Context

	mapImage    *canvas.Image
	messageText *widget.Label
	statusLabel *widget.Label
	surface     *MapSurface

	last viewer.Snapshot
	// hasImage is false until a snapshot has been displayed
	hasImage bool

	openFile   func(string) error
	revealFile func(string) error
}

// NewMapUI creates the map window content and hooks keyboard input. The
// image area is sized to imageSize.
func NewMapUI(window fyne.Window, app fyne.App, nav viewer.Navigator, imageSize tiles.Size) *MapUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &MapUI{
		window:       window,
		app:          app,
		nav:          nav,
		settings:     settings,
		localization: localization,
		keymap:       DefaultKeyMap(),
		log:          logging.Module("ui"),
		ctx:          context.Background(),
		openFile:     platform.OpenFileWithDefaultApp,
		revealFile:   platform.OpenFileInManager,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	nav.SetUpdateCallback(ui.onSnapshot)

	ui.setupUI(imageSize)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *MapUI) setupUI(imageSize tiles.Size) {
	ui.createMenu()

	ui.mapImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.mapImage.SetMinSize(fyne.NewSize(float32(imageSize.Width), float32(imageSize.Height)))
	ui.mapImage.Hide()

	ui.messageText = widget.NewLabel(ui.localization.GetText(KeyNoImage))
	ui.messageText.Alignment = fyne.TextAlignCenter
	ui.messageText.Wrapping = fyne.TextWrapWord

	ui.surface = NewMapSurface(
		container.NewStack(ui.mapImage, container.NewCenter(ui.messageText)),
		ui.HandleAction,
	)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.updateStatus(ui.nav.State())

	content := container.NewBorder(
		nil,            // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		ui.surface,     // center
	)
	ui.window.SetContent(content)

	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
	ui.window.Canvas().SetOnTypedRune(ui.onTypedRune)
}

// createMenu creates the application menu
func (ui *MapUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile),
		fyne.NewMenuItem(ui.localization.GetText(KeyOpenImage), ui.onOpenImage),
		fyne.NewMenuItem(ui.localization.GetText(KeyRevealImage), ui.onRevealImage),
		fyne.NewMenuItem(ui.localization.GetText(KeyCopyCoordinates), ui.onCopyCoordinates),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), func() { ui.HandleAction(model.ActionRefresh) }),
	)

	viewMenu := fyne.NewMenu(ui.localization.GetText(KeyView),
		fyne.NewMenuItem(ui.localization.GetText(KeyZoomIn), func() { ui.HandleAction(model.ActionZoomIn) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyZoomOut), func() { ui.HandleAction(model.ActionZoomOut) }),
	)

	layerMenu := fyne.NewMenu(ui.localization.GetText(KeyLayer))
	for _, layer := range tiles.Layers() {
		item := fyne.NewMenuItem(ui.layerName(layer), func() {
			ui.onLayerChange(layer)
		})
		item.Checked = ui.nav.Layer() == layer
		layerMenu.Items = append(layerMenu.Items, item)
	}

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	options := ui.settings.GetLanguageOptions()
	current := ui.settings.GetLanguage()
	for _, code := range slices.Sorted(maps.Keys(options)) {
		item := fyne.NewMenuItem(options[code], func() {
			ui.onLanguageChange(code)
		})
		item.Checked = current == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, layerMenu, languageMenu))
}

func (ui *MapUI) layerName(layer string) string {
	switch layer {
	case tiles.LayerSatellite:
		return ui.localization.GetText(KeyLayerSatellite)
	case tiles.LayerHybrid:
		return ui.localization.GetText(KeyLayerHybrid)
	default:
		return ui.localization.GetText(KeyLayerMap)
	}
}

// Start fetches the image for the initial view
func (ui *MapUI) Start() {
	ui.nav.Refresh(ui.ctx)
}

// HandleAction runs one navigation action. The fetch happens synchronously;
// the result arrives through the update callback.
func (ui *MapUI) HandleAction(action model.Action) {
	if action == model.ActionRefresh {
		ui.nav.Refresh(ui.ctx)
		return
	}
	ui.nav.Apply(ui.ctx, action)
}

func (ui *MapUI) onTypedKey(event *fyne.KeyEvent) {
	if action, ok := ui.keymap.ActionForKey(event.Name); ok {
		ui.HandleAction(action)
	}
}

func (ui *MapUI) onTypedRune(r rune) {
	if action, ok := ui.keymap.ActionForRune(r); ok {
		ui.HandleAction(action)
	}
}

// onSnapshot shows the outcome of a fetch
func (ui *MapUI) onSnapshot(snap viewer.Snapshot) {
	ui.last = snap
	ui.updateStatus(snap.State)

	if !snap.OK() {
		ui.showError()
		return
	}

	img, err := decodeImageFile(snap.ImagePath)
	if err != nil {
		ui.log.Warn().
			Err(err).
			Str("request_id", snap.RequestID).
			Str("path", snap.ImagePath).
			Msg("fetched image could not be decoded")
		ui.showError()
		return
	}

	ui.mapImage.Image = img
	ui.mapImage.File = ""
	ui.mapImage.Show()
	ui.mapImage.Refresh()
	ui.messageText.Hide()
	ui.hasImage = true
}

func (ui *MapUI) showError() {
	ui.mapImage.Hide()
	ui.mapImage.Image = nil
	ui.messageText.SetText(ui.localization.GetText(KeyMapLoadError))
	ui.messageText.Show()
	ui.hasImage = false
}

// decodeImageFile reads and decodes the image at path. Registered formats
// are PNG, JPEG, GIF and WebP.
func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func (ui *MapUI) updateStatus(vs model.ViewState) {
	l := ui.localization
	ui.statusLabel.SetText(fmt.Sprintf("%s %s%s%s %s%s%s %d%s%s %s%s",
		l.GetText(KeyStatusLatitude), formatDegrees(vs.Latitude), MiddleDotSeparator,
		l.GetText(KeyStatusLongitude), formatDegrees(vs.Longitude), MiddleDotSeparator,
		l.GetText(KeyStatusZoom), vs.Zoom, MiddleDotSeparator,
		l.GetText(KeyStatusStep), strconv.FormatFloat(ui.nav.PanStep(), 'g', 6, 64), DegreeSign,
	))
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64) + DegreeSign
}

// onOpenImage opens the last fetched image in the system viewer
func (ui *MapUI) onOpenImage() {
	path := ui.nav.ImagePath()
	if err := ui.openFile(path); err != nil {
		ui.log.Error().Err(err).Str("path", path).Msg("open image failed")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onRevealImage shows the image file in the system file manager
func (ui *MapUI) onRevealImage() {
	path := ui.nav.ImagePath()
	if err := ui.revealFile(path); err != nil {
		ui.log.Error().Err(err).Str("path", path).Msg("reveal image failed")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onCopyCoordinates puts "lat, lon" of the current view on the clipboard
func (ui *MapUI) onCopyCoordinates() {
	vs := ui.nav.State()
	text := fmt.Sprintf(CoordinatesFormat, vs.Latitude, vs.Longitude)
	ui.app.Clipboard().SetContent(text)
	ui.log.Debug().Str("coordinates", text).Msg("coordinates copied")
}

// onLayerChange switches the map layer and refetches
func (ui *MapUI) onLayerChange(layer string) {
	if err := ui.nav.SetLayer(layer); err != nil {
		ui.log.Error().Err(err).Str("layer", layer).Msg("layer change rejected")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorLayer), err), ui.window)
		return
	}
	ui.createMenu()
	ui.nav.Refresh(ui.ctx)
}

// onLanguageChange handles language change
func (ui *MapUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *MapUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.updateStatus(ui.nav.State())

	switch {
	case ui.hasImage:
	case ui.last.RequestID == "":
		ui.messageText.SetText(ui.localization.GetText(KeyNoImage))
	default:
		ui.messageText.SetText(ui.localization.GetText(KeyMapLoadError))
	}
}
