package ui

import (
	"unicode"

	"fyne.io/fyne/v2"

	"github.com/ytget/map-viewer/internal/model"
)

// KeyMap translates key presses into navigation actions. Named keys cover
// keys without a printable rune; runes cover +, - and letter shortcuts so
// each physical press is handled once.
type KeyMap struct {
	keys  map[fyne.KeyName]model.Action
	runes map[rune]model.Action
}

// DefaultKeyMap returns the viewer's bindings: PageUp/PageDown zoom, arrows
// pan, F5 refreshes; +/= and - zoom, WASD pan, R refreshes.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		keys: map[fyne.KeyName]model.Action{
			fyne.KeyPageUp:   model.ActionZoomIn,
			fyne.KeyPageDown: model.ActionZoomOut,
			fyne.KeyUp:       model.ActionPanNorth,
			fyne.KeyDown:     model.ActionPanSouth,
			fyne.KeyLeft:     model.ActionPanWest,
			fyne.KeyRight:    model.ActionPanEast,
			fyne.KeyF5:       model.ActionRefresh,
		},
		runes: map[rune]model.Action{
			'+': model.ActionZoomIn,
			'=': model.ActionZoomIn,
			'-': model.ActionZoomOut,
			'w': model.ActionPanNorth,
			's': model.ActionPanSouth,
			'a': model.ActionPanWest,
			'd': model.ActionPanEast,
			'r': model.ActionRefresh,
		},
	}
}

// ActionForKey returns the action bound to a named key
func (km *KeyMap) ActionForKey(name fyne.KeyName) (model.Action, bool) {
	action, ok := km.keys[name]
	return action, ok
}

// ActionForRune returns the action bound to a typed rune, ignoring case
func (km *KeyMap) ActionForRune(r rune) (model.Action, bool) {
	action, ok := km.runes[unicode.ToLower(r)]
	return action, ok
}

// BindKey adds or replaces a named key binding
func (km *KeyMap) BindKey(name fyne.KeyName, action model.Action) {
	km.keys[name] = action
}

// BindRune adds or replaces a rune binding
func (km *KeyMap) BindRune(r rune, action model.Action) {
	km.runes[unicode.ToLower(r)] = action
}
