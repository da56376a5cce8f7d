package skin

// Manager abstracts the widget manager the theme lifecycle notifies.
type Manager interface {
	// ReinitThemeForAllWidgets points every live widget at the current
	// theme, even a nil one, so none keeps a stale theme reference.
	ReinitThemeForAllWidgets()

	// InitTheme re-initializes the widget tree with the current theme.
	InitTheme()

	// Invalidate schedules a full repaint.
	Invalidate()
}

// CursorResetter resets the mouse cursor during theme regeneration.
type CursorResetter interface {
	ResetCursor()
}

// Global theme state. Mutated only by SetTheme on the UI goroutine;
// no concurrent readers are permitted during that call (see package
// doc on concurrency).
var (
	currentUIScale = 1
	oldUIScale     = 1
	currentTheme   *Theme
	currentManager Manager
	cursorResetter CursorResetter
)

// Default colors for the simple fallback style.
var (
	simpleBgColor = RGB(32, 32, 32)
	simpleFgColor = RGB(255, 255, 200)
)

// Theme generates styles and initializes widgets. Concrete themes embed
// or wrap Theme and install hooks for sheet regeneration and per-widget
// styling.
type Theme struct {
	fontMgr FontManager

	// OnRegenerate is invoked by Regenerate after the cursor reset, so
	// concrete themes can rebuild their sheet surfaces at the current
	// UI scale.
	OnRegenerate func()

	// OnInitWidget overrides the default widget initialization.
	OnInitWidget func(w StyledWidget)

	simpleStyle *Style
}

// NewTheme creates a theme backed by the given font manager.
func NewTheme(fontMgr FontManager) *Theme {
	return &Theme{fontMgr: fontMgr}
}

// FontManager returns the theme's font manager.
func (t *Theme) FontManager() FontManager { return t.fontMgr }

// DefaultFont returns the default font at the standard height.
func (t *Theme) DefaultFont() Font {
	return t.fontMgr.DefaultFont(DefaultFontHeight)
}

// Regenerate resets the cursor and hands off to the theme's hook.
func (t *Theme) Regenerate() {
	if cursorResetter != nil {
		cursorResetter.ResetCursor()
	}
	if t.OnRegenerate != nil {
		t.OnRegenerate()
	}
}

// InitWidget assigns the theme's default font and a minimal two-state
// style to a widget. Concrete themes override via OnInitWidget.
func (t *Theme) InitWidget(w StyledWidget) {
	if t.OnInitWidget != nil {
		t.OnInitWidget(w)
		return
	}

	if t.simpleStyle == nil {
		t.simpleStyle = NewStyle("simple").
			AddLayer(NewLayer(LayerBackground).SetColor(simpleBgColor)).
			AddLayer(NewLayer(LayerBorder).SetColor(simpleFgColor)).
			AddLayer(NewLayer(LayerText).SetColor(simpleFgColor)).
			AddLayer(NewLayer(LayerBackground).SetFlags(FlagSelected).SetColor(simpleFgColor)).
			AddLayer(NewLayer(LayerBorder).SetFlags(FlagSelected).SetColor(simpleFgColor)).
			AddLayer(NewLayer(LayerText).SetFlags(FlagSelected).SetColor(simpleBgColor))
	}

	w.SetFont(t.DefaultFont())
	w.SetStyle(t.simpleStyle)
}

// Close clears the theme from the global slot if it is current, so no
// widget keeps a pointer to a destroyed theme.
func (t *Theme) Close() {
	if currentTheme == t {
		SetTheme(nil, UIScale())
	}
}

// SetTheme installs theme as the process-wide current theme at the
// given integer UI scale. The previous scale is remembered until the
// call completes so widgets re-initialized during the switch can
// compute size deltas with OldUIScale.
func SetTheme(theme *Theme, uiscale int) {
	oldUIScale = currentUIScale
	currentUIScale = uiscale
	currentTheme = theme

	Logger().Debug("skin: theme switch",
		"scale", uiscale, "oldScale", oldUIScale, "hasTheme", theme != nil)

	if theme != nil {
		theme.Regenerate()
	}

	// Even a nil theme is propagated so widgets drop stale references.
	if currentManager != nil {
		currentManager.ReinitThemeForAllWidgets()
		currentManager.InitTheme()
		currentManager.Invalidate()
	}

	oldUIScale = currentUIScale
}

// CurrentTheme returns the process-wide current theme, or nil.
func CurrentTheme() *Theme {
	return currentTheme
}

// UIScale returns the current integer UI scale.
func UIScale() int {
	return currentUIScale
}

// OldUIScale returns the UI scale before the SetTheme call in progress.
// Outside a theme switch it equals UIScale.
func OldUIScale() int {
	return oldUIScale
}

// SetManager installs the widget manager notified by SetTheme.
func SetManager(m Manager) {
	currentManager = m
}

// SetCursorResetter installs the cursor reset hook used by Regenerate.
func SetCursorResetter(c CursorResetter) {
	cursorResetter = c
}
