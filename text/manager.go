package text

import (
	"sync"

	"github.com/gogpu/skin"
)

// Manager is the default skin.FontManager. It hands out faces of a
// single default Source and shapes text through the shared HarfBuzz
// shaper.
//
// Manager is safe for concurrent use.
type Manager struct {
	source *Source

	mu    sync.Mutex
	faces map[int]*Face
}

// NewManager creates a Manager whose default font comes from source.
func NewManager(source *Source) *Manager {
	return &Manager{
		source: source,
		faces:  make(map[int]*Face),
	}
}

// NewManagerFromData parses font data and creates a Manager for it.
func NewManagerFromData(data []byte) (*Manager, error) {
	src, err := NewSource(data)
	if err != nil {
		return nil, err
	}
	return NewManager(src), nil
}

// Source returns the manager's default font source.
func (m *Manager) Source() *Source { return m.source }

// DefaultFont returns the default font at the given pixel height.
// Faces are cached per height.
func (m *Manager) DefaultFont(height int) skin.Font {
	if height <= 0 {
		height = skin.DefaultFontHeight
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.faces[height]; ok {
		return f
	}
	f := m.source.Face(float64(height))
	m.faces[height] = f
	return f
}

// Shape shapes text with the given font into a reusable blob.
// The font must have been created by this package; a foreign font
// yields a nil blob.
func (m *Manager) Shape(font skin.Font, text string) skin.TextBlob {
	face, ok := font.(*Face)
	if !ok {
		skin.Logger().Warn("text: cannot shape with foreign font")
		return nil
	}
	return Shape(face, text)
}
