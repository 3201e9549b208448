// Package input turns polled window state into per-frame deltas and maps
// them onto the camera and the sun.
package input

// Source is the window state the manager polls. *core.Window implements it.
type Source interface {
	GetCursorPos() (float64, float64)
	IsMouseButtonPressed(button int) bool
	IsKeyPressed(key int) bool
	SetScrollCallback(cb func(xoff, yoff float64))
}

// Mouse button constants
const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)

// Manager tracks mouse and keyboard state between frames.
type Manager struct {
	// Mouse state
	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	lastMouseX, lastMouseY   float64
	ScrollDelta              float64

	mouseButtons     [8]bool
	mouseButtonsPrev [8]bool

	keys     [512]bool
	keysPrev [512]bool
	watched  []int

	ShiftDown bool
	CtrlDown  bool

	source     Source
	shiftKeys  []int
	ctrlKeys   []int
	firstFrame bool
}

// NewManager creates a manager polling the given keys every frame and
// accumulating scroll events between frames.
func NewManager(source Source, keys ...int) *Manager {
	m := &Manager{
		source:     source,
		watched:    keys,
		firstFrame: true,
	}

	source.SetScrollCallback(func(xoff, yoff float64) {
		m.ScrollDelta += yoff
	})

	return m
}

// SetModifiers names the keys that count as Shift and Ctrl.
func (m *Manager) SetModifiers(shift, ctrl []int) {
	m.shiftKeys = shift
	m.ctrlKeys = ctrl
}

// Update should be called once per frame to compute deltas and poll state
func (m *Manager) Update() {
	x, y := m.source.GetCursorPos()
	if m.firstFrame {
		m.lastMouseX = x
		m.lastMouseY = y
		m.firstFrame = false
	}
	m.MouseDeltaX = x - m.lastMouseX
	m.MouseDeltaY = y - m.lastMouseY
	m.lastMouseX = x
	m.lastMouseY = y
	m.MouseX = x
	m.MouseY = y

	copy(m.mouseButtonsPrev[:], m.mouseButtons[:])
	copy(m.keysPrev[:], m.keys[:])

	m.mouseButtons[MouseLeft] = m.source.IsMouseButtonPressed(MouseLeft)
	m.mouseButtons[MouseRight] = m.source.IsMouseButtonPressed(MouseRight)
	m.mouseButtons[MouseMiddle] = m.source.IsMouseButtonPressed(MouseMiddle)

	m.ShiftDown = m.anyPressed(m.shiftKeys)
	m.CtrlDown = m.anyPressed(m.ctrlKeys)

	for _, k := range m.watched {
		if k >= 0 && k < len(m.keys) {
			m.keys[k] = m.source.IsKeyPressed(k)
		}
	}
}

func (m *Manager) anyPressed(keys []int) bool {
	for _, k := range keys {
		if m.source.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// EndFrame clears per-frame state
func (m *Manager) EndFrame() {
	m.ScrollDelta = 0
}

func (m *Manager) IsMouseDown(button int) bool {
	if button < 0 || button >= len(m.mouseButtons) {
		return false
	}
	return m.mouseButtons[button]
}

func (m *Manager) IsMousePressed(button int) bool {
	if button < 0 || button >= len(m.mouseButtons) {
		return false
	}
	return m.mouseButtons[button] && !m.mouseButtonsPrev[button]
}

func (m *Manager) IsKeyDown(key int) bool {
	if key < 0 || key >= len(m.keys) {
		return false
	}
	return m.keys[key]
}

func (m *Manager) IsKeyPressed(key int) bool {
	if key < 0 || key >= len(m.keys) {
		return false
	}
	return m.keys[key] && !m.keysPrev[key]
}
