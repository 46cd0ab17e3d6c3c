package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler tracks mouse state in logical (unscaled) coordinates, since
// the window can be resized or run fullscreen while the game logic always
// thinks in a fixed ScreenWidth x ScreenHeight space.
type InputHandler struct {
	mouse            image.Point
	leftPressed      bool
	leftJustPressed  bool
	leftJustReleased bool
}

// NewInputHandler returns a zeroed InputHandler; call Update once per frame
// before reading its state.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update samples the current frame's mouse position and button edges.
func (ih *InputHandler) Update() {
	rawX, rawY := ebiten.CursorPosition()

	scale := UIScale
	if scale < 1.0 {
		scale = 1.0
	}
	ih.mouse = image.Pt(int(float64(rawX)/scale), int(float64(rawY)/scale))

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// MousePosition returns the mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouse.X, ih.mouse.Y
}

// MouseX returns the mouse's logical X coordinate.
func (ih *InputHandler) MouseX() int {
	return ih.mouse.X
}

// MouseY returns the mouse's logical Y coordinate.
func (ih *InputHandler) MouseY() int {
	return ih.mouse.Y
}

// IsLeftJustPressed reports whether the left button was pressed this frame.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftJustReleased reports whether the left button was released this frame.
func (ih *InputHandler) IsLeftJustReleased() bool {
	return ih.leftJustReleased
}

// IsLeftPressed reports whether the left button is currently held.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// IsInBounds reports whether the mouse sits inside the x,y,w,h rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.mouse.In(rect(x, y, w, h))
}

// ClickedInBounds reports whether the left button was just pressed inside
// the x,y,w,h rectangle.
func (ih *InputHandler) ClickedInBounds(x, y, w, h int) bool {
	return ih.leftJustPressed && ih.IsInBounds(x, y, w, h)
}

// ReleasedInBounds reports whether the left button was just released inside
// the x,y,w,h rectangle.
func (ih *InputHandler) ReleasedInBounds(x, y, w, h int) bool {
	return ih.leftJustReleased && ih.IsInBounds(x, y, w, h)
}

// IsKeyJustPressed reports whether key transitioned to pressed this frame.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// IsKeyPressed reports whether key is currently held.
func IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}
